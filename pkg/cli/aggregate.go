// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/tally/pkg/loader"
	"github.com/NVIDIA/tally/pkg/report"
	"github.com/NVIDIA/tally/pkg/serializer"
)

// exitCodeFailing is returned by aggregate --fail-on-failure when any
// outcome failed or errored.
const exitCodeFailing = 2

func aggregateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "aggregate",
		EnableShellCompletion: true,
		Usage:                 "Load a directory of test outcomes and write a report",
		Description: `Load every outcome file of the selected format from a directory and write
an aggregate report containing:
  - Result counts and the overall result
  - Per-story summaries
  - Tags seen across outcomes
  - One row per outcome (unless --summary-only)

Files that cannot be parsed are skipped. Only the immediate contents of the
directory are considered, and extensions are matched case-insensitively.

The report can be output in JSON, YAML, or table format to stdout, a file,
or a Kubernetes ConfigMap.

# Examples

Aggregate XML outcomes to stdout:
  tally aggregate --dir target/site/reports

Aggregate JSON outcomes with 16 workers into a ConfigMap:
  tally aggregate --dir reports --format json --workers 16 --output cm://qa/tally-report

Fail a CI step when any outcome failed, exporting loader metrics:
  tally aggregate --dir reports --fail-on-failure --metrics-file tally.prom`,
		Flags: []cli.Flag{
			dirFlag(),
			reportFormatFlag(),
			workersFlag(),
			outputFlag(),
			outputFormatFlag(),
			&cli.BoolFlag{
				Name:  "summary-only",
				Usage: "Omit per-outcome rows from the report",
			},
			&cli.StringFlag{
				Name:  "metrics-file",
				Usage: "Write loader metrics in Prometheus text format to this path",
			},
			&cli.BoolFlag{
				Name:  "fail-on-failure",
				Usage: fmt.Sprintf("Exit with status %d if any outcome failed or errored", exitCodeFailing),
			},
		},
		Action: runAggregate,
	}
}

func runAggregate(ctx context.Context, cmd *cli.Command) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	opts, err := loaderOptions(cmd)
	if err != nil {
		return fmt.Errorf("invalid loader configuration: %w", err)
	}

	l, err := loader.New(opts...)
	if err != nil {
		return fmt.Errorf("invalid loader configuration: %w", err)
	}

	dir := cmd.String("dir")
	set, err := l.LoadFrom(dir)
	if err != nil {
		return fmt.Errorf("failed to load outcomes from %q: %w", dir, err)
	}

	rpt := report.New(set,
		report.WithSource(dir),
		report.WithFormat(l.Format().String()),
		report.WithVersion(version),
		report.WithRows(!cmd.Bool("summary-only")))

	if err := writeReport(ctx, outFormat, cmd.String("output"), rpt); err != nil {
		return err
	}

	if path := cmd.String("metrics-file"); path != "" {
		if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
			return fmt.Errorf("failed to write metrics to %q: %w", path, err)
		}
	}

	if cmd.Bool("fail-on-failure") && rpt.Failing() {
		return cli.Exit(fmt.Sprintf("%d of %d outcomes failed or errored",
			rpt.Summary.Failure+rpt.Summary.Error, rpt.Summary.Total), exitCodeFailing)
	}

	return nil
}

func writeReport(ctx context.Context, format serializer.Format, output string, rpt *report.Report) error {
	ser := serializer.NewFileWriterOrStdout(format, output)
	defer func() {
		if closer, ok := ser.(interface{ Close() error }); ok {
			if err := closer.Close(); err != nil {
				slog.Warn("failed to close serializer", "error", err)
			}
		}
	}()

	if err := ser.Serialize(ctx, rpt); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
