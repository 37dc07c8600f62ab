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
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/tally/pkg/defaults"
	"github.com/NVIDIA/tally/pkg/loader"
	"github.com/NVIDIA/tally/pkg/serializer"
)

func dirFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "dir",
		Aliases:  []string{"d"},
		Usage:    "Directory containing serialized test outcome files",
		Required: true,
	}
}

func reportFormatFlag() cli.Flag {
	return &cli.StringFlag{
		Name: "format",
		Usage: fmt.Sprintf("Format of the outcome files to load (supported values: %s; default: xml)",
			loader.SupportedFormats()),
		Sources: cli.EnvVars(loader.EnvReportFormat),
	}
}

func workersFlag() cli.Flag {
	return &cli.IntFlag{
		Name:    "workers",
		Aliases: []string{"w"},
		Usage:   "Maximum number of files parsed concurrently",
		Sources: cli.EnvVars(loader.EnvLoaderWorkers),
		Value:   defaults.LoaderWorkers,
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage: `Output destination: file path or ConfigMap URI (cm://namespace/name).
	Defaults to stdout.`,
		Sources: cli.EnvVars("TALLY_OUTPUT"),
	}
}

func outputFormatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output-format",
		Aliases: []string{"t"},
		Usage: fmt.Sprintf("Report output format (supported values: %s)",
			strings.Join(serializer.SupportedOutputFormats(), ", ")),
		Value: string(serializer.FormatJSON),
	}
}

// parseOutputFormat returns the writable serializer format named by the
// output-format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(strings.ToLower(strings.TrimSpace(cmd.String("output-format"))))
	if !f.CanWrite() {
		return "", fmt.Errorf("unknown output format: %q (supported: %s)",
			cmd.String("output-format"), strings.Join(serializer.SupportedOutputFormats(), ", "))
	}
	return f, nil
}

// loaderOptions maps the format and workers flags to loader options. An unset
// format defers to the loader's environment resolution.
func loaderOptions(cmd *cli.Command) ([]loader.Option, error) {
	var opts []loader.Option

	if v := strings.TrimSpace(cmd.String("format")); v != "" {
		f, err := loader.ParseFormat(v)
		if err != nil {
			return nil, err
		}
		opts = append(opts, loader.WithFormat(f))
	}

	return append(opts, loader.WithWorkers(cmd.Int("workers"))), nil
}
