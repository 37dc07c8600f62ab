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

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/tally/pkg/api"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve outcome reports for a directory over HTTP",
		Description: `Start an HTTP server answering GET /v1/outcomes with a report built from
the directory. The directory is reloaded on every request.

The port is read from PORT (default 8080).

# Examples

  tally serve --dir /var/lib/tally/reports
  curl "localhost:8080/v1/outcomes?result=failure&rows=false"`,
		Flags: []cli.Flag{
			dirFlag(),
			reportFormatFlag(),
			workersFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts, err := loaderOptions(cmd)
			if err != nil {
				return fmt.Errorf("invalid loader configuration: %w", err)
			}
			return api.Serve(ctx, cmd.String("dir"), opts...)
		},
	}
}
