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

// Package serializer reads and writes documents in multiple formats.
//
// # Formats
//
// JSON and YAML can be both read and written. XML is read-only: it is the
// native format of outcome files, while report documents carry maps that
// encoding/xml cannot marshal. Table output is write-only and flattens a value
// into sorted FIELD/VALUE rows for terminal viewing.
//
// # Reading
//
// Decode a single file, choosing the format from its extension:
//
//	run, err := serializer.FromFile[outcome.TestOutcome]("results/login.json")
//
// Or force a format regardless of the extension:
//
//	run, err := serializer.FromFileInFormat[outcome.TestOutcome](path, serializer.FormatXML)
//
// Reader wraps any io.Reader for streaming use and must be closed when it
// owns a file handle.
//
// # Writing
//
// NewFileWriterOrStdout picks a destination from a path:
//
//	ser := serializer.NewFileWriterOrStdout(serializer.FormatYAML, "report.yaml")
//	if c, ok := ser.(serializer.Closer); ok {
//	    defer c.Close()
//	}
//	if err := ser.Serialize(ctx, rpt); err != nil {
//	    return err
//	}
//
// An empty path writes to stdout. A path of the form cm://namespace/name
// writes to a Kubernetes ConfigMap using server-side apply; see
// ConfigMapWriter.
//
// # HTTP
//
// RespondJSON encodes a value into a buffer before writing headers, so an
// encoding failure still produces a well-formed 500 response.
package serializer
