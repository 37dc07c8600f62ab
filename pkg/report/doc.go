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

// Package report turns an outcome set into a serializable summary document.
//
// A Report carries the standard document header (kind OutcomeReport), a
// unique ID, the aggregate counts of the set, a per-story breakdown, the tag
// inventory and one row per outcome:
//
//	rpt := report.New(set,
//	    report.WithSource(dir),
//	    report.WithFormat("xml"),
//	    report.WithVersion(version))
//
//	ser := serializer.NewFileWriterOrStdout(serializer.FormatYAML, out)
//	err := ser.Serialize(ctx, rpt)
//
// Stories and rows are sorted so that reports built from the same files are
// identical apart from ID and timestamp, regardless of load order.
package report
