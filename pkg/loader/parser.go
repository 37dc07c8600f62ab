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

package loader

import (
	"fmt"
	"log/slog"

	"github.com/NVIDIA/tally/pkg/errors"
	"github.com/NVIDIA/tally/pkg/outcome"
	"github.com/NVIDIA/tally/pkg/serializer"
)

// Parser turns one outcome file into at most one outcome. It reports false
// instead of an error when the file cannot be used.
type Parser interface {
	Parse(path string) (outcome.TestOutcome, bool)
}

// ParserFunc adapts a function to the Parser interface.
type ParserFunc func(path string) (outcome.TestOutcome, bool)

// Parse implements Parser.
func (fn ParserFunc) Parse(path string) (outcome.TestOutcome, bool) {
	return fn(path)
}

// XMLParser reads <acceptance-test-run> documents.
type XMLParser struct{}

// Parse implements Parser.
func (XMLParser) Parse(path string) (outcome.TestOutcome, bool) {
	return parseFile(path, FormatXML)
}

// JSONParser reads JSON outcome documents.
type JSONParser struct{}

// Parse implements Parser.
func (JSONParser) Parse(path string) (outcome.TestOutcome, bool) {
	return parseFile(path, FormatJSON)
}

// ParserFor returns the parser for f.
func ParserFor(f OutcomeFormat) (Parser, error) {
	switch f {
	case FormatXML:
		return XMLParser{}, nil
	case FormatJSON:
		return JSONParser{}, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, fmt.Sprintf("no parser for outcome format %q", f))
	}
}

func parseFile(path string, f OutcomeFormat) (outcome.TestOutcome, bool) {
	o, err := serializer.FromFileInFormat[outcome.TestOutcome](path, f.SerializerFormat())
	if err != nil {
		slog.Debug("skipping unreadable outcome file", "path", path, "format", f, "error", err)
		parseFailures.WithLabelValues(f.String(), failureDecode).Inc()
		return outcome.TestOutcome{}, false
	}

	if err := o.Validate(); err != nil {
		slog.Debug("skipping invalid outcome file", "path", path, "format", f, "error", err)
		parseFailures.WithLabelValues(f.String(), failureInvalid).Inc()
		return outcome.TestOutcome{}, false
	}

	return *o, true
}
