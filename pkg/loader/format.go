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
	"os"
	"strconv"
	"strings"

	"github.com/NVIDIA/tally/pkg/defaults"
	"github.com/NVIDIA/tally/pkg/errors"
	"github.com/NVIDIA/tally/pkg/serializer"
)

const (
	// EnvReportFormat selects the outcome file format ("xml" or "json").
	EnvReportFormat = "TALLY_REPORT_FORMAT"

	// EnvLoaderWorkers overrides the number of concurrent parsers.
	EnvLoaderWorkers = "TALLY_LOADER_WORKERS"
)

// OutcomeFormat is the serialization format of outcome files.
type OutcomeFormat string

const (
	FormatXML  OutcomeFormat = "xml"
	FormatJSON OutcomeFormat = "json"
)

// DefaultFormat is used when no format is configured.
const DefaultFormat = FormatXML

// SupportedFormats returns all outcome formats.
func SupportedFormats() []OutcomeFormat {
	return []OutcomeFormat{FormatXML, FormatJSON}
}

// String returns the format name.
func (f OutcomeFormat) String() string {
	return string(f)
}

// IsValid reports whether f is a supported format.
func (f OutcomeFormat) IsValid() bool {
	return f == FormatXML || f == FormatJSON
}

// Extension returns the file name suffix of the format, including the dot.
func (f OutcomeFormat) Extension() string {
	switch f {
	case FormatXML:
		return ".xml"
	case FormatJSON:
		return ".json"
	default:
		return ""
	}
}

// SerializerFormat maps f to the matching serializer format.
func (f OutcomeFormat) SerializerFormat() serializer.Format {
	if f == FormatJSON {
		return serializer.FormatJSON
	}
	return serializer.FormatXML
}

// ParseFormat parses a format name, ignoring case and surrounding space.
func ParseFormat(s string) (OutcomeFormat, error) {
	f := OutcomeFormat(strings.ToLower(strings.TrimSpace(s)))
	if !f.IsValid() {
		return "", errors.NewWithContext(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("unsupported outcome format %q", s),
			map[string]any{"supported": SupportedFormats()})
	}
	return f, nil
}

// Environment provides configuration lookups.
type Environment interface {
	Lookup(key string) (string, bool)
}

// OSEnvironment reads the process environment.
type OSEnvironment struct{}

// Lookup implements Environment.
func (OSEnvironment) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapEnvironment is an Environment backed by a map.
type MapEnvironment map[string]string

// Lookup implements Environment.
func (m MapEnvironment) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// lookup returns the trimmed value of key, treating blank values as unset.
func lookup(env Environment, key string) (string, bool) {
	if env == nil {
		return "", false
	}
	v, ok := env.Lookup(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

// FormatConfiguration holds the resolved outcome format.
type FormatConfiguration struct {
	format OutcomeFormat
}

// NewFormatConfiguration resolves the format from EnvReportFormat, falling
// back to DefaultFormat when it is unset.
func NewFormatConfiguration(env Environment) (FormatConfiguration, error) {
	v, ok := lookup(env, EnvReportFormat)
	if !ok {
		return FormatConfiguration{format: DefaultFormat}, nil
	}
	f, err := ParseFormat(v)
	if err != nil {
		return FormatConfiguration{}, errors.Wrap(errors.ErrCodeInvalidConfig,
			"invalid "+EnvReportFormat, err)
	}
	return FormatConfiguration{format: f}, nil
}

// FormatConfigurationFor returns a configuration fixed to f.
func FormatConfigurationFor(f OutcomeFormat) FormatConfiguration {
	return FormatConfiguration{format: f}
}

// Format returns the configured format.
func (c FormatConfiguration) Format() OutcomeFormat {
	return c.format
}

// Extension returns the file extension of the configured format.
func (c FormatConfiguration) Extension() string {
	return c.format.Extension()
}

// WorkersFromEnvironment reads EnvLoaderWorkers, returning
// defaults.LoaderWorkers when it is unset.
func WorkersFromEnvironment(env Environment) (int, error) {
	v, ok := lookup(env, EnvLoaderWorkers)
	if !ok {
		return defaults.LoaderWorkers, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("invalid %s %q", EnvLoaderWorkers, v), err)
	}
	if err := validateWorkers(n); err != nil {
		return 0, err
	}
	return n, nil
}

func validateWorkers(n int) error {
	if n < 1 || n > defaults.LoaderMaxWorkers {
		return errors.NewWithContext(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("worker count must be between 1 and %d", defaults.LoaderMaxWorkers),
			map[string]any{"workers": n})
	}
	return nil
}
