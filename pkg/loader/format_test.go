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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/tally/pkg/defaults"
	"github.com/NVIDIA/tally/pkg/errors"
	"github.com/NVIDIA/tally/pkg/serializer"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    OutcomeFormat
		wantErr bool
	}{
		{input: "xml", want: FormatXML},
		{input: "XML", want: FormatXML},
		{input: " json ", want: FormatJSON},
		{input: "Json", want: FormatJSON},
		{input: "yaml", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidConfig))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOutcomeFormatAttributes(t *testing.T) {
	assert.Equal(t, ".xml", FormatXML.Extension())
	assert.Equal(t, ".json", FormatJSON.Extension())
	assert.Equal(t, "", OutcomeFormat("csv").Extension())

	assert.Equal(t, serializer.FormatXML, FormatXML.SerializerFormat())
	assert.Equal(t, serializer.FormatJSON, FormatJSON.SerializerFormat())

	assert.True(t, FormatXML.IsValid())
	assert.False(t, OutcomeFormat("").IsValid())
	assert.Equal(t, []OutcomeFormat{FormatXML, FormatJSON}, SupportedFormats())
}

func TestNewFormatConfiguration(t *testing.T) {
	tests := []struct {
		name    string
		env     Environment
		want    OutcomeFormat
		wantErr bool
	}{
		{name: "unset defaults to xml", env: MapEnvironment{}, want: FormatXML},
		{name: "nil environment", env: nil, want: FormatXML},
		{name: "blank is unset", env: MapEnvironment{EnvReportFormat: "  "}, want: FormatXML},
		{name: "json", env: MapEnvironment{EnvReportFormat: "json"}, want: FormatJSON},
		{name: "upper case xml", env: MapEnvironment{EnvReportFormat: "XML"}, want: FormatXML},
		{name: "unsupported", env: MapEnvironment{EnvReportFormat: "html"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := NewFormatConfiguration(tt.env)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidConfig))
				assert.Contains(t, err.Error(), EnvReportFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Format())
			assert.Equal(t, tt.want.Extension(), cfg.Extension())
		})
	}
}

func TestFormatConfigurationFor(t *testing.T) {
	cfg := FormatConfigurationFor(FormatJSON)
	assert.Equal(t, FormatJSON, cfg.Format())
	assert.Equal(t, ".json", cfg.Extension())
}

func TestOSEnvironment(t *testing.T) {
	t.Setenv(EnvReportFormat, "json")
	cfg, err := NewFormatConfiguration(OSEnvironment{})
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, cfg.Format())
}

func TestWorkersFromEnvironment(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		set     bool
		want    int
		wantErr bool
	}{
		{name: "unset", want: defaults.LoaderWorkers},
		{name: "explicit", value: "3", set: true, want: 3},
		{name: "max", value: "256", set: true, want: defaults.LoaderMaxWorkers},
		{name: "zero", value: "0", set: true, wantErr: true},
		{name: "negative", value: "-2", set: true, wantErr: true},
		{name: "too many", value: "257", set: true, wantErr: true},
		{name: "not a number", value: "eight", set: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := MapEnvironment{}
			if tt.set {
				env[EnvLoaderWorkers] = tt.value
			}
			got, err := WorkersFromEnvironment(env)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidConfig))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
