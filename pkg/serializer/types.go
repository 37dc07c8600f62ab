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

package serializer

import "context"

// Format represents a serialization format.
type Format string

const (
	// FormatJSON reads and writes data in JSON format
	FormatJSON Format = "json"
	// FormatYAML reads and writes data in YAML format
	FormatYAML Format = "yaml"
	// FormatXML reads and writes data in XML format
	FormatXML Format = "xml"
	// FormatTable writes data in table format
	FormatTable Format = "table"
)

// ConfigMapURIScheme prefixes output destinations that name a Kubernetes
// ConfigMap, e.g. cm://namespace/name.
const ConfigMapURIScheme = "cm://"

const defaultValueKey = "value"

// IsUnknown reports whether f is not one of the supported formats.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatXML, FormatTable:
		return false
	default:
		return true
	}
}

// Extension returns the file extension used for data in this format.
func (f Format) Extension() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatXML:
		return "xml"
	case FormatTable:
		return "txt"
	default:
		return ""
	}
}

// CanRead reports whether data in this format can be deserialized.
func (f Format) CanRead() bool {
	return f == FormatJSON || f == FormatYAML || f == FormatXML
}

// CanWrite reports whether values can be serialized in this format.
// XML is read-only: report documents carry maps, which encoding/xml rejects.
func (f Format) CanWrite() bool {
	return f == FormatJSON || f == FormatYAML || f == FormatTable
}

// SupportedOutputFormats returns the formats accepted by writers.
func SupportedOutputFormats() []string {
	return []string{
		string(FormatJSON),
		string(FormatYAML),
		string(FormatTable),
	}
}

// SupportedFormats returns a list of all supported output formats
// for serialization.
func SupportedFormats() []string {
	return []string{
		string(FormatJSON),
		string(FormatYAML),
		string(FormatXML),
		string(FormatTable),
	}
}

// Serializer writes a value to some destination.
type Serializer interface {
	Serialize(ctx context.Context, v any) error
}

// Closer releases resources held by a Serializer.
type Closer interface {
	Close() error
}
