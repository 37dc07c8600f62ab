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
	"os"
	"path/filepath"
	"strings"

	"github.com/NVIDIA/tally/pkg/errors"
)

// Discover returns the paths of the regular entries directly inside dir
// whose names end with the extension of f, ignoring case. Entries are
// returned in directory listing order.
func Discover(dir string, f OutcomeFormat) ([]string, error) {
	ext := f.Extension()
	if ext == "" {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unsupported outcome format "+f.String())
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeNotFound,
			"failed to list outcome directory", err,
			map[string]any{"dir": dir})
	}

	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(e.Name()), ext) {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	return paths, nil
}
