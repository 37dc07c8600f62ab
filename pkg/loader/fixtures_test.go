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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const xmlOutcomeTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<acceptance-test-run name="%s" result="%s" duration="120" timestamp="2025-03-04T05:06:07Z" session-id="s-1">
  <user-story id="auth" name="Authentication" path="stories/auth.story"/>
  <tags>
    <tag name="smoke" type="feature"/>
    <tag name="web" type="platform"/>
  </tags>
  <issues>
    <issue>QA-17</issue>
  </issues>
  <test-step result="SUCCESS" duration="40">
    <description>Open the login page</description>
  </test-step>
  <test-step result="%s" duration="80">
    <description>Submit credentials</description>
    <test-step result="%s" duration="80">
      <description>Press the login button</description>
    </test-step>
  </test-step>
</acceptance-test-run>
`

const jsonOutcomeTemplate = `{
  "name": "%s",
  "result": "%s",
  "duration": 75,
  "startTime": "2025-03-04T05:06:07Z",
  "userStory": {"id": "cart", "name": "Cart"},
  "tags": [{"name": "regression", "type": "feature"}],
  "testSteps": [
    {"description": "Add item", "result": "%s", "duration": 75}
  ]
}
`

func xmlOutcome(name, result string) string {
	return fmt.Sprintf(xmlOutcomeTemplate, name, result, result, result)
}

func jsonOutcome(name, result string) string {
	return fmt.Sprintf(jsonOutcomeTemplate, name, result, result)
}

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// writeXMLOutcomes writes n well-formed XML outcome files named run-<i>.xml
// and returns the test names written.
func writeXMLOutcomes(t *testing.T, dir string, n int) []string {
	t.Helper()
	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("shouldPassScenario%d", i)
		writeFixture(t, dir, fmt.Sprintf("run-%d.xml", i), xmlOutcome(name, "SUCCESS"))
		names = append(names, name)
	}
	return names
}
