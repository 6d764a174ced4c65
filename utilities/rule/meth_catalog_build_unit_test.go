// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rule

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestUnitCISCloudSQLPostgres(t *testing.T) {
	ctx := context.Background()
	rules, err := CISCloudSQLPostgres(ctx, nil)
	if err != nil {
		t.Fatalf("Want NO error, got %v", err)
	}
	if len(rules) != 9 {
		t.Fatalf("Want 9 rules got %d", len(rules))
	}
	for i, r := range rules {
		if err := r.Validate(); err != nil {
			t.Errorf("rule %d: %v", i, err)
		}
		if !r.Applicability("POSTGRES_15") || r.Applicability("MYSQL_8_0") {
			t.Errorf("rule %s should apply to PostgreSQL only", r.ID)
		}
	}
	if rules[0].ID != "cis-gcp-6.2.1-db" || rules[8].FlagName != "cloudsql.enable_pgaudit" {
		t.Errorf("unexpected catalog order %s %s", rules[0].ID, rules[8].FlagName)
	}

	ok, _ := rules[5].Policy.Satisfies(ctx, "error")
	if !ok {
		t.Errorf("log_min_messages 'error' should satisfy the default 'warning' minimum")
	}

	rules, err = CISCloudSQLPostgres(ctx, Parameters{"log_statement": "mod"})
	if err != nil {
		t.Fatal(err)
	}
	if ok, _ := rules[3].Policy.Satisfies(ctx, "mod"); !ok {
		t.Errorf("override of log_statement parameter not applied, policy %s", rules[3].Policy)
	}
}

func TestUnitLoadCatalog(t *testing.T) {
	var tests = []struct {
		name          string
		content       string
		wantRuleCount int
		wantErrorPart string
	}{
		{
			name: "allKinds",
			content: `parameters:
  severity: error
rules:
  - id: r1
    flagName: log_connections
    engineFamilies: [POSTGRES]
    policy:
      kind: exact
      value: "on"
  - id: r2
    flagName: log_min_messages
    policy:
      kind: ordinal
      scale: postgres_message_severity
      parameter: severity
  - id: r3
    flagName: custom_level
    policy:
      kind: ordinal
      levels: [low, mid, high]
      value: mid
  - id: r4
    flagName: log_checkpoints
    policy:
      kind: rego
      module: |
        package flagpolicy
        allow { input.value == "on" }
`,
			wantRuleCount: 4,
		},
		{
			name: "unknownKind",
			content: `rules:
  - id: r1
    flagName: log_connections
    policy:
      kind: fuzzy
`,
			wantErrorPart: "validation failed",
		},
		{
			name: "missingParameter",
			content: `rules:
  - id: r1
    flagName: log_statement
    policy:
      kind: parameter
      parameter: log_statement
`,
			wantErrorPart: "not configured",
		},
		{
			name: "unknownScale",
			content: `rules:
  - id: r1
    flagName: log_min_messages
    policy:
      kind: ordinal
      scale: loudness
      value: loud
`,
			wantErrorPart: "unknown scale",
		},
		{
			name: "duplicatedID",
			content: `rules:
  - id: r1
    flagName: a
    policy: {kind: exact, value: "on"}
  - id: r1
    flagName: b
    policy: {kind: exact, value: "on"}
`,
			wantErrorPart: "duplicated",
		},
		{
			name:          "noRules",
			content:       "parameters: {}\n",
			wantErrorPart: "validation failed",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "catalog.yaml")
			if err := os.WriteFile(path, []byte(test.content), 0644); err != nil {
				t.Fatal(err)
			}
			rules, err := LoadCatalog(context.Background(), path, nil)
			if test.wantErrorPart != "" {
				if err == nil || !strings.Contains(err.Error(), test.wantErrorPart) {
					t.Errorf("Want error containing '%s', got %v", test.wantErrorPart, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Want NO error, got %v", err)
			}
			if len(rules) != test.wantRuleCount {
				t.Errorf("Want %d rules got %d", test.wantRuleCount, len(rules))
			}
		})
	}
}
