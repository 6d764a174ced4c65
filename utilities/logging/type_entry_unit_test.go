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

package logging

import (
	"encoding/json"
	"testing"
)

func TestUnitEntryString(t *testing.T) {
	var testCases = []struct {
		name         string
		entry        Entry
		wantSeverity string
	}{
		{
			name:         "defaultSeverity",
			entry:        Entry{Message: "start"},
			wantSeverity: "INFO",
		},
		{
			name:         "keepSeverity",
			entry:        Entry{Message: "init_failed", Severity: "CRITICAL"},
			wantSeverity: "CRITICAL",
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var got map[string]interface{}
			if err := json.Unmarshal([]byte(tc.entry.String()), &got); err != nil {
				t.Fatalf("json.Unmarshal %v", err)
			}
			if got["severity"] != tc.wantSeverity {
				t.Errorf("want severity %s got %v", tc.wantSeverity, got["severity"])
			}
			if got["message"] != tc.entry.Message {
				t.Errorf("want message %s got %v", tc.entry.Message, got["message"])
			}
			if _, ok := got["now"]; ok {
				t.Errorf("now should be omitted when nil")
			}
		})
	}
}
