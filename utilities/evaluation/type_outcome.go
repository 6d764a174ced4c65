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

package evaluation

// Status compliance outcome of one rule on one instance
type Status string

// Outcome statuses, all terminal
const (
	StatusCompliant     Status = "COMPLIANT"
	StatusNonCompliant  Status = "NON_COMPLIANT"
	StatusNotApplicable Status = "NOT_APPLICABLE"
	StatusIndeterminate Status = "INDETERMINATE"
)

// Outcome result of one rule on one instance, or on the whole fleet when InstanceID is empty
type Outcome struct {
	RunID       string   `json:"runID,omitempty"`
	RuleID      string   `json:"ruleID"`
	FleetID     string   `json:"fleetID"`
	InstanceID  string   `json:"instanceID,omitempty"`
	Status      Status   `json:"status"`
	Detail      string   `json:"detail"`
	FoundValues []string `json:"foundValues,omitempty"`
}

// IsFleetLevel true when the outcome is not about one instance
func (outcome Outcome) IsFleetLevel() bool {
	return outcome.InstanceID == ""
}
