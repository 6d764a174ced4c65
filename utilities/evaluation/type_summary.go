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

// Impact levels of a rule on a fleet
const (
	ImpactNone   = "none"
	ImpactMedium = "medium"
)

// Summary counts of one run
type Summary struct {
	RunID   string            `json:"runID"`
	FleetID string            `json:"fleetID"`
	Counts  map[Status]int    `json:"counts"`
	Impacts map[string]string `json:"impacts"`
}

func newSummary(runID string, fleetID string) Summary {
	return Summary{
		RunID:   runID,
		FleetID: fleetID,
		Counts:  make(map[Status]int),
		Impacts: make(map[string]string),
	}
}

// add a rule is of impact none when no instance was in scope
func (summary *Summary) add(ruleID string, outcomes []Outcome) {
	impact := ImpactNone
	for _, outcome := range outcomes {
		summary.Counts[outcome.Status]++
		if outcome.Status != StatusNotApplicable {
			impact = ImpactMedium
		}
	}
	summary.Impacts[ruleID] = impact
}

// HasAny true when at least one outcome has one of the statuses
func (summary Summary) HasAny(statuses ...Status) bool {
	for _, status := range statuses {
		if summary.Counts[status] > 0 {
			return true
		}
	}
	return false
}
