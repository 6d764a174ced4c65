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

package glo

import (
	cloudlogging "cloud.google.com/go/logging"
	"github.com/BrunoReboul/sqlflagaudit/utilities/evaluation"
	"github.com/BrunoReboul/sqlflagaudit/utilities/logging"
)

// OutcomeEntry Cloud Logging entry of one outcome
func OutcomeEntry(outcome evaluation.Outcome) cloudlogging.Entry {
	labels := map[string]string{
		"run_id":   outcome.RunID,
		"rule_id":  outcome.RuleID,
		"fleet_id": outcome.FleetID,
		"status":   string(outcome.Status),
	}
	if !outcome.IsFleetLevel() {
		labels["db_instance"] = outcome.InstanceID
	}
	return cloudlogging.Entry{
		Severity: cloudlogging.ParseSeverity(logging.StatusSeverity(outcome.Status)),
		Labels:   labels,
		Payload:  outcome,
	}
}
