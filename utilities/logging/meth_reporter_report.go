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
	"context"
	"time"

	"github.com/BrunoReboul/sqlflagaudit/utilities/evaluation"
)

// Report writing to a logger does not fail
func (reporter *Reporter) Report(ctx context.Context, outcomes []evaluation.Outcome) error {
	now := time.Now()
	for _, outcome := range outcomes {
		reporter.logger.Println(reporter.Entry(outcome, &now))
	}
	return nil
}

// Entry log entry of one outcome
func (reporter *Reporter) Entry(outcome evaluation.Outcome, now *time.Time) Entry {
	return Entry{
		MicroserviceName: reporter.MicroserviceName,
		InstanceName:     reporter.InstanceName,
		Environment:      reporter.Environment,
		Severity:         StatusSeverity(outcome.Status),
		Message:          "outcome",
		Description:      outcome.Detail,
		Now:              now,
		RunID:            outcome.RunID,
		FleetID:          outcome.FleetID,
		RuleID:           outcome.RuleID,
		DBInstance:       outcome.InstanceID,
		Status:           string(outcome.Status),
		FoundValues:      outcome.FoundValues,
	}
}
