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

package gbq

import (
	"time"

	"github.com/BrunoReboul/sqlflagaudit/utilities/evaluation"
)

// OutcomeRow flagOutcomes table row
type OutcomeRow struct {
	RunID               string    `bigquery:"runID"`
	RuleID              string    `bigquery:"ruleID"`
	FleetID             string    `bigquery:"fleetID"`
	InstanceID          string    `bigquery:"instanceID"`
	Status              string    `bigquery:"status"`
	Detail              string    `bigquery:"detail"`
	FoundValues         []string  `bigquery:"foundValues"`
	EvaluationTimeStamp time.Time `bigquery:"evaluationTimeStamp"`
}

// NewOutcomeRow converts an outcome into a row
func NewOutcomeRow(outcome evaluation.Outcome, now time.Time) OutcomeRow {
	return OutcomeRow{
		RunID:               outcome.RunID,
		RuleID:              outcome.RuleID,
		FleetID:             outcome.FleetID,
		InstanceID:          outcome.InstanceID,
		Status:              string(outcome.Status),
		Detail:              outcome.Detail,
		FoundValues:         outcome.FoundValues,
		EvaluationTimeStamp: now,
	}
}

// InsertID deduplicates retried inserts of the same outcome
func (row OutcomeRow) InsertID() string {
	return row.RunID + "/" + row.RuleID + "/" + row.FleetID + "/" + row.InstanceID
}
