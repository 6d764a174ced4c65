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
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
	"github.com/BrunoReboul/sqlflagaudit/utilities/evaluation"
)

// Report inserts one row per outcome in a single streaming call
func (reporter *Reporter) Report(ctx context.Context, outcomes []evaluation.Outcome) error {
	if len(outcomes) == 0 {
		return nil
	}
	now := reporter.now().UTC()
	schema := GetOutcomesSchema()
	savers := make([]*bigquery.StructSaver, 0, len(outcomes))
	for _, outcome := range outcomes {
		row := NewOutcomeRow(outcome, now)
		savers = append(savers, &bigquery.StructSaver{Struct: row, Schema: schema, InsertID: row.InsertID()})
	}
	if err := reporter.inserter.Put(ctx, savers); err != nil {
		if multiError, ok := err.(bigquery.PutMultiError); ok {
			return fmt.Errorf("inserter.Put %d of %d rows failed, first: %v", len(multiError), len(savers), multiError[0])
		}
		return fmt.Errorf("inserter.Put %v", err)
	}
	return nil
}
