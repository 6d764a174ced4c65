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

	"cloud.google.com/go/bigquery"
)

// Reporter streams outcomes into a BigQuery table
type Reporter struct {
	inserter *bigquery.Inserter
	now      func() time.Time
}

// NewReporter the table is expected to have the flagOutcomes schema
func NewReporter(table *bigquery.Table) *Reporter {
	return &Reporter{
		inserter: table.Inserter(),
		now:      time.Now,
	}
}
