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

import "cloud.google.com/go/bigquery"

// GetOutcomesSchema defines flagOutcomes table schema
func GetOutcomesSchema() bigquery.Schema {
	return bigquery.Schema{
		{Name: "runID", Required: true, Type: bigquery.StringFieldType, Description: "Audit run that produced the outcome"},
		{Name: "ruleID", Required: true, Type: bigquery.StringFieldType},
		{Name: "fleetID", Required: true, Type: bigquery.StringFieldType},
		{Name: "instanceID", Required: false, Type: bigquery.StringFieldType, Description: "Empty when the outcome is about the whole fleet"},
		{Name: "status", Required: true, Type: bigquery.StringFieldType},
		{Name: "detail", Required: false, Type: bigquery.StringFieldType},
		{Name: "foundValues", Repeated: true, Type: bigquery.StringFieldType, Description: "Values found for the flag, in the instance order"},
		{Name: "evaluationTimeStamp", Required: true, Type: bigquery.TimestampFieldType, Description: "When the outcome was reported"},
	}
}
