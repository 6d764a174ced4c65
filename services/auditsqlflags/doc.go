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

/*
Package auditsqlflags audits the database flags of the Cloud SQL instances of a project.

Triggered by a Pub/Sub message carrying the project to audit, or run from the command line,
it evaluates a rule catalog, the built-in CIS GCP 6.2 PostgreSQL controls or a YAML catalog,
against the project instances and reports one outcome per rule and instance.

Instances are read from one of:

- `sqladmin` the Cloud SQL Admin API
- `cai` the Cloud Asset Inventory ListAssets API
- `firestore` the assets collection fed by Cloud Asset Inventory feeds
- `gcs` a Cloud Asset Inventory export dump
- `snapshot` a YAML snapshot file

Outcomes are reported to one of:

- `log` structured JSON lines on stdout
- `pubsub` the compliance status topic
- `cloudlogging` the Cloud Logging API
- `bigquery` streaming inserts into the flagOutcomes table

Each run reads the inventory once, whatever the number of rules.
*/
package auditsqlflags
