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
Package sqlflagaudit Cloud SQL database flag compliance auditor

## What

Audit the database flags of the Cloud SQL instances of a project against a set of rules, like the CIS Google Cloud Platform Foundation Benchmark 6.2 controls for PostgreSQL. Each rule yields one outcome per instance: compliant, non compliant, not applicable, or indeterminate when the instance configuration could not be read.

## How

- `utilities/inventory` caches the instance list and the instance details so that any number of rules read the fleet with a single fetch per piece of information
- `utilities/rule` defines rules: the flag to check, the engines it applies to, and the value policy, exact, organization parameter, ordinal threshold, or rego
- `utilities/evaluation` evaluates rules in parallel and hands outcomes to a reporter
- `services/auditsqlflags` wires inventory providers, reporters and rule catalogs from a yaml settings file
- `function` is the background cloud function triggered by Pub/Sub, `cmd/sqlflagaudit` the command line

## Why

- Database flags drift: an instance created by hand, or a flag removed during an incident, silently weakens logging and auditing
- A missing flag is a finding, not an error: the audit fails closed
*/
package sqlflagaudit
