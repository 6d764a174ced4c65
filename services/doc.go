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
Package services structure

Service packages share a consistent structure so that the same code runs as a background cloud function and from the command line

## Three functions and one type

### `Initialize` function

- Goal
  - Reduce the invocation latency by preparing once what every audit needs
- Implementation
  - Is executed once per cloud function instance as a cold start, or once per command line run
  - Reads, situates and validates the yaml settings file
  - Caches objects expensive to create, like clients, the rules and the evaluation engine
  - Exposes cached objects and settings in one variable of type `Global`

### `Global` type

- A `struct` carrying what `Initialize` prepared, used by `EntryPoint` and `Audit`
- Holds the closers releasing the clients

### `EntryPoint` function

- Goal
  - Execute the audit each time the cloud function is triggered
- Implementation
  - Decodes the triggering Pub/Sub message
  - Logs and drops messages that cannot be processed, returns an error only when a retry may succeed

### `Audit` function

- Audits one fleet with a fresh inventory cache and a new run identifier
- Returns the summary of the outcomes by status
*/
package services
