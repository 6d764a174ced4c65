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

// Package inventory memoizes the configuration state of a fleet of Cloud SQL instances for one evaluation run.
//
// A Provider answers the two questions asked about a fleet: which instances exist, and what
// is the engine and flag collection of one instance. A Cache wraps a Provider so that any
// number of rules can read the same fleet while the provider is called at most once per
// piece of information. Concurrent first-time requests for the same key are coalesced.
// A Cache never invalidates: a new run needs a new Cache.
package inventory
