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

// Package rule describes database flag compliance rules as data.
//
// A Rule names the flag to look for, the ValuePolicy its value must satisfy and the
// Applicability predicate selecting the instances in scope. Rules are built once, before
// any evaluation, either from a YAML catalog or from the built-in CIS catalog, and are
// shared read-only afterwards. Building a rule never calls an inventory provider.
package rule
