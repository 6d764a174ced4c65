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

// Package evaluation applies database flag rules to a fleet inventory.
//
// Each (rule, instance) pair yields exactly one Outcome. An empty fleet yields one fleet
// level NOT_APPLICABLE outcome per rule. Inventory failures never escape: they become
// INDETERMINATE outcomes scoped to the affected pair, and the rest of the fleet is still
// evaluated. Missing flag collections and missing flags are NON_COMPLIANT findings.
package evaluation
