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

package rule

import "strings"

// Applicability tells whether an instance running engineKind is in scope of a rule.
// It must be pure.
type Applicability func(engineKind string) bool

// EngineFamily matches engine kinds containing one of the families, case sensitive,
// e.g. POSTGRES matches POSTGRES_9_6 and POSTGRES_15
func EngineFamily(families ...string) Applicability {
	families = append([]string(nil), families...)
	return func(engineKind string) bool {
		for _, family := range families {
			if family != "" && strings.Contains(engineKind, family) {
				return true
			}
		}
		return false
	}
}

// AnyEngine matches all instances
func AnyEngine() Applicability {
	return func(string) bool {
		return true
	}
}
