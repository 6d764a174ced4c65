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

import "fmt"

// Rule one database flag compliance check
type Rule struct {
	ID            string
	Title         string
	FlagName      string
	Policy        ValuePolicy
	Applicability Applicability
}

// Validate checks the rule can be evaluated
func (r Rule) Validate() error {
	switch {
	case r.ID == "":
		return fmt.Errorf("rule has no ID")
	case r.FlagName == "":
		return fmt.Errorf("rule %s has no flag name", r.ID)
	case r.Policy == nil:
		return fmt.Errorf("rule %s has no value policy", r.ID)
	case r.Applicability == nil:
		return fmt.Errorf("rule %s has no applicability predicate", r.ID)
	}
	return nil
}
