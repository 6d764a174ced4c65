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

// Catalog the YAML form of a rule set
type Catalog struct {
	Parameters Parameters     `yaml:"parameters"`
	Rules      []RuleSettings `yaml:"rules" valid:"isNotZeroValue"`
}

// RuleSettings the YAML form of one rule
type RuleSettings struct {
	ID             string         `yaml:"id" valid:"isNotZeroValue"`
	Title          string         `yaml:"title"`
	FlagName       string         `yaml:"flagName" valid:"isNotZeroValue"`
	EngineFamilies []string       `yaml:"engineFamilies"`
	Policy         PolicySettings `yaml:"policy"`
}

// PolicySettings the YAML form of a value policy.
// Value is the literal, or the ordinal minimum when Parameter is empty.
// Scale names a built-in scale, Levels declares an inline one.
type PolicySettings struct {
	Kind      string   `yaml:"kind" valid:"isOneOf,exact|parameter|ordinal|rego"`
	Value     string   `yaml:"value"`
	Parameter string   `yaml:"parameter"`
	Scale     string   `yaml:"scale"`
	Levels    []string `yaml:"levels"`
	Module    string   `yaml:"module"`
}

const (
	policyKindExact     = "exact"
	policyKindParameter = "parameter"
	policyKindOrdinal   = "ordinal"
	policyKindRego      = "rego"
)
