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

import (
	"context"
	"fmt"

	"github.com/BrunoReboul/sqlflagaudit/utilities/validater"
)

// Build turns the catalog into rules, in catalog order.
// overrides take precedence over the catalog parameters.
func (catalog Catalog) Build(ctx context.Context, overrides Parameters) (rules []Rule, err error) {
	if err = validater.ValidateStruct(catalog, "catalog"); err != nil {
		return nil, err
	}
	parameters := catalog.Parameters.Merge(overrides)
	ids := make(map[string]bool, len(catalog.Rules))
	for _, settings := range catalog.Rules {
		r, err := settings.Build(ctx, parameters)
		if err != nil {
			return nil, err
		}
		if ids[r.ID] {
			return nil, fmt.Errorf("duplicated rule id %s", r.ID)
		}
		ids[r.ID] = true
		rules = append(rules, r)
	}
	return rules, nil
}

// Build turns one rule settings into a rule
func (settings RuleSettings) Build(ctx context.Context, parameters Parameters) (Rule, error) {
	if err := validater.ValidateStruct(settings, "rules/"+settings.ID); err != nil {
		return Rule{}, err
	}
	policy, err := settings.Policy.build(ctx, parameters)
	if err != nil {
		return Rule{}, fmt.Errorf("rule %s: %v", settings.ID, err)
	}
	applicability := AnyEngine()
	if len(settings.EngineFamilies) > 0 {
		applicability = EngineFamily(settings.EngineFamilies...)
	}
	r := Rule{
		ID:            settings.ID,
		Title:         settings.Title,
		FlagName:      settings.FlagName,
		Policy:        policy,
		Applicability: applicability,
	}
	return r, r.Validate()
}

func (settings PolicySettings) build(ctx context.Context, parameters Parameters) (ValuePolicy, error) {
	switch settings.Kind {
	case policyKindExact:
		return ExactMatch{Expected: settings.Value}, nil
	case policyKindParameter:
		return NewParameterMatch(settings.Parameter, parameters)
	case policyKindOrdinal:
		scale, err := settings.scale()
		if err != nil {
			return nil, err
		}
		minimum := settings.Value
		if settings.Parameter != "" {
			var ok bool
			if minimum, ok = parameters[settings.Parameter]; !ok {
				return nil, fmt.Errorf("parameter '%s' is not configured", settings.Parameter)
			}
		}
		return NewOrdinalThreshold(scale, minimum)
	case policyKindRego:
		return NewRegoPolicy(ctx, settings.Module)
	}
	return nil, fmt.Errorf("unsupported policy kind '%s'", settings.Kind)
}

func (settings PolicySettings) scale() (Scale, error) {
	if len(settings.Levels) > 0 {
		return Scale{Name: settings.Scale, Levels: settings.Levels}, nil
	}
	scale, ok := Scales[settings.Scale]
	if !ok {
		return Scale{}, fmt.Errorf("unknown scale '%s'", settings.Scale)
	}
	return scale, nil
}
