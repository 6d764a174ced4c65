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

package evaluation

import (
	"context"
	"fmt"
	"strings"

	"github.com/BrunoReboul/sqlflagaudit/utilities/rule"
	"golang.org/x/sync/errgroup"
)

// Evaluate one rule against the fleet. Outcomes follow the inventory listing order.
// It never fails: errors are reported as INDETERMINATE outcomes.
func (engine *Engine) Evaluate(ctx context.Context, r rule.Rule, inv Inventory) []Outcome {
	fleetID := inv.FleetID()
	fleetOutcome := Outcome{
		RuleID:  r.ID,
		FleetID: fleetID,
	}
	if err := r.Validate(); err != nil {
		fleetOutcome.Status = StatusIndeterminate
		fleetOutcome.Detail = fmt.Sprintf("[%s] invalid rule: %v", fleetID, err)
		return []Outcome{fleetOutcome}
	}
	identifiers, err := inv.ListInstanceIdentifiers(ctx)
	if err != nil {
		fleetOutcome.Status = StatusIndeterminate
		fleetOutcome.Detail = fmt.Sprintf("[%s] cannot list instances: %v", fleetID, err)
		return []Outcome{fleetOutcome}
	}
	if len(identifiers) == 0 {
		fleetOutcome.Status = StatusNotApplicable
		fleetOutcome.Detail = fmt.Sprintf("[%s] no instances in fleet", fleetID)
		return []Outcome{fleetOutcome}
	}

	outcomes := make([]Outcome, len(identifiers))
	var group errgroup.Group
	group.SetLimit(engine.limit())
	for i, identifier := range identifiers {
		i, identifier := i, identifier
		group.Go(func() error {
			outcomes[i] = evaluateInstance(ctx, r, inv, identifier)
			return nil
		})
	}
	_ = group.Wait()
	return outcomes
}

func evaluateInstance(ctx context.Context, r rule.Rule, inv Inventory, identifier string) (outcome Outcome) {
	fleetID := inv.FleetID()
	outcome = Outcome{
		RuleID:     r.ID,
		FleetID:    fleetID,
		InstanceID: identifier,
	}
	if err := ctx.Err(); err != nil {
		outcome.Status = StatusIndeterminate
		outcome.Detail = fmt.Sprintf("[%s, %s] evaluation cancelled: %v", fleetID, identifier, err)
		return outcome
	}
	detail, err := inv.GetDetail(ctx, identifier)
	if err != nil {
		outcome.Status = StatusIndeterminate
		outcome.Detail = fmt.Sprintf("[%s, %s] cannot get instance detail: %v", fleetID, identifier, err)
		return outcome
	}
	if !r.Applicability(detail.EngineKind) {
		outcome.Status = StatusNotApplicable
		outcome.Detail = fmt.Sprintf("[%s, %s] instance does not match target engine, engine is %s", fleetID, identifier, detail.EngineKind)
		return outcome
	}
	if !detail.HasFlagCollection() {
		outcome.Status = StatusNonCompliant
		outcome.Detail = fmt.Sprintf("[%s, %s] instance has no configurable flags", fleetID, identifier)
		return outcome
	}

	var satisfied bool
	var policyErr error
	for _, flag := range detail.Flags {
		if flag.Name != r.FlagName {
			continue
		}
		outcome.FoundValues = append(outcome.FoundValues, flag.Value)
		ok, err := r.Policy.Satisfies(ctx, flag.Value)
		if err != nil {
			policyErr = err
			continue
		}
		satisfied = satisfied || ok
	}

	switch {
	case satisfied:
		outcome.Status = StatusCompliant
		outcome.Detail = fmt.Sprintf("[%s, %s] flag '%s' is %s", fleetID, identifier, r.FlagName, r.Policy)
	case policyErr != nil:
		outcome.Status = StatusIndeterminate
		outcome.Detail = fmt.Sprintf("[%s, %s] cannot evaluate flag '%s': %v", fleetID, identifier, r.FlagName, policyErr)
	case len(outcome.FoundValues) == 0:
		outcome.Status = StatusNonCompliant
		outcome.Detail = fmt.Sprintf("[%s, %s] flag '%s' not present", fleetID, identifier, r.FlagName)
	default:
		outcome.Status = StatusNonCompliant
		outcome.Detail = fmt.Sprintf("[%s, %s] flag '%s' found with value(s) '%s', want %s",
			fleetID, identifier, r.FlagName, strings.Join(outcome.FoundValues, "', '"), r.Policy)
	}
	return outcome
}
