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
	"sync"

	"github.com/BrunoReboul/sqlflagaudit/utilities/rule"
	"golang.org/x/sync/errgroup"
)

// Run evaluates all rules and hands each rule outcomes to the reporter as soon as the rule is done.
// Outcomes produced before a cancellation are still delivered. The error is the first delivery failure.
func (engine *Engine) Run(ctx context.Context, runID string, rules []rule.Rule, inv Inventory, reporter Reporter) (Summary, error) {
	summary := newSummary(runID, inv.FleetID())
	deliveryCtx := context.WithoutCancel(ctx)

	var mutex sync.Mutex
	var reportErr error
	var group errgroup.Group
	group.SetLimit(engine.limit())
	for _, r := range rules {
		r := r
		group.Go(func() error {
			outcomes := engine.Evaluate(ctx, r, inv)
			for i := range outcomes {
				outcomes[i].RunID = runID
			}
			var err error
			if reporter != nil {
				err = reporter.Report(deliveryCtx, outcomes)
			}
			mutex.Lock()
			defer mutex.Unlock()
			summary.add(r.ID, outcomes)
			if err != nil && reportErr == nil {
				reportErr = fmt.Errorf("report %s: %w", r.ID, err)
			}
			return nil
		})
	}
	_ = group.Wait()
	return summary, reportErr
}
