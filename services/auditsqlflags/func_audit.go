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

package auditsqlflags

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/BrunoReboul/sqlflagaudit/utilities/evaluation"
	"github.com/BrunoReboul/sqlflagaudit/utilities/inventory"
	"github.com/BrunoReboul/sqlflagaudit/utilities/logging"
	"github.com/google/uuid"
)

// Audit evaluates all rules against one fleet, with a fresh inventory cache and run id.
// The error is a reporter delivery failure, outcomes themselves never fail the audit.
func Audit(ctx context.Context, global *Global, fleetID string) (evaluation.Summary, error) {
	runID := fmt.Sprintf("%v", uuid.New())
	start := time.Now()
	log.Println(logging.Entry{
		MicroserviceName: global.microserviceName,
		InstanceName:     global.instanceName,
		Environment:      global.environment,
		Severity:         "NOTICE",
		Message:          "start",
		Description:      fmt.Sprintf("%d rules", len(global.rules)),
		Now:              &start,
		RunID:            runID,
		FleetID:          fleetID,
	})

	cache := inventory.NewCache(global.provider, fleetID)
	summary, err := global.engine.Run(ctx, runID, global.rules, cache, global.reporter)
	now := time.Now()
	if err != nil {
		log.Println(logging.Entry{
			MicroserviceName: global.microserviceName,
			InstanceName:     global.instanceName,
			Environment:      global.environment,
			Severity:         "CRITICAL",
			Message:          "redo_on_transient",
			Description:      fmt.Sprintf("engine.Run %v", err),
			Now:              &now,
			RunID:            runID,
			FleetID:          fleetID,
			LatencySeconds:   sinceSeconds(start),
		})
		return summary, err
	}
	log.Println(logging.Entry{
		MicroserviceName: global.microserviceName,
		InstanceName:     global.instanceName,
		Environment:      global.environment,
		Severity:         "NOTICE",
		Message:          "finish",
		Description: fmt.Sprintf("compliant %d non_compliant %d not_applicable %d indeterminate %d",
			summary.Counts[evaluation.StatusCompliant],
			summary.Counts[evaluation.StatusNonCompliant],
			summary.Counts[evaluation.StatusNotApplicable],
			summary.Counts[evaluation.StatusIndeterminate]),
		Now:            &now,
		RunID:          runID,
		FleetID:        fleetID,
		LatencySeconds: sinceSeconds(start),
	})
	return summary, nil
}
