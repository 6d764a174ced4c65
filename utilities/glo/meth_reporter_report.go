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

package glo

import (
	"context"
	"fmt"

	"github.com/BrunoReboul/sqlflagaudit/utilities/evaluation"
)

// Report buffers the entries then flushes them, the error being the flush one.
// ctx is only checked before buffering: the client Flush cannot be cancelled.
func (reporter *Reporter) Report(ctx context.Context, outcomes []evaluation.Outcome) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("glo report %d outcomes %w", len(outcomes), err)
	}
	for _, outcome := range outcomes {
		reporter.logger.Log(OutcomeEntry(outcome))
	}
	if err := reporter.logger.Flush(); err != nil {
		return fmt.Errorf("logger.Flush %v", err)
	}
	return nil
}
