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

package gps

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"cloud.google.com/go/pubsub"
	"github.com/BrunoReboul/sqlflagaudit/utilities/evaluation"
)

// Report publishes all outcomes then waits for every publish call result
func (reporter *Reporter) Report(ctx context.Context, outcomes []evaluation.Outcome) error {
	var waitgroup sync.WaitGroup
	var pubSubErrNumber, pubSubMsgNumber uint64
	for _, outcome := range outcomes {
		outcomeJSON, err := json.Marshal(outcome)
		if err != nil {
			return fmt.Errorf("json.Marshal(outcome) %v", err)
		}
		pubSubMessage := &pubsub.Message{
			Data: outcomeJSON,
			Attributes: map[string]string{
				"runID":  outcome.RunID,
				"ruleID": outcome.RuleID,
				"status": string(outcome.Status),
			},
		}
		publishResult := reporter.topic.Publish(ctx, pubSubMessage)
		waitgroup.Add(1)
		go GetPublishCallResult(ctx, publishResult, &waitgroup, outcome.RuleID+"/"+outcome.InstanceID, &pubSubErrNumber, &pubSubMsgNumber, reporter.logEventEveryXPubSubMsg)
	}
	waitgroup.Wait()
	if pubSubErrNumber > 0 {
		return fmt.Errorf("%d of %d outcomes not published to %s", pubSubErrNumber, len(outcomes), reporter.topic.ID())
	}
	return nil
}
