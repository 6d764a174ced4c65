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
	"cloud.google.com/go/pubsub"
)

// Reporter publishes each outcome as one JSON message, attributes carrying the run, rule and status
type Reporter struct {
	topic                   *pubsub.Topic
	logEventEveryXPubSubMsg uint64
}

// NewReporter topic is the compliance status topic
func NewReporter(topic *pubsub.Topic, logEventEveryXPubSubMsg uint64) *Reporter {
	return &Reporter{
		topic:                   topic,
		logEventEveryXPubSubMsg: logEventEveryXPubSubMsg,
	}
}
