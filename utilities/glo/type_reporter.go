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
	cloudlogging "cloud.google.com/go/logging"
)

// Reporter writes one Cloud Logging entry per outcome, the outcome being the JSON payload
type Reporter struct {
	logger *cloudlogging.Logger
}

// NewReporter logID names the log, labels are set on every entry
func NewReporter(client *cloudlogging.Client, logID string, labels map[string]string) *Reporter {
	return &Reporter{
		logger: client.Logger(logID, cloudlogging.CommonLabels(labels)),
	}
}
