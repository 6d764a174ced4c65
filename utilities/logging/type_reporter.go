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

package logging

import (
	"log"
	"os"
)

// Reporter writes each outcome as one structured entry
type Reporter struct {
	MicroserviceName string
	InstanceName     string
	Environment      string
	logger           *log.Logger
}

// NewReporter nil logger means stdout without prefix, one JSON entry per line
func NewReporter(microserviceName string, instanceName string, environment string, logger *log.Logger) *Reporter {
	if logger == nil {
		logger = log.New(os.Stdout, "", 0)
	}
	return &Reporter{
		MicroserviceName: microserviceName,
		InstanceName:     instanceName,
		Environment:      environment,
		logger:           logger,
	}
}
