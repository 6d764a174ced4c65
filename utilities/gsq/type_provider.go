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

package gsq

import (
	"sync"
	"time"

	"google.golang.org/api/sqladmin/v1beta4"
)

// Provider inventory provider backed by the Cloud SQL Admin API, a fleet being a project.
// The instances returned by a listing are kept so that detail fetches do not call the API again.
type Provider struct {
	service *sqladmin.Service
	retries int
	waitSec time.Duration
	mutex   sync.Mutex
	listed  map[string]*sqladmin.DatabaseInstance
}

// NewProvider retries transient failures up to retries times, waiting waitSec seconds in between
func NewProvider(service *sqladmin.Service, retries int, waitSec time.Duration) *Provider {
	return &Provider{
		service: service,
		retries: retries,
		waitSec: waitSec,
		listed:  make(map[string]*sqladmin.DatabaseInstance),
	}
}

func listedKey(projectID string, instanceName string) string {
	return projectID + "/" + instanceName
}
