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

package cai

import (
	"sync"
	"time"

	asset "cloud.google.com/go/asset/apiv1"
	"github.com/BrunoReboul/sqlflagaudit/utilities/inventory"
)

// Provider lists the Cloud SQL instances of a project with the Cloud Asset Inventory ListAssets API.
// One ListAssets call returns every instance detail of a fleet, kept for the detail fetches that follow.
type Provider struct {
	client   *asset.Client
	retries  int
	waitSec  time.Duration
	mutex    sync.Mutex
	snapshot inventory.StaticProvider
}

// NewProvider retries transient failures up to retries times, waiting waitSec seconds in between
func NewProvider(client *asset.Client, retries int, waitSec time.Duration) *Provider {
	return &Provider{
		client:   client,
		retries:  retries,
		waitSec:  waitSec,
		snapshot: inventory.StaticProvider{Fleets: make(map[string][]inventory.InstanceDetail)},
	}
}
