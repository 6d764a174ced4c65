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
	"context"

	"github.com/BrunoReboul/sqlflagaudit/utilities/inventory"
)

// FetchInstanceDetail serves the detail captured by the fleet listing, listing first when needed
func (provider *Provider) FetchInstanceDetail(ctx context.Context, fleetID string, identifier string) (inventory.InstanceDetail, error) {
	provider.mutex.Lock()
	_, loaded := provider.snapshot.Fleets[fleetID]
	provider.mutex.Unlock()
	if !loaded {
		if err := provider.load(ctx, fleetID); err != nil {
			return inventory.InstanceDetail{}, err
		}
	}
	provider.mutex.Lock()
	defer provider.mutex.Unlock()
	return provider.snapshot.FetchInstanceDetail(ctx, fleetID, identifier)
}
