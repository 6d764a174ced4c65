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
	"fmt"

	"github.com/BrunoReboul/sqlflagaudit/utilities/erm"
	"github.com/BrunoReboul/sqlflagaudit/utilities/inventory"
	assetpb "google.golang.org/genproto/googleapis/cloud/asset/v1"
)

// FetchInstanceIdentifiers lists the fleet SQL instance assets, fleetID being a project ID
func (provider *Provider) FetchInstanceIdentifiers(ctx context.Context, fleetID string) ([]string, error) {
	if err := provider.load(ctx, fleetID); err != nil {
		return nil, err
	}
	provider.mutex.Lock()
	defer provider.mutex.Unlock()
	return provider.snapshot.FetchInstanceIdentifiers(ctx, fleetID)
}

func (provider *Provider) load(ctx context.Context, fleetID string) (err error) {
	var details []inventory.InstanceDetail
	for i := 0; ; i++ {
		it := provider.client.ListAssets(ctx, &assetpb.ListAssetsRequest{
			Parent:      fmt.Sprintf("projects/%s", fleetID),
			AssetTypes:  []string{SQLInstanceAssetType},
			ContentType: assetpb.ContentType_RESOURCE,
		})
		details, err = CollectSQLInstances(it.Next)
		if err == nil {
			break
		}
		if i >= provider.retries || erm.IsNotTransientElseWait(ctx, err, provider.waitSec) {
			return fmt.Errorf("ListAssets %s %w", fleetID, err)
		}
	}
	provider.mutex.Lock()
	defer provider.mutex.Unlock()
	provider.snapshot.Fleets[fleetID] = details
	return nil
}
