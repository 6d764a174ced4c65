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

package gfs

import (
	"context"
	"fmt"

	"github.com/BrunoReboul/sqlflagaudit/utilities/cai"
	"github.com/BrunoReboul/sqlflagaudit/utilities/inventory"
	"github.com/BrunoReboul/sqlflagaudit/utilities/str"
)

// FetchInstanceDetail reads the asset document of one instance
func (provider *Provider) FetchInstanceDetail(ctx context.Context, fleetID string, identifier string) (inventory.InstanceDetail, error) {
	documentPath := DocumentPath(provider.collectionID, cai.SQLInstanceAssetName(fleetID, identifier))
	documentSnap, found, err := GetDoc(ctx, provider.client, documentPath, provider.retriesNumber)
	if err != nil {
		return inventory.InstanceDetail{}, fmt.Errorf("GetDoc %s %w", documentPath, err)
	}
	if !found {
		return inventory.InstanceDetail{}, fmt.Errorf("document %s not found", documentPath)
	}
	detail, deleted, err := DecodeAssetDocument(documentSnap.Data())
	if err != nil {
		return inventory.InstanceDetail{}, fmt.Errorf("document %s %w", documentPath, err)
	}
	if deleted {
		return inventory.InstanceDetail{}, fmt.Errorf("document %s is a deleted asset", documentPath)
	}
	return detail, nil
}

// DocumentPath path of the document of an asset in a collection
func DocumentPath(collectionID string, assetName string) string {
	return collectionID + "/" + str.RevertSlash(assetName)
}
