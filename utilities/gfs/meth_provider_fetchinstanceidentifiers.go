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
	"google.golang.org/api/iterator"
)

// FetchInstanceIdentifiers names of the non deleted Cloud SQL instance assets of the project, in document ID order
func (provider *Provider) FetchInstanceIdentifiers(ctx context.Context, fleetID string) ([]string, error) {
	iter := provider.client.Collection(provider.collectionID).
		Where("asset.assetType", "==", cai.SQLInstanceAssetType).
		Where("asset.resource.data.project", "==", fleetID).
		Documents(ctx)
	defer iter.Stop()
	identifiers := []string{}
	for {
		documentSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("firestore query %s %s %w", provider.collectionID, fleetID, err)
		}
		detail, deleted, err := DecodeAssetDocument(documentSnap.Data())
		if err != nil {
			return nil, fmt.Errorf("document %s %w", documentSnap.Ref.ID, err)
		}
		if deleted {
			continue
		}
		identifiers = append(identifiers, detail.Identifier)
	}
	return identifiers, nil
}
