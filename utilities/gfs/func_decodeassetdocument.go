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
	"encoding/json"
	"fmt"

	"github.com/BrunoReboul/sqlflagaudit/utilities/cai"
	"github.com/BrunoReboul/sqlflagaudit/utilities/inventory"
)

type assetDocument struct {
	Asset struct {
		Name      string `json:"name"`
		AssetType string `json:"assetType"`
		Resource  struct {
			Data json.RawMessage `json:"data"`
		} `json:"resource"`
	} `json:"asset"`
	Deleted bool `json:"deleted"`
}

// DecodeAssetDocument decodes the firestore data of a Cloud SQL instance asset document
func DecodeAssetDocument(data map[string]interface{}) (detail inventory.InstanceDetail, deleted bool, err error) {
	b, err := json.Marshal(data)
	if err != nil {
		return detail, false, fmt.Errorf("json.Marshal %v", err)
	}
	var doc assetDocument
	err = json.Unmarshal(b, &doc)
	if err != nil {
		return detail, false, fmt.Errorf("json.Unmarshal %v", err)
	}
	if doc.Asset.AssetType != cai.SQLInstanceAssetType {
		return detail, false, fmt.Errorf("asset %s is of type %s, want %s", doc.Asset.Name, doc.Asset.AssetType, cai.SQLInstanceAssetType)
	}
	if doc.Deleted {
		return detail, true, nil
	}
	detail, _, err = cai.DecodeSQLInstance(doc.Asset.Resource.Data)
	if err != nil {
		return detail, false, fmt.Errorf("asset %s %v", doc.Asset.Name, err)
	}
	return detail, false, nil
}
