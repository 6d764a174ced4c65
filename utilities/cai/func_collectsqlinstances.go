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
	"fmt"

	"github.com/BrunoReboul/sqlflagaudit/utilities/inventory"
	"google.golang.org/api/iterator"
	assetpb "google.golang.org/genproto/googleapis/cloud/asset/v1"
	"google.golang.org/protobuf/encoding/protojson"
)

// CollectSQLInstances drains an asset iterator, in iterator order
func CollectSQLInstances(next func() (*assetpb.Asset, error)) (details []inventory.InstanceDetail, err error) {
	details = []inventory.InstanceDetail{}
	for {
		a, err := next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		if a.GetResource().GetData() == nil {
			return nil, fmt.Errorf("asset %s has no resource data", a.GetName())
		}
		data, err := protojson.Marshal(a.GetResource().GetData())
		if err != nil {
			return nil, fmt.Errorf("protojson.Marshal %s %v", a.GetName(), err)
		}
		detail, _, err := DecodeSQLInstance(data)
		if err != nil {
			return nil, fmt.Errorf("asset %s %v", a.GetName(), err)
		}
		details = append(details, detail)
	}
	return details, nil
}
