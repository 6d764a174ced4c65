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
	"encoding/json"
	"fmt"

	"github.com/BrunoReboul/sqlflagaudit/utilities/inventory"
)

type sqlInstanceData struct {
	Name            string `json:"name"`
	Project         string `json:"project"`
	DatabaseVersion string `json:"databaseVersion"`
	Settings        *struct {
		DatabaseFlags []inventory.FlagSetting `json:"databaseFlags"`
	} `json:"settings"`
}

// DecodeSQLInstance decodes the resource data of a Cloud SQL instance asset.
// An absent databaseFlags stays a nil collection, an empty one stays empty.
func DecodeSQLInstance(data []byte) (detail inventory.InstanceDetail, projectID string, err error) {
	var instance sqlInstanceData
	err = json.Unmarshal(data, &instance)
	if err != nil {
		return detail, "", fmt.Errorf("json.Unmarshal sql instance resource data %v", err)
	}
	if instance.Name == "" {
		return detail, "", fmt.Errorf("sql instance resource data has no name")
	}
	detail.Identifier = instance.Name
	detail.EngineKind = instance.DatabaseVersion
	if instance.Settings != nil {
		detail.Flags = instance.Settings.DatabaseFlags
	}
	return detail, instance.Project, nil
}
