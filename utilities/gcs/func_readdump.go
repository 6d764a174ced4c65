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

package gcs

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BrunoReboul/sqlflagaudit/utilities/cai"
	"github.com/BrunoReboul/sqlflagaudit/utilities/inventory"
)

// dumpLine one asset of an export, both the export and the feed spelling of the asset type
type dumpLine struct {
	Name            string `json:"name"`
	AssetType       string `json:"assetType"`
	AssetTypeLegacy string `json:"asset_type"`
	Resource        struct {
		Data json.RawMessage `json:"data"`
	} `json:"resource"`
}

// ReadDump groups the Cloud SQL instances of a newline delimited JSON export by project, in dump order.
// Other asset types are ignored.
func ReadDump(r io.Reader, scannerBufferSizeKiloBytes int) (map[string][]inventory.InstanceDetail, error) {
	fleets := make(map[string][]inventory.InstanceDetail)
	scanner := bufio.NewScanner(r)
	scannerBuffer := make([]byte, scannerBufferSizeKiloBytes*1024)
	scanner.Buffer(scannerBuffer, scannerBufferSizeKiloBytes*1024)
	var lineNumber int
	for scanner.Scan() {
		lineNumber++
		if strings.TrimSpace(scanner.Text()) == "" {
			continue
		}
		var line dumpLine
		err := json.Unmarshal(scanner.Bytes(), &line)
		if err != nil {
			return nil, fmt.Errorf("line %d json.Unmarshal %v", lineNumber, err)
		}
		if line.AssetType != cai.SQLInstanceAssetType && line.AssetTypeLegacy != cai.SQLInstanceAssetType {
			continue
		}
		detail, projectID, err := cai.DecodeSQLInstance(line.Resource.Data)
		if err != nil {
			return nil, fmt.Errorf("line %d asset %s %v", lineNumber, line.Name, err)
		}
		if projectID == "" {
			projectID = projectFromAssetName(line.Name)
		}
		fleets[projectID] = append(fleets[projectID], detail)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner.Err %v", err)
	}
	return fleets, nil
}

func projectFromAssetName(assetName string) string {
	parts := strings.Split(assetName, "/")
	for i, part := range parts {
		if part == "projects" && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return ""
}
