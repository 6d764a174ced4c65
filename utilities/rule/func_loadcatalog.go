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

package rule

import (
	"context"

	"github.com/BrunoReboul/sqlflagaudit/utilities/ffo"
)

// LoadCatalog reads a YAML catalog file and builds its rules
func LoadCatalog(ctx context.Context, path string, overrides Parameters) ([]Rule, error) {
	var catalog Catalog
	if err := ffo.ReadUnmarshalYAML(path, &catalog); err != nil {
		return nil, err
	}
	return catalog.Build(ctx, overrides)
}
