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
	"context"
	"fmt"

	"github.com/BrunoReboul/sqlflagaudit/utilities/inventory"
)

// load a failed read is not kept, the next call reads again
func (provider *Provider) load(ctx context.Context) (*inventory.StaticProvider, error) {
	provider.mutex.Lock()
	defer provider.mutex.Unlock()
	if provider.snapshot != nil {
		return provider.snapshot, nil
	}
	storageObjectReader, err := provider.bucket.Object(provider.objectName).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("storageObject.NewReader %s %w", provider.objectName, err)
	}
	defer storageObjectReader.Close()
	fleets, err := ReadDump(storageObjectReader, provider.scannerBufferSizeKiloBytes)
	if err != nil {
		return nil, fmt.Errorf("dump %s %w", provider.objectName, err)
	}
	provider.snapshot = &inventory.StaticProvider{Fleets: fleets}
	return provider.snapshot, nil
}
