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
	"sync"

	"cloud.google.com/go/storage"
	"github.com/BrunoReboul/sqlflagaudit/utilities/inventory"
)

// Provider inventory provider over one export dump object. The dump is read once, on first use,
// and serves every fleet it contains.
type Provider struct {
	bucket                     *storage.BucketHandle
	objectName                 string
	scannerBufferSizeKiloBytes int
	mutex                      sync.Mutex
	snapshot                   *inventory.StaticProvider
}

// NewProvider dump object objectName in bucket
func NewProvider(bucket *storage.BucketHandle, objectName string, scannerBufferSizeKiloBytes int) *Provider {
	if scannerBufferSizeKiloBytes < 64 {
		scannerBufferSizeKiloBytes = 64
	}
	return &Provider{
		bucket:                     bucket,
		objectName:                 objectName,
		scannerBufferSizeKiloBytes: scannerBufferSizeKiloBytes,
	}
}
