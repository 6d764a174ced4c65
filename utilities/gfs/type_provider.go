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
	"time"

	"cloud.google.com/go/firestore"
)

// Provider inventory provider over the assets collection, a fleet being a project
type Provider struct {
	client        *firestore.Client
	collectionID  string
	retriesNumber time.Duration
}

// NewProvider collectionID is the assets collection
func NewProvider(client *firestore.Client, collectionID string, retriesNumber time.Duration) *Provider {
	if retriesNumber < 1 {
		retriesNumber = 1
	}
	return &Provider{
		client:        client,
		collectionID:  collectionID,
		retriesNumber: retriesNumber,
	}
}
