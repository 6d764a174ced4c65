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

package inventory

import (
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

const (
	listKey         = "list"
	detailKeyPrefix = "detail/"
)

// Cache memoizes a Provider answers for one fleet during one evaluation run
type Cache struct {
	provider Provider
	fleetID  string
	group    singleflight.Group
	listing  atomic.Pointer[listing]
	details  sync.Map // identifier -> *detailEntry
}

type listing struct {
	identifiers []string
	known       map[string]struct{}
	err         error
}

type detailEntry struct {
	detail InstanceDetail
	err    error
}

// NewCache returns an empty cache for the fleet. Nothing is fetched until asked.
func NewCache(provider Provider, fleetID string) *Cache {
	return &Cache{
		provider: provider,
		fleetID:  fleetID,
	}
}

// FleetID the fleet identity, e.g. the GCP project ID, this cache is scoped to
func (cache *Cache) FleetID() string {
	return cache.fleetID
}
