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
	"context"
	"fmt"
)

// GetDetail returns the detail of a listed instance, fetching it on first access only.
// The listing is fetched first when not yet done.
func (cache *Cache) GetDetail(ctx context.Context, identifier string) (InstanceDetail, error) {
	if v, ok := cache.details.Load(identifier); ok {
		entry := v.(*detailEntry)
		return entry.detail, entry.err
	}
	l, err := cache.getListing(ctx)
	if err != nil {
		return InstanceDetail{}, err
	}
	if _, ok := l.known[identifier]; !ok {
		return InstanceDetail{}, fmt.Errorf("%w: %s is not listed in %s", ErrUnknownInstance, identifier, cache.fleetID)
	}
	v, err := cache.fetchDetail(ctx, identifier)
	for shouldRejoin(ctx, err) {
		v, err = cache.fetchDetail(ctx, identifier)
	}
	if err != nil {
		return InstanceDetail{}, fmt.Errorf("%w: get %s in %s: %w", ErrProviderUnavailable, identifier, cache.fleetID, err)
	}
	entry := v.(*detailEntry)
	return entry.detail, entry.err
}

func (cache *Cache) fetchDetail(ctx context.Context, identifier string) (interface{}, error) {
	v, err, _ := cache.group.Do(detailKeyPrefix+identifier, func() (interface{}, error) {
		if v, ok := cache.details.Load(identifier); ok {
			return v, nil
		}
		detail, err := cache.provider.FetchInstanceDetail(ctx, cache.fleetID, identifier)
		if err != nil {
			if isContextError(ctx, err) {
				return nil, fetchFailure(ctx, err)
			}
			entry := &detailEntry{err: fmt.Errorf("%w: get %s in %s: %w", ErrProviderUnavailable, identifier, cache.fleetID, err)}
			cache.details.Store(identifier, entry)
			return entry, nil
		}
		if detail.Identifier == "" {
			detail.Identifier = identifier
		}
		entry := &detailEntry{detail: detail}
		cache.details.Store(identifier, entry)
		return entry, nil
	})
	return v, err
}
