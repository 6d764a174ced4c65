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

// ListInstanceIdentifiers returns the fleet instance identifiers in provider order.
// The provider is called once per cache lifetime, failures included, except when the
// call failed because ctx was cancelled.
func (cache *Cache) ListInstanceIdentifiers(ctx context.Context) ([]string, error) {
	l, err := cache.getListing(ctx)
	if err != nil {
		return nil, err
	}
	identifiers := make([]string, len(l.identifiers))
	copy(identifiers, l.identifiers)
	return identifiers, nil
}

func (cache *Cache) getListing(ctx context.Context) (*listing, error) {
	if l := cache.listing.Load(); l != nil {
		return l, l.err
	}
	v, err := cache.fetchListing(ctx)
	for shouldRejoin(ctx, err) {
		v, err = cache.fetchListing(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: list instances in %s: %w", ErrProviderUnavailable, cache.fleetID, err)
	}
	l := v.(*listing)
	return l, l.err
}

func (cache *Cache) fetchListing(ctx context.Context) (interface{}, error) {
	v, err, _ := cache.group.Do(listKey, func() (interface{}, error) {
		if l := cache.listing.Load(); l != nil {
			return l, nil
		}
		identifiers, err := cache.provider.FetchInstanceIdentifiers(ctx, cache.fleetID)
		if err != nil {
			if isContextError(ctx, err) {
				return nil, fetchFailure(ctx, err)
			}
			l := &listing{err: fmt.Errorf("%w: list instances in %s: %w", ErrProviderUnavailable, cache.fleetID, err)}
			cache.listing.Store(l)
			return l, nil
		}
		l := &listing{
			identifiers: identifiers,
			known:       make(map[string]struct{}, len(identifiers)),
		}
		for _, identifier := range identifiers {
			l.known[identifier] = struct{}{}
		}
		cache.listing.Store(l)
		return l, nil
	})
	return v, err
}
