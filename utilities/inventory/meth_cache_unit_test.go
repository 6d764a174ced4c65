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
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingProvider struct {
	identifiers []string
	details     map[string]InstanceDetail
	listErr     error
	detailErrs  map[string]error
	listCalls   int64
	detailCalls sync.Map // identifier -> *int64
	release     chan struct{}
}

func (p *countingProvider) FetchInstanceIdentifiers(ctx context.Context, fleetID string) ([]string, error) {
	atomic.AddInt64(&p.listCalls, 1)
	if p.release != nil {
		<-p.release
	}
	if p.listErr != nil {
		return nil, p.listErr
	}
	return p.identifiers, nil
}

func (p *countingProvider) FetchInstanceDetail(ctx context.Context, fleetID string, identifier string) (InstanceDetail, error) {
	v, _ := p.detailCalls.LoadOrStore(identifier, new(int64))
	atomic.AddInt64(v.(*int64), 1)
	if p.release != nil {
		<-p.release
	}
	if err := p.detailErrs[identifier]; err != nil {
		return InstanceDetail{}, err
	}
	return p.details[identifier], nil
}

func (p *countingProvider) detailCallCount(identifier string) int64 {
	v, ok := p.detailCalls.Load(identifier)
	if !ok {
		return 0
	}
	return atomic.LoadInt64(v.(*int64))
}

func newCountingProvider(n int) *countingProvider {
	p := &countingProvider{details: make(map[string]InstanceDetail)}
	for i := 0; i < n; i++ {
		identifier := fmt.Sprintf("db-%02d", i)
		p.identifiers = append(p.identifiers, identifier)
		p.details[identifier] = InstanceDetail{
			Identifier: identifier,
			EngineKind: "POSTGRES_14",
			Flags:      []FlagSetting{{Name: "log_connections", Value: "on"}},
		}
	}
	return p
}

func TestUnitCacheListInstanceIdentifiers(t *testing.T) {
	ctx := context.Background()
	provider := newCountingProvider(3)
	cache := NewCache(provider, "my-project")

	for i := 0; i < 5; i++ {
		identifiers, err := cache.ListInstanceIdentifiers(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"db-00", "db-01", "db-02"}, identifiers)
	}
	assert.Equal(t, int64(1), atomic.LoadInt64(&provider.listCalls))

	identifiers, _ := cache.ListInstanceIdentifiers(ctx)
	identifiers[0] = "mutated"
	again, _ := cache.ListInstanceIdentifiers(ctx)
	assert.Equal(t, "db-00", again[0], "callers must not be able to alter the memoized listing")
}

func TestUnitCacheListFailureIsMemoized(t *testing.T) {
	ctx := context.Background()
	provider := newCountingProvider(0)
	provider.listErr = errors.New("googleapi: Error 403: forbidden")
	cache := NewCache(provider, "my-project")

	for i := 0; i < 3; i++ {
		_, err := cache.ListInstanceIdentifiers(ctx)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrProviderUnavailable))
	}
	assert.Equal(t, int64(1), atomic.LoadInt64(&provider.listCalls))
}

func TestUnitCacheGetDetail(t *testing.T) {
	ctx := context.Background()
	provider := newCountingProvider(2)
	cache := NewCache(provider, "my-project")

	detail, err := cache.GetDetail(ctx, "db-01")
	require.NoError(t, err)
	assert.Equal(t, "POSTGRES_14", detail.EngineKind)
	assert.True(t, detail.HasFlagCollection())
	assert.Equal(t, int64(1), atomic.LoadInt64(&provider.listCalls), "listing is fetched lazily to validate the identifier")

	_, err = cache.GetDetail(ctx, "db-01")
	require.NoError(t, err)
	assert.Equal(t, int64(1), provider.detailCallCount("db-01"))
}

func TestUnitCacheGetDetailErrors(t *testing.T) {
	var tests = []struct {
		name       string
		identifier string
		wantErr    error
	}{
		{
			name:       "unknownInstance",
			identifier: "not-listed",
			wantErr:    ErrUnknownInstance,
		},
		{
			name:       "providerUnavailable",
			identifier: "db-00",
			wantErr:    ErrProviderUnavailable,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			provider := newCountingProvider(2)
			provider.detailErrs = map[string]error{"db-00": errors.New("googleapi: Error 503: backend error")}
			cache := NewCache(provider, "my-project")
			_, err := cache.GetDetail(context.Background(), test.identifier)
			require.Error(t, err)
			assert.True(t, errors.Is(err, test.wantErr), "got %v", err)
			_, err = cache.GetDetail(context.Background(), test.identifier)
			require.Error(t, err)
			assert.LessOrEqual(t, provider.detailCallCount(test.identifier), int64(1))
		})
	}
}

func TestUnitCacheSingleFlight(t *testing.T) {
	ctx := context.Background()
	provider := newCountingProvider(4)
	provider.release = make(chan struct{})
	cache := NewCache(provider, "my-project")

	var waitgroup sync.WaitGroup
	for i := 0; i < 32; i++ {
		waitgroup.Add(1)
		go func(i int) {
			defer waitgroup.Done()
			identifier := fmt.Sprintf("db-%02d", i%4)
			detail, err := cache.GetDetail(ctx, identifier)
			assert.NoError(t, err)
			assert.Equal(t, identifier, detail.Identifier)
		}(i)
	}
	close(provider.release)
	waitgroup.Wait()

	assert.Equal(t, int64(1), atomic.LoadInt64(&provider.listCalls))
	for i := 0; i < 4; i++ {
		assert.Equal(t, int64(1), provider.detailCallCount(fmt.Sprintf("db-%02d", i)))
	}
}

func TestUnitCacheCancelledFetchIsNotMemoized(t *testing.T) {
	provider := newCountingProvider(1)
	cache := NewCache(provider, "my-project")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	provider.listErr = context.Canceled
	_, err := cache.ListInstanceIdentifiers(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrProviderUnavailable))
	assert.True(t, errors.Is(err, context.Canceled))

	provider.listErr = nil
	identifiers, err := cache.ListInstanceIdentifiers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"db-00"}, identifiers)
	assert.Equal(t, int64(2), atomic.LoadInt64(&provider.listCalls))
}

func TestUnitStaticProvider(t *testing.T) {
	ctx := context.Background()
	provider := StaticProvider{Fleets: map[string][]InstanceDetail{
		"my-project": {
			{Identifier: "pg", EngineKind: "POSTGRES_13"},
			{Identifier: "my", EngineKind: "MYSQL_8_0", Flags: []FlagSetting{}},
		},
	}}
	identifiers, err := provider.FetchInstanceIdentifiers(ctx, "my-project")
	require.NoError(t, err)
	assert.Equal(t, []string{"pg", "my"}, identifiers)

	identifiers, err = provider.FetchInstanceIdentifiers(ctx, "other-project")
	require.NoError(t, err)
	assert.Empty(t, identifiers)

	detail, err := provider.FetchInstanceDetail(ctx, "my-project", "my")
	require.NoError(t, err)
	assert.True(t, detail.HasFlagCollection())

	_, err = provider.FetchInstanceDetail(ctx, "my-project", "nope")
	assert.Error(t, err)
}
