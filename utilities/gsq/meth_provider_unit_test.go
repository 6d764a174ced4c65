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

package gsq

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/api/sqladmin/v1beta4"
)

const (
	page1 = `{"kind":"sql#instancesList","items":[
  {"name":"pg","project":"p1","databaseVersion":"POSTGRES_14","settings":{"databaseFlags":[{"name":"log_connections","value":"on"}]}},
  {"name":"my","project":"p1","databaseVersion":"MYSQL_8_0","settings":{"tier":"db-f1-micro"}}
],"nextPageToken":"page2"}`
	page2 = `{"kind":"sql#instancesList","items":[
  {"name":"pg-empty","project":"p1","databaseVersion":"POSTGRES_13","settings":{"databaseFlags":[]}}
]}`
	getUnlisted = `{"name":"late","project":"p1","databaseVersion":"POSTGRES_15","settings":{"databaseFlags":[{"name":"log_hostname","value":"on"}]}}`
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *Provider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	service, err := sqladmin.NewService(context.Background(),
		option.WithEndpoint(server.URL+"/"),
		option.WithHTTPClient(server.Client()))
	require.NoError(t, err)
	return NewProvider(service, 2, 0)
}

func TestUnitProvider(t *testing.T) {
	var listCalls, getCalls int32
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/projects/p1/instances"):
			atomic.AddInt32(&listCalls, 1)
			if r.URL.Query().Get("pageToken") == "page2" {
				fmt.Fprint(w, page2)
				return
			}
			fmt.Fprint(w, page1)
		case strings.HasSuffix(r.URL.Path, "/projects/p1/instances/late"):
			atomic.AddInt32(&getCalls, 1)
			fmt.Fprint(w, getUnlisted)
		default:
			http.Error(w, `{"error":{"code":404,"message":"not found"}}`, http.StatusNotFound)
		}
	})
	ctx := context.Background()

	identifiers, err := provider.FetchInstanceIdentifiers(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, []string{"pg", "my", "pg-empty"}, identifiers)
	assert.Equal(t, int32(2), atomic.LoadInt32(&listCalls))

	detail, err := provider.FetchInstanceDetail(ctx, "p1", "pg")
	require.NoError(t, err)
	assert.Equal(t, "POSTGRES_14", detail.EngineKind)
	require.Len(t, detail.Flags, 1)
	assert.Equal(t, "log_connections", detail.Flags[0].Name)

	detail, err = provider.FetchInstanceDetail(ctx, "p1", "my")
	require.NoError(t, err)
	assert.False(t, detail.HasFlagCollection())

	detail, err = provider.FetchInstanceDetail(ctx, "p1", "pg-empty")
	require.NoError(t, err)
	assert.True(t, detail.HasFlagCollection())
	assert.Empty(t, detail.Flags)
	assert.Equal(t, int32(0), atomic.LoadInt32(&getCalls))

	detail, err = provider.FetchInstanceDetail(ctx, "p1", "late")
	require.NoError(t, err)
	assert.Equal(t, "late", detail.Identifier)
	assert.Equal(t, int32(1), atomic.LoadInt32(&getCalls))

	_, err = provider.FetchInstanceDetail(ctx, "p1", "missing")
	assert.Error(t, err)
}

func TestUnitProviderRetriesTransient(t *testing.T) {
	var calls int32
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprint(w, `{"error":{"code":503,"message":"backend unavailable"}}`)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"items":[{"name":"pg","databaseVersion":"POSTGRES_14"}]}`)
	})
	identifiers, err := provider.FetchInstanceIdentifiers(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, []string{"pg"}, identifiers)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestUnitProviderDoesNotRetryForbidden(t *testing.T) {
	var calls int32
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"error":{"code":403,"message":"caller lacks cloudsql.instances.list"}}`)
	})
	_, err := provider.FetchInstanceIdentifiers(context.Background(), "p1")
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
