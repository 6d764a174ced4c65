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

package evaluation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/BrunoReboul/sqlflagaudit/utilities/inventory"
	"github.com/BrunoReboul/sqlflagaudit/utilities/rule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fleetID = "my-project"

type fakeProvider struct {
	instances   []inventory.InstanceDetail
	listErr     error
	failing     map[string]bool
	mutex       sync.Mutex
	detailCalls map[string]int
	listCalls   int
}

func (p *fakeProvider) FetchInstanceIdentifiers(ctx context.Context, fleetID string) ([]string, error) {
	p.mutex.Lock()
	p.listCalls++
	p.mutex.Unlock()
	if p.listErr != nil {
		return nil, p.listErr
	}
	var identifiers []string
	for _, instance := range p.instances {
		identifiers = append(identifiers, instance.Identifier)
	}
	return identifiers, nil
}

func (p *fakeProvider) FetchInstanceDetail(ctx context.Context, fleetID string, identifier string) (inventory.InstanceDetail, error) {
	p.mutex.Lock()
	if p.detailCalls == nil {
		p.detailCalls = make(map[string]int)
	}
	p.detailCalls[identifier]++
	p.mutex.Unlock()
	if p.failing[identifier] {
		return inventory.InstanceDetail{}, errors.New("googleapi: Error 503: service unavailable")
	}
	for _, instance := range p.instances {
		if instance.Identifier == identifier {
			return instance, nil
		}
	}
	return inventory.InstanceDetail{}, fmt.Errorf("%s not found", identifier)
}

func postgres(identifier string, flags ...inventory.FlagSetting) inventory.InstanceDetail {
	return inventory.InstanceDetail{Identifier: identifier, EngineKind: "POSTGRES_14", Flags: flags}
}

func flag(name string, value string) inventory.FlagSetting {
	return inventory.FlagSetting{Name: name, Value: value}
}

func logConnectionsRule() rule.Rule {
	return rule.Rule{
		ID:            "cis-gcp-6.2.2-db",
		FlagName:      "log_connections",
		Policy:        rule.ExactMatch{Expected: "on"},
		Applicability: rule.EngineFamily("POSTGRES"),
	}
}

func evaluate(t *testing.T, r rule.Rule, instances ...inventory.InstanceDetail) []Outcome {
	t.Helper()
	cache := inventory.NewCache(&fakeProvider{instances: instances}, fleetID)
	return NewEngine(4).Evaluate(context.Background(), r, cache)
}

func TestUnitEvaluateOneOutcomePerInstance(t *testing.T) {
	var instances []inventory.InstanceDetail
	for i := 0; i < 25; i++ {
		instances = append(instances, postgres(fmt.Sprintf("pg-%02d", i), flag("log_connections", "on")))
	}
	outcomes := evaluate(t, logConnectionsRule(), instances...)
	require.Len(t, outcomes, len(instances))
	for i, outcome := range outcomes {
		assert.Equal(t, instances[i].Identifier, outcome.InstanceID, "outcomes must follow listing order")
		assert.False(t, outcome.IsFleetLevel())
		assert.Equal(t, StatusCompliant, outcome.Status)
		assert.Equal(t, fleetID, outcome.FleetID)
	}
}

func TestUnitEvaluateEmptyFleet(t *testing.T) {
	outcomes := evaluate(t, logConnectionsRule())
	require.Len(t, outcomes, 1)
	assert.True(t, outcomes[0].IsFleetLevel())
	assert.Equal(t, StatusNotApplicable, outcomes[0].Status)
	assert.Contains(t, outcomes[0].Detail, "no instances in fleet")
}

func TestUnitEvaluateStatuses(t *testing.T) {
	var tests = []struct {
		name         string
		instance     inventory.InstanceDetail
		wantStatus   Status
		wantDetail   string
		wantFoundLen int
	}{
		{
			name:       "notApplicableWhateverTheFlags",
			instance:   inventory.InstanceDetail{Identifier: "my", EngineKind: "MYSQL_8_0", Flags: []inventory.FlagSetting{flag("log_connections", "off")}},
			wantStatus: StatusNotApplicable,
			wantDetail: "instance does not match target engine",
		},
		{
			name:       "notApplicableWithoutFlags",
			instance:   inventory.InstanceDetail{Identifier: "sqlserver", EngineKind: "SQLSERVER_2019_STANDARD"},
			wantStatus: StatusNotApplicable,
			wantDetail: "instance does not match target engine",
		},
		{
			name:       "absentCollectionFailsClosed",
			instance:   postgres("pg"),
			wantStatus: StatusNonCompliant,
			wantDetail: "instance has no configurable flags",
		},
		{
			name:       "emptyCollectionMeansFlagNotPresent",
			instance:   inventory.InstanceDetail{Identifier: "pg", EngineKind: "POSTGRES_14", Flags: []inventory.FlagSetting{}},
			wantStatus: StatusNonCompliant,
			wantDetail: "not present",
		},
		{
			name:       "flagNotPresent",
			instance:   postgres("pg", flag("log_disconnections", "on")),
			wantStatus: StatusNonCompliant,
			wantDetail: "not present",
		},
		{
			name:         "wrongValue",
			instance:     postgres("pg", flag("log_connections", "off")),
			wantStatus:   StatusNonCompliant,
			wantDetail:   "found with value(s) 'off'",
			wantFoundLen: 1,
		},
		{
			name:         "existentialMatchSecondEntry",
			instance:     postgres("pg", flag("log_connections", "off"), flag("log_connections", "on")),
			wantStatus:   StatusCompliant,
			wantFoundLen: 2,
		},
		{
			name:         "existentialMatchFirstEntry",
			instance:     postgres("pg", flag("log_connections", "on"), flag("log_connections", "off")),
			wantStatus:   StatusCompliant,
			wantFoundLen: 2,
		},
		{
			name:         "duplicatesAllWrong",
			instance:     postgres("pg", flag("log_connections", "off"), flag("log_connections", "ON")),
			wantStatus:   StatusNonCompliant,
			wantDetail:   "'off', 'ON'",
			wantFoundLen: 2,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			outcomes := evaluate(t, logConnectionsRule(), test.instance)
			require.Len(t, outcomes, 1)
			outcome := outcomes[0]
			assert.Equal(t, test.instance.Identifier, outcome.InstanceID)
			assert.Equal(t, test.wantStatus, outcome.Status, outcome.Detail)
			assert.Contains(t, outcome.Detail, test.wantDetail)
			assert.Len(t, outcome.FoundValues, test.wantFoundLen)
		})
	}
}

func TestUnitEvaluateOrdinalThreshold(t *testing.T) {
	scale := rule.Scale{Name: "severity", Levels: []string{"debug", "info", "warning", "error", "fatal"}}
	policy, err := rule.NewOrdinalThreshold(scale, "warning")
	require.NoError(t, err)
	r := rule.Rule{
		ID:            "min-severity",
		FlagName:      "log_min_messages",
		Policy:        policy,
		Applicability: rule.EngineFamily("POSTGRES"),
	}
	outcomes := evaluate(t, r,
		postgres("strict", flag("log_min_messages", "error")),
		postgres("loose", flag("log_min_messages", "info")),
		postgres("unknown", flag("log_min_messages", "WARNING")),
	)
	require.Len(t, outcomes, 3)
	assert.Equal(t, StatusCompliant, outcomes[0].Status)
	assert.Equal(t, StatusNonCompliant, outcomes[1].Status)
	assert.Equal(t, StatusNonCompliant, outcomes[2].Status, "values off the scale fail closed")
}

func TestUnitEvaluateProviderFailureIsolation(t *testing.T) {
	provider := &fakeProvider{
		instances: []inventory.InstanceDetail{
			postgres("pg-0", flag("log_connections", "on")),
			postgres("pg-1", flag("log_connections", "on")),
			postgres("pg-2", flag("log_connections", "off")),
		},
		failing: map[string]bool{"pg-1": true},
	}
	cache := inventory.NewCache(provider, fleetID)
	outcomes := NewEngine(2).Evaluate(context.Background(), logConnectionsRule(), cache)
	require.Len(t, outcomes, 3)
	assert.Equal(t, StatusCompliant, outcomes[0].Status)
	assert.Equal(t, StatusIndeterminate, outcomes[1].Status)
	assert.Contains(t, outcomes[1].Detail, inventory.ErrProviderUnavailable.Error())
	assert.Equal(t, StatusNonCompliant, outcomes[2].Status)
}

func TestUnitEvaluateListingFailure(t *testing.T) {
	cache := inventory.NewCache(&fakeProvider{listErr: errors.New("googleapi: Error 403: forbidden")}, fleetID)
	outcomes := NewEngine(2).Evaluate(context.Background(), logConnectionsRule(), cache)
	require.Len(t, outcomes, 1)
	assert.True(t, outcomes[0].IsFleetLevel())
	assert.Equal(t, StatusIndeterminate, outcomes[0].Status)
}

type unknownInventory struct {
	identifiers []string
}

func (inv unknownInventory) FleetID() string { return fleetID }

func (inv unknownInventory) ListInstanceIdentifiers(ctx context.Context) ([]string, error) {
	return inv.identifiers, nil
}

func (inv unknownInventory) GetDetail(ctx context.Context, identifier string) (inventory.InstanceDetail, error) {
	return inventory.InstanceDetail{}, fmt.Errorf("%w: %s", inventory.ErrUnknownInstance, identifier)
}

func TestUnitEvaluateUnknownInstance(t *testing.T) {
	outcomes := NewEngine(1).Evaluate(context.Background(), logConnectionsRule(), unknownInventory{identifiers: []string{"gone"}})
	require.Len(t, outcomes, 1)
	assert.Equal(t, "gone", outcomes[0].InstanceID)
	assert.Equal(t, StatusIndeterminate, outcomes[0].Status)
	assert.Contains(t, outcomes[0].Detail, inventory.ErrUnknownInstance.Error())
}

type brokenPolicy struct{}

func (brokenPolicy) Satisfies(ctx context.Context, value string) (bool, error) {
	if value == "on" {
		return true, nil
	}
	return false, errors.New("policy engine failure")
}

func (brokenPolicy) String() string { return "broken" }

func TestUnitEvaluatePolicyError(t *testing.T) {
	r := logConnectionsRule()
	r.Policy = brokenPolicy{}
	outcomes := evaluate(t, r,
		postgres("err", flag("log_connections", "off")),
		postgres("errButOneMatch", flag("log_connections", "off"), flag("log_connections", "on")),
	)
	require.Len(t, outcomes, 2)
	assert.Equal(t, StatusIndeterminate, outcomes[0].Status)
	assert.Equal(t, StatusCompliant, outcomes[1].Status)
}

func TestUnitEvaluateInvalidRule(t *testing.T) {
	r := logConnectionsRule()
	r.Policy = nil
	outcomes := evaluate(t, r, postgres("pg", flag("log_connections", "on")))
	require.Len(t, outcomes, 1)
	assert.Equal(t, StatusIndeterminate, outcomes[0].Status)
	assert.True(t, strings.Contains(outcomes[0].Detail, "invalid rule"))
}

func TestUnitEvaluateCancelled(t *testing.T) {
	provider := &fakeProvider{instances: []inventory.InstanceDetail{
		postgres("pg-0", flag("log_connections", "on")),
		postgres("pg-1", flag("log_connections", "on")),
	}}
	cache := inventory.NewCache(provider, fleetID)
	_, err := cache.ListInstanceIdentifiers(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	outcomes := NewEngine(1).Evaluate(ctx, logConnectionsRule(), cache)
	require.Len(t, outcomes, 2, "each pair still gets exactly one outcome")
	for _, outcome := range outcomes {
		assert.Equal(t, StatusIndeterminate, outcome.Status)
		assert.Contains(t, outcome.Detail, "cancelled")
	}
}
