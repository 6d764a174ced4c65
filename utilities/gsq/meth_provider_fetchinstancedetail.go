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

	"github.com/BrunoReboul/sqlflagaudit/utilities/erm"
	"github.com/BrunoReboul/sqlflagaudit/utilities/inventory"
	"google.golang.org/api/sqladmin/v1beta4"
)

// FetchInstanceDetail from the listing when available, else with Instances.Get
func (provider *Provider) FetchInstanceDetail(ctx context.Context, fleetID string, identifier string) (inventory.InstanceDetail, error) {
	provider.mutex.Lock()
	instance, ok := provider.listed[listedKey(fleetID, identifier)]
	provider.mutex.Unlock()
	if ok {
		return ToInstanceDetail(instance), nil
	}
	var err error
	for i := 0; ; i++ {
		instance, err = provider.service.Instances.Get(fleetID, identifier).Context(ctx).Do()
		if err == nil {
			break
		}
		if i >= provider.retries || erm.IsNotTransientElseWait(ctx, err, provider.waitSec) {
			return inventory.InstanceDetail{}, fmt.Errorf("sqladmin Instances.Get %s %s %w", fleetID, identifier, err)
		}
	}
	return ToInstanceDetail(instance), nil
}

// ToInstanceDetail keeps a missing flag collection nil
func ToInstanceDetail(instance *sqladmin.DatabaseInstance) inventory.InstanceDetail {
	detail := inventory.InstanceDetail{
		Identifier: instance.Name,
		EngineKind: instance.DatabaseVersion,
	}
	if instance.Settings == nil || instance.Settings.DatabaseFlags == nil {
		return detail
	}
	detail.Flags = make([]inventory.FlagSetting, 0, len(instance.Settings.DatabaseFlags))
	for _, flag := range instance.Settings.DatabaseFlags {
		if flag == nil {
			continue
		}
		detail.Flags = append(detail.Flags, inventory.FlagSetting{Name: flag.Name, Value: flag.Value})
	}
	return detail
}
