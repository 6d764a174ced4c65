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
	"google.golang.org/api/sqladmin/v1beta4"
)

// FetchInstanceIdentifiers instance names of the project, in API order, all pages
func (provider *Provider) FetchInstanceIdentifiers(ctx context.Context, fleetID string) (identifiers []string, err error) {
	var instances []*sqladmin.DatabaseInstance
	for i := 0; ; i++ {
		instances = nil
		err = provider.service.Instances.List(fleetID).Pages(ctx, func(page *sqladmin.InstancesListResponse) error {
			instances = append(instances, page.Items...)
			return nil
		})
		if err == nil {
			break
		}
		if i >= provider.retries || erm.IsNotTransientElseWait(ctx, err, provider.waitSec) {
			return nil, fmt.Errorf("sqladmin Instances.List %s %w", fleetID, err)
		}
	}
	identifiers = make([]string, 0, len(instances))
	provider.mutex.Lock()
	defer provider.mutex.Unlock()
	for _, instance := range instances {
		identifiers = append(identifiers, instance.Name)
		provider.listed[listedKey(fleetID, instance.Name)] = instance
	}
	return identifiers, nil
}
