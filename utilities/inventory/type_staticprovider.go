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

// StaticProvider serves fleets from memory, e.g. a snapshot loaded from a YAML file.
// An unknown fleet is an empty fleet.
type StaticProvider struct {
	Fleets map[string][]InstanceDetail `yaml:"fleets"`
}

// FetchInstanceIdentifiers returns identifiers in snapshot order
func (provider StaticProvider) FetchInstanceIdentifiers(ctx context.Context, fleetID string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	instances := provider.Fleets[fleetID]
	identifiers := make([]string, 0, len(instances))
	for _, instance := range instances {
		identifiers = append(identifiers, instance.Identifier)
	}
	return identifiers, nil
}

// FetchInstanceDetail returns the snapshot detail of one instance
func (provider StaticProvider) FetchInstanceDetail(ctx context.Context, fleetID string, identifier string) (InstanceDetail, error) {
	if err := ctx.Err(); err != nil {
		return InstanceDetail{}, err
	}
	for _, instance := range provider.Fleets[fleetID] {
		if instance.Identifier == identifier {
			return instance, nil
		}
	}
	return InstanceDetail{}, fmt.Errorf("instance %s not found in snapshot of %s", identifier, fleetID)
}
