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

	"github.com/BrunoReboul/sqlflagaudit/utilities/inventory"
)

// Inventory read side of an inventory cache, satisfied by *inventory.Cache
type Inventory interface {
	FleetID() string
	ListInstanceIdentifiers(ctx context.Context) ([]string, error)
	GetDetail(ctx context.Context, identifier string) (inventory.InstanceDetail, error)
}

// Reporter consumes the outcomes of one rule. Outcomes of different rules arrive in any order.
type Reporter interface {
	Report(ctx context.Context, outcomes []Outcome) error
}

// ReporterFunc adapts a function to Reporter
type ReporterFunc func(ctx context.Context, outcomes []Outcome) error

// Report calls f
func (f ReporterFunc) Report(ctx context.Context, outcomes []Outcome) error {
	return f(ctx, outcomes)
}
