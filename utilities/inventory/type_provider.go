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

import "context"

// Provider fetches fleet state from a remote source.
// Paging and retries, when needed, are the provider's job.
type Provider interface {
	// FetchInstanceIdentifiers returns the instance identifiers of a fleet in a stable order
	FetchInstanceIdentifiers(ctx context.Context, fleetID string) ([]string, error)
	// FetchInstanceDetail returns the detail of one instance of a fleet
	FetchInstanceDetail(ctx context.Context, fleetID string, identifier string) (InstanceDetail, error)
}
