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

package rule

import "context"

// ValuePolicy decides whether one flag value is compliant
type ValuePolicy interface {
	Satisfies(ctx context.Context, value string) (bool, error)
	String() string
}

// Parameters externally configured expected values, by parameter name
type Parameters map[string]string

// Merge returns a copy of parameters overridden by others
func (parameters Parameters) Merge(others Parameters) Parameters {
	merged := make(Parameters, len(parameters)+len(others))
	for k, v := range parameters {
		merged[k] = v
	}
	for k, v := range others {
		merged[k] = v
	}
	return merged
}
