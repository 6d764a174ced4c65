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

import (
	"context"
	"fmt"
)

// ParameterMatch case sensitive equality with an externally configured parameter
type ParameterMatch struct {
	ParameterName string
	Expected      string
}

// NewParameterMatch resolves the parameter now, a missing parameter is an error
func NewParameterMatch(parameterName string, parameters Parameters) (ParameterMatch, error) {
	expected, ok := parameters[parameterName]
	if !ok {
		return ParameterMatch{}, fmt.Errorf("parameter '%s' is not configured", parameterName)
	}
	return ParameterMatch{
		ParameterName: parameterName,
		Expected:      expected,
	}, nil
}

// Satisfies ParameterMatch never fails
func (policy ParameterMatch) Satisfies(ctx context.Context, value string) (bool, error) {
	return value == policy.Expected, nil
}

func (policy ParameterMatch) String() string {
	return fmt.Sprintf("equal to '%s' (parameter %s)", policy.Expected, policy.ParameterName)
}
