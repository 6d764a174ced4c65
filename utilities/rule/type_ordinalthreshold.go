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

// OrdinalThreshold satisfied by values at or beyond Minimum on Scale.
// Values outside the scale are not compliant.
type OrdinalThreshold struct {
	Scale   Scale
	Minimum string
	minimum int
}

// NewOrdinalThreshold the minimum must be a level of the scale
func NewOrdinalThreshold(scale Scale, minimum string) (OrdinalThreshold, error) {
	position, ok := scale.Position(minimum)
	if !ok {
		return OrdinalThreshold{}, fmt.Errorf("minimum '%s' is not a level of scale %s %v", minimum, scale.Name, scale.Levels)
	}
	return OrdinalThreshold{
		Scale:   scale,
		Minimum: minimum,
		minimum: position,
	}, nil
}

// Satisfies OrdinalThreshold never fails
func (policy OrdinalThreshold) Satisfies(ctx context.Context, value string) (bool, error) {
	position, ok := policy.Scale.Position(value)
	if !ok {
		return false, nil
	}
	return position >= policy.minimum, nil
}

func (policy OrdinalThreshold) String() string {
	return fmt.Sprintf("'%s' or stricter on %s", policy.Minimum, policy.Scale.Name)
}
