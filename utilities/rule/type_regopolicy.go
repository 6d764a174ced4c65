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

	"github.com/open-policy-agent/opa/rego"
)

const regoQuery = "data.flagpolicy.allow"

// RegoPolicy delegates the decision to an OPA module declaring `package flagpolicy`
// and a boolean `allow` rule over `input.value`. Undefined allow means not compliant.
type RegoPolicy struct {
	query rego.PreparedEvalQuery
}

// NewRegoPolicy compiles and prepares the module once
func NewRegoPolicy(ctx context.Context, module string) (RegoPolicy, error) {
	query, err := rego.New(
		rego.Query(regoQuery),
		rego.Module("flagpolicy.rego", module),
	).PrepareForEval(ctx)
	if err != nil {
		return RegoPolicy{}, fmt.Errorf("rego PrepareForEval %v", err)
	}
	return RegoPolicy{query: query}, nil
}

// Satisfies evaluates the prepared query with the value as input
func (policy RegoPolicy) Satisfies(ctx context.Context, value string) (bool, error) {
	resultSet, err := policy.query.Eval(ctx, rego.EvalInput(map[string]interface{}{
		"value": value,
	}))
	if err != nil {
		return false, fmt.Errorf("rego Eval %v", err)
	}
	if len(resultSet) == 0 || len(resultSet[0].Expressions) == 0 {
		return false, nil
	}
	allowed, ok := resultSet[0].Expressions[0].Value.(bool)
	if !ok {
		return false, fmt.Errorf("%s is not a boolean: %v", regoQuery, resultSet[0].Expressions[0].Value)
	}
	return allowed, nil
}

func (policy RegoPolicy) String() string {
	return "allowed by " + regoQuery
}
