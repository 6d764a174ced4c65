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

package main

import (
	"testing"

	"github.com/BrunoReboul/sqlflagaudit/utilities/evaluation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitParseStatuses(t *testing.T) {
	statuses, err := parseStatuses("NON_COMPLIANT, indeterminate")
	require.NoError(t, err)
	assert.Equal(t, []evaluation.Status{evaluation.StatusNonCompliant, evaluation.StatusIndeterminate}, statuses)

	statuses, err = parseStatuses("")
	require.NoError(t, err)
	assert.Empty(t, statuses)

	_, err = parseStatuses("FAILED")
	assert.Error(t, err)
}
