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

import "runtime"

// Engine evaluates rules, in parallel across rules and across instances.
// The zero value is ready to use and bounds parallel work to GOMAXPROCS.
type Engine struct {
	concurrency int
}

// NewEngine concurrency bounds parallel work at each level, zero or less means GOMAXPROCS
func NewEngine(concurrency int) *Engine {
	return &Engine{concurrency: concurrency}
}

func (engine *Engine) limit() int {
	if engine.concurrency <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return engine.concurrency
}
