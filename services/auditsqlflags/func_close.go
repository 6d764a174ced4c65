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

package auditsqlflags

import "fmt"

// Close releases the clients created by Initialize, flushing pending reports
func Close(global *Global) (err error) {
	for i := len(global.closers) - 1; i >= 0; i-- {
		if closeErr := global.closers[i](); closeErr != nil && err == nil {
			err = fmt.Errorf("close %v", closeErr)
		}
	}
	global.closers = nil
	return err
}
