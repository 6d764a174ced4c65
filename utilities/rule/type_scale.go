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

// Scale ordered levels, from the least to the most strict
type Scale struct {
	Name   string
	Levels []string
}

// PostgresMessageSeverity levels accepted by log_min_messages and log_min_error_statement
var PostgresMessageSeverity = Scale{
	Name: "postgres_message_severity",
	Levels: []string{
		"debug5", "debug4", "debug3", "debug2", "debug1",
		"info", "notice", "warning", "error", "log", "fatal", "panic",
	},
}

// PostgresErrorVerbosity levels accepted by log_error_verbosity, terse being the strictest
var PostgresErrorVerbosity = Scale{
	Name:   "postgres_error_verbosity",
	Levels: []string{"verbose", "default", "terse"},
}

// Scales built-in scales by name
var Scales = map[string]Scale{
	PostgresMessageSeverity.Name: PostgresMessageSeverity,
	PostgresErrorVerbosity.Name:  PostgresErrorVerbosity,
}

// Position of a level on the scale, case sensitive
func (scale Scale) Position(level string) (int, bool) {
	for i, l := range scale.Levels {
		if l == level {
			return i, true
		}
	}
	return -1, false
}
