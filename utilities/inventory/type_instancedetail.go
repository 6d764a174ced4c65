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

// FlagSetting one database flag name / value pair as exposed by an instance
type FlagSetting struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// InstanceDetail queryable configuration of one database instance at fetch time.
// Flags is nil when the instance exposes no flag collection at all, which is not the same
// as a non nil empty collection. An InstanceDetail returned by a Cache is shared and must
// not be modified.
type InstanceDetail struct {
	Identifier string        `json:"identifier" yaml:"identifier"`
	EngineKind string        `json:"engineKind" yaml:"engineKind"`
	Flags      []FlagSetting `json:"flags" yaml:"flags"`
}

// HasFlagCollection reports whether the instance exposes a flag collection, even an empty one
func (detail InstanceDetail) HasFlagCollection() bool {
	return detail.Flags != nil
}
