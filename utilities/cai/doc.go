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

// Package cai reads Cloud SQL instances from Cloud Asset Inventory.
//
// The asset resource data of a sqladmin.googleapis.com/Instance is the Cloud SQL Admin API
// representation of the instance. DecodeSQLInstance turns it into an inventory detail and is
// shared by every source of CAI formatted assets: the ListAssets API, the firestore assets
// collection, and export dumps.
package cai
