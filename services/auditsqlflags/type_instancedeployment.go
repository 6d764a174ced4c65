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

import (
	"github.com/BrunoReboul/sqlflagaudit/utilities/rule"
	"github.com/BrunoReboul/sqlflagaudit/utilities/solution"
)

// InstanceDeployment settings structure
type InstanceDeployment struct {
	Core struct {
		SolutionSettings solution.Settings `yaml:"solution"`
		EnvironmentName  string            `yaml:"environmentName" valid:"isNotZeroValue"`
		ServiceName      string            `yaml:"serviceName" valid:"isNotZeroValue"`
		InstanceName     string            `yaml:"instanceName" valid:"isNotZeroValue"`
	}
	Settings struct {
		Service struct {
			Concurrency                int    `yaml:"concurrency"`
			RetriesNumber              int    `yaml:"retriesNumber" valid:"isPositive"`
			RetryWaitSeconds           int64  `yaml:"retryWaitSeconds"`
			ScannerBufferSizeKiloBytes int    `yaml:"scannerBufferSizeKiloBytes" valid:"isPositive"`
			LogEventEveryXPubSubMsg    uint64 `yaml:"logEventEveryXPubSubMsg"`
			LogID                      string `yaml:"logID" valid:"isNotZeroValue"`
		}
		Instance struct {
			Provider       string          `yaml:"provider" valid:"isOneOf,sqladmin|cai|firestore|gcs|snapshot"`
			Reporter       string          `yaml:"reporter" valid:"isOneOf,log|pubsub|cloudlogging|bigquery"`
			FleetID        string          `yaml:"fleetID"`
			DumpObjectName string          `yaml:"dumpObjectName"`
			SnapshotPath   string          `yaml:"snapshotPath"`
			CatalogPath    string          `yaml:"catalogPath"`
			Parameters     rule.Parameters `yaml:"parameters"`
		}
	}
}

// NewInstanceDeployment create deployment structure with default settings set
func NewInstanceDeployment() *InstanceDeployment {
	var instanceDeployment InstanceDeployment
	instanceDeployment.Core.ServiceName = "auditsqlflags"
	instanceDeployment.Settings.Service.RetriesNumber = 5
	instanceDeployment.Settings.Service.RetryWaitSeconds = 2
	instanceDeployment.Settings.Service.ScannerBufferSizeKiloBytes = 1024
	instanceDeployment.Settings.Service.LogEventEveryXPubSubMsg = 1000
	instanceDeployment.Settings.Service.LogID = "sqlflagaudit"
	instanceDeployment.Settings.Instance.Provider = providerSQLAdmin
	instanceDeployment.Settings.Instance.Reporter = reporterLog
	return &instanceDeployment
}

const (
	providerSQLAdmin  = "sqladmin"
	providerCAI       = "cai"
	providerFirestore = "firestore"
	providerGCS       = "gcs"
	providerSnapshot  = "snapshot"

	reporterLog          = "log"
	reporterPubSub       = "pubsub"
	reporterCloudLogging = "cloudlogging"
	reporterBigQuery     = "bigquery"
)
