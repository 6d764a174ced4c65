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
	"context"
	"fmt"
	"time"

	asset "cloud.google.com/go/asset/apiv1"
	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"
	"github.com/BrunoReboul/sqlflagaudit/utilities/cai"
	"github.com/BrunoReboul/sqlflagaudit/utilities/ffo"
	"github.com/BrunoReboul/sqlflagaudit/utilities/gcs"
	"github.com/BrunoReboul/sqlflagaudit/utilities/gfs"
	"github.com/BrunoReboul/sqlflagaudit/utilities/gsq"
	"github.com/BrunoReboul/sqlflagaudit/utilities/inventory"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sqladmin/v1beta4"
)

// newProvider clients are created once and reused by every run
func newProvider(ctx context.Context, instanceDeployment *InstanceDeployment, creds *google.Credentials, global *Global) (inventory.Provider, error) {
	service := instanceDeployment.Settings.Service
	instance := instanceDeployment.Settings.Instance
	hosting := instanceDeployment.Core.SolutionSettings.Hosting
	waitSec := time.Duration(service.RetryWaitSeconds)

	switch instance.Provider {
	case providerSQLAdmin:
		sqladminService, err := sqladmin.NewService(ctx, option.WithCredentials(creds))
		if err != nil {
			return nil, fmt.Errorf("sqladmin.NewService %v", err)
		}
		return gsq.NewProvider(sqladminService, service.RetriesNumber, waitSec), nil
	case providerCAI:
		assetClient, err := asset.NewClient(ctx, option.WithCredentials(creds))
		if err != nil {
			return nil, fmt.Errorf("asset.NewClient %v", err)
		}
		global.closers = append(global.closers, assetClient.Close)
		return cai.NewProvider(assetClient, service.RetriesNumber, waitSec), nil
	case providerFirestore:
		if hosting.FireStore.CollectionIDs.Assets == "" {
			return nil, fmt.Errorf("provider %s requires solution.hosting.fireStore.collectionIDs.assets", instance.Provider)
		}
		firestoreClient, err := firestore.NewClient(ctx, hosting.ProjectID, option.WithCredentials(creds))
		if err != nil {
			return nil, fmt.Errorf("firestore.NewClient %v", err)
		}
		global.closers = append(global.closers, firestoreClient.Close)
		return gfs.NewProvider(firestoreClient, hosting.FireStore.CollectionIDs.Assets, time.Duration(service.RetriesNumber)), nil
	case providerGCS:
		if hosting.GCS.Buckets.CAIExport.Name == "" || instance.DumpObjectName == "" {
			return nil, fmt.Errorf("provider %s requires the CAI export bucket name and dumpObjectName", instance.Provider)
		}
		storageClient, err := storage.NewClient(ctx, option.WithCredentials(creds))
		if err != nil {
			return nil, fmt.Errorf("storage.NewClient %v", err)
		}
		global.closers = append(global.closers, storageClient.Close)
		return gcs.NewProvider(storageClient.Bucket(hosting.GCS.Buckets.CAIExport.Name), instance.DumpObjectName, service.ScannerBufferSizeKiloBytes), nil
	case providerSnapshot:
		var snapshot inventory.StaticProvider
		err := ffo.ReadUnmarshalYAML(instance.SnapshotPath, &snapshot)
		if err != nil {
			return nil, fmt.Errorf("snapshot %v", err)
		}
		return snapshot, nil
	}
	return nil, fmt.Errorf("unsupported provider '%s'", instance.Provider)
}
