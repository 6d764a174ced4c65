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

package gbq

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"cloud.google.com/go/bigquery"
)

func getTable(ctx context.Context, tableName string, schema bigquery.Schema, dataset *bigquery.Dataset) (table *bigquery.Table, err error) {
	table = dataset.Table(tableName)
	tableMetadata, err := table.Metadata(ctx)
	if err != nil {
		if !strings.Contains(strings.ToLower(err.Error()), "notfound") {
			return nil, fmt.Errorf("table.Metadata %v", err)
		}
		var tableToCreateMetadata bigquery.TableMetadata
		tableToCreateMetadata.Name = tableName
		tableToCreateMetadata.Description = fmt.Sprintf("Cloud SQL database flags audit - %s", tableName)
		tableToCreateMetadata.Labels = map[string]string{"name": strings.ToLower(tableName)}
		tableToCreateMetadata.TimePartitioning = &bigquery.TimePartitioning{
			Type:       bigquery.DayPartitioningType,
			Field:      "evaluationTimeStamp",
			Expiration: time.Duration(0),
		}
		tableToCreateMetadata.Schema = schema

		err = table.Create(ctx, &tableToCreateMetadata)
		if err != nil {
			// concurrent executions
			if strings.Contains(strings.ToLower(err.Error()), "already exists") {
				return table, nil
			}
			return nil, fmt.Errorf("table.Create %v", err)
		}
		log.Printf("gbq created table %s", tableName)
		return table, nil
	}
	needToUpdate := false
	var tableMetadataToUpdate bigquery.TableMetadataToUpdate
	if value, ok := tableMetadata.Labels["name"]; !ok || value != strings.ToLower(tableName) {
		tableMetadataToUpdate.SetLabel("name", strings.ToLower(tableName))
		needToUpdate = true
	}
	if len(tableMetadata.Schema) < len(schema) {
		// columns can only be added
		tableMetadataToUpdate.Schema = schema
		needToUpdate = true
	}
	if needToUpdate {
		_, err = table.Update(ctx, tableMetadataToUpdate, tableMetadata.ETag)
		if err != nil {
			return nil, fmt.Errorf("table.Update %v", err)
		}
		log.Printf("gbq updated table %s", tableName)
	}
	return table, nil
}
