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

	"cloud.google.com/go/bigquery"
	cloudlogging "cloud.google.com/go/logging"
	"cloud.google.com/go/pubsub"
	"github.com/BrunoReboul/sqlflagaudit/utilities/evaluation"
	"github.com/BrunoReboul/sqlflagaudit/utilities/gbq"
	"github.com/BrunoReboul/sqlflagaudit/utilities/glo"
	"github.com/BrunoReboul/sqlflagaudit/utilities/gps"
	"github.com/BrunoReboul/sqlflagaudit/utilities/logging"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
)

func newReporter(ctx context.Context, instanceDeployment *InstanceDeployment, creds *google.Credentials, global *Global) (evaluation.Reporter, error) {
	hosting := instanceDeployment.Core.SolutionSettings.Hosting
	switch instanceDeployment.Settings.Instance.Reporter {
	case reporterLog:
		return logging.NewReporter(global.microserviceName, global.instanceName, global.environment, nil), nil
	case reporterPubSub:
		if hosting.ProjectID == "" || hosting.Pubsub.TopicNames.ComplianceStatus == "" {
			return nil, fmt.Errorf("reporter pubsub requires the hosting projectID and the complianceStatus topic name")
		}
		pubsubClient, err := pubsub.NewClient(ctx, hosting.ProjectID, option.WithCredentials(creds))
		if err != nil {
			return nil, fmt.Errorf("pubsub.NewClient %v", err)
		}
		topic := pubsubClient.Topic(hosting.Pubsub.TopicNames.ComplianceStatus)
		global.closers = append(global.closers, func() error {
			topic.Stop()
			return pubsubClient.Close()
		})
		return gps.NewReporter(topic, instanceDeployment.Settings.Service.LogEventEveryXPubSubMsg), nil
	case reporterCloudLogging:
		projectID := hosting.Stackdriver.ProjectID
		if projectID == "" {
			projectID = hosting.ProjectID
		}
		if projectID == "" {
			return nil, fmt.Errorf("reporter cloudlogging requires the stackdriver or hosting projectID")
		}
		loggingClient, err := cloudlogging.NewClient(ctx, projectID, option.WithCredentials(creds))
		if err != nil {
			return nil, fmt.Errorf("logging.NewClient %v", err)
		}
		global.closers = append(global.closers, loggingClient.Close)
		return glo.NewReporter(loggingClient, instanceDeployment.Settings.Service.LogID, map[string]string{
			"microservice_name": global.microserviceName,
			"instance_name":     global.instanceName,
			"environment":       global.environment,
		}), nil
	case reporterBigQuery:
		dataset := hosting.Bigquery.Dataset
		if hosting.ProjectID == "" || dataset.Name == "" || dataset.Location == "" {
			return nil, fmt.Errorf("reporter bigquery requires the hosting projectID, the dataset name and location")
		}
		bigQueryClient, err := bigquery.NewClient(ctx, hosting.ProjectID, option.WithCredentials(creds))
		if err != nil {
			return nil, fmt.Errorf("bigquery.NewClient %v", err)
		}
		global.closers = append(global.closers, bigQueryClient.Close)
		table, err := gbq.GetOutcomesTable(ctx, bigQueryClient, dataset.Location, dataset.Name)
		if err != nil {
			return nil, fmt.Errorf("gbq.GetOutcomesTable %v", err)
		}
		return gbq.NewReporter(table), nil
	}
	return nil, fmt.Errorf("unsupported reporter '%s'", instanceDeployment.Settings.Instance.Reporter)
}
