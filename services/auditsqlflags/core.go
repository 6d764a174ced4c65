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
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/BrunoReboul/sqlflagaudit/utilities/evaluation"
	"github.com/BrunoReboul/sqlflagaudit/utilities/ffo"
	"github.com/BrunoReboul/sqlflagaudit/utilities/gps"
	"github.com/BrunoReboul/sqlflagaudit/utilities/inventory"
	"github.com/BrunoReboul/sqlflagaudit/utilities/logging"
	"github.com/BrunoReboul/sqlflagaudit/utilities/rule"
	"github.com/BrunoReboul/sqlflagaudit/utilities/validater"
	"github.com/google/uuid"
	"golang.org/x/oauth2/google"
)

// Global structure for global variables to optimize the cloud function performances
type Global struct {
	closers          []func() error
	defaultFleetID   string
	engine           *evaluation.Engine
	environment      string
	initID           string
	instanceName     string
	microserviceName string
	provider         inventory.Provider
	reporter         evaluation.Reporter
	rules            []rule.Rule
}

// triggerMessage data of the triggering pubsub message
type triggerMessage struct {
	ProjectID string `json:"projectID"`
}

// Initialize is to be executed in the init() function of the cloud function to optimize the cold start
func Initialize(ctx context.Context, settingsFilePath string, global *Global) (err error) {
	log.SetFlags(0)
	global.initID = fmt.Sprintf("%v", uuid.New())

	instanceDeployment := NewInstanceDeployment()
	err = ffo.ReadUnmarshalYAML(settingsFilePath, instanceDeployment)
	if err != nil {
		return global.initFailed(fmt.Sprintf("ReadUnmarshalYAML %s", settingsFilePath), err)
	}
	instanceDeployment.Core.SolutionSettings.Situate(instanceDeployment.Core.EnvironmentName)
	err = validater.ValidateStruct(instanceDeployment, "instanceDeployment")
	if err != nil {
		return global.initFailed("ValidateStruct", err)
	}

	global.environment = instanceDeployment.Core.EnvironmentName
	global.instanceName = instanceDeployment.Core.InstanceName
	global.microserviceName = instanceDeployment.Core.ServiceName

	log.Println(logging.Entry{
		MicroserviceName: global.microserviceName,
		InstanceName:     global.instanceName,
		Environment:      global.environment,
		Severity:         "NOTICE",
		Message:          "coldstart",
		InitID:           global.initID,
	})

	var creds *google.Credentials
	if needsCredentials(instanceDeployment) {
		creds, err = google.FindDefaultCredentials(ctx, "https://www.googleapis.com/auth/cloud-platform")
		if err != nil {
			return global.initFailed("google.FindDefaultCredentials", err)
		}
	}
	global.defaultFleetID = instanceDeployment.Settings.Instance.FleetID
	if global.defaultFleetID == "" && creds != nil {
		global.defaultFleetID = creds.ProjectID
	}

	if instanceDeployment.Settings.Instance.CatalogPath != "" {
		global.rules, err = rule.LoadCatalog(ctx, instanceDeployment.Settings.Instance.CatalogPath, instanceDeployment.Settings.Instance.Parameters)
	} else {
		global.rules, err = rule.CISCloudSQLPostgres(ctx, instanceDeployment.Settings.Instance.Parameters)
	}
	if err != nil {
		return global.initFailed("rule catalog", err)
	}

	global.provider, err = newProvider(ctx, instanceDeployment, creds, global)
	if err != nil {
		return global.initFailed("newProvider", err)
	}
	global.reporter, err = newReporter(ctx, instanceDeployment, creds, global)
	if err != nil {
		return global.initFailed("newReporter", err)
	}
	global.engine = evaluation.NewEngine(instanceDeployment.Settings.Service.Concurrency)
	return nil
}

// EntryPoint is the function to be executed for each cloud function occurence
func EntryPoint(ctxEvent context.Context, PubSubMessage gps.PubSubMessage, global *Global) error {
	var trigger triggerMessage
	if len(PubSubMessage.Data) > 0 {
		err := json.Unmarshal(PubSubMessage.Data, &trigger)
		if err != nil {
			log.Println(logging.Entry{
				MicroserviceName: global.microserviceName,
				InstanceName:     global.instanceName,
				Environment:      global.environment,
				Severity:         "CRITICAL",
				Message:          "noretry",
				Description:      fmt.Sprintf("json.Unmarshal(PubSubMessage.Data, &trigger) %s %v", string(PubSubMessage.Data), err),
			})
			return nil // NO RETRY
		}
	}
	fleetID := trigger.ProjectID
	if fleetID == "" {
		fleetID = global.defaultFleetID
	}
	if fleetID == "" {
		log.Println(logging.Entry{
			MicroserviceName: global.microserviceName,
			InstanceName:     global.instanceName,
			Environment:      global.environment,
			Severity:         "CRITICAL",
			Message:          "noretry",
			Description:      "no projectID in the message and no default fleet configured",
		})
		return nil // NO RETRY
	}
	_, err := Audit(ctxEvent, global, fleetID)
	if err != nil {
		return err // RETRY
	}
	return nil
}

func (global *Global) initFailed(step string, err error) error {
	log.Println(logging.Entry{
		MicroserviceName: global.microserviceName,
		InstanceName:     global.instanceName,
		Environment:      global.environment,
		Severity:         "CRITICAL",
		Message:          "init_failed",
		Description:      fmt.Sprintf("%s %v", step, err),
		InitID:           global.initID,
	})
	return fmt.Errorf("%s %w", step, err)
}

func needsCredentials(instanceDeployment *InstanceDeployment) bool {
	return instanceDeployment.Settings.Instance.Provider != providerSnapshot ||
		instanceDeployment.Settings.Instance.Reporter != reporterLog
}

func sinceSeconds(start time.Time) float64 {
	return time.Since(start).Seconds()
}

// DefaultFleetID fleet audited when the trigger names none
func (global *Global) DefaultFleetID() string {
	return global.defaultFleetID
}
