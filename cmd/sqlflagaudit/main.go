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

// Command sqlflagaudit audits the database flags of the Cloud SQL instances of one project
// and exits non zero when an outcome has one of the -failon statuses.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/BrunoReboul/sqlflagaudit/services/auditsqlflags"
	"github.com/BrunoReboul/sqlflagaudit/utilities/evaluation"
	"github.com/BrunoReboul/sqlflagaudit/utilities/solution"
)

const (
	exitAuditFailed = 1
	exitFailOn      = 2
)

func main() {
	settingsFilePath := flag.String("settings", solution.SettingsFileName, "Path to the settings yaml file")
	projectID := flag.String("project", "", "Project to audit, default to the settings fleetID, then to the default credentials project")
	failOn := flag.String("failon", "NON_COMPLIANT,INDETERMINATE", "Comma separated outcome statuses making the exit code non zero, empty to never fail on outcomes")
	flag.Parse()

	statuses, err := parseStatuses(*failOn)
	if err != nil {
		log.Fatalln(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var global auditsqlflags.Global
	err = auditsqlflags.Initialize(ctx, *settingsFilePath, &global)
	if err != nil {
		log.Fatalln(err)
	}
	fleetID := *projectID
	if fleetID == "" {
		fleetID = global.DefaultFleetID()
	}
	if fleetID == "" {
		log.Fatalln("no project to audit, use -project")
	}

	summary, err := auditsqlflags.Audit(ctx, &global, fleetID)
	if closeErr := auditsqlflags.Close(&global); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		log.Println(err)
		os.Exit(exitAuditFailed)
	}
	if summary.HasAny(statuses...) {
		os.Exit(exitFailOn)
	}
}

func parseStatuses(s string) (statuses []evaluation.Status, err error) {
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		status := evaluation.Status(strings.ToUpper(part))
		switch status {
		case evaluation.StatusCompliant, evaluation.StatusNonCompliant, evaluation.StatusNotApplicable, evaluation.StatusIndeterminate:
			statuses = append(statuses, status)
		default:
			return nil, fmt.Errorf("unknown status '%s' in -failon", part)
		}
	}
	return statuses, nil
}
