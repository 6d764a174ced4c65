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

import (
	"context"
	"fmt"
)

const (
	cisControlID     = "6.2"
	cisControlAbbrev = "db"
	postgresFamily   = "POSTGRES"
)

// CISCloudSQLPostgresParameters organization defined expected values of the CIS GCP 6.2 controls
func CISCloudSQLPostgresParameters() Parameters {
	return Parameters{
		"log_error_verbosity":     "default",
		"log_statement":           "ddl",
		"log_min_messages":        "warning",
		"log_min_error_statement": "error",
	}
}

// CISCloudSQLPostgresCatalog the CIS GCP 6.2 Cloud SQL PostgreSQL database flag controls
func CISCloudSQLPostgresCatalog() Catalog {
	postgres := []string{postgresFamily}
	on := PolicySettings{Kind: policyKindExact, Value: "on"}
	return Catalog{
		Parameters: CISCloudSQLPostgresParameters(),
		Rules: []RuleSettings{
			{
				ID:             cisRuleID(1),
				Title:          "Ensure 'log_error_verbosity' database flag for Cloud SQL PostgreSQL instance is set to 'DEFAULT' or stricter",
				FlagName:       "log_error_verbosity",
				EngineFamilies: postgres,
				Policy:         PolicySettings{Kind: policyKindOrdinal, Scale: PostgresErrorVerbosity.Name, Parameter: "log_error_verbosity"},
			},
			{
				ID:             cisRuleID(2),
				Title:          "Ensure that the 'log_connections' database flag for Cloud SQL PostgreSQL instance is set to 'on'",
				FlagName:       "log_connections",
				EngineFamilies: postgres,
				Policy:         on,
			},
			{
				ID:             cisRuleID(3),
				Title:          "Ensure that the 'log_disconnections' database flag for Cloud SQL PostgreSQL instance is set to 'on'",
				FlagName:       "log_disconnections",
				EngineFamilies: postgres,
				Policy:         on,
			},
			{
				ID:             cisRuleID(4),
				Title:          "Ensure 'log_statement' database flag for Cloud SQL PostgreSQL instance is set appropriately",
				FlagName:       "log_statement",
				EngineFamilies: postgres,
				Policy:         PolicySettings{Kind: policyKindParameter, Parameter: "log_statement"},
			},
			{
				ID:             cisRuleID(5),
				Title:          "Ensure 'log_hostname' database flag for Cloud SQL PostgreSQL instance is set to 'on'",
				FlagName:       "log_hostname",
				EngineFamilies: postgres,
				Policy:         on,
			},
			{
				ID:             cisRuleID(6),
				Title:          "Ensure that the 'log_min_messages' database flag for Cloud SQL PostgreSQL instance is set to at least 'warning'",
				FlagName:       "log_min_messages",
				EngineFamilies: postgres,
				Policy:         PolicySettings{Kind: policyKindOrdinal, Scale: PostgresMessageSeverity.Name, Parameter: "log_min_messages"},
			},
			{
				ID:             cisRuleID(7),
				Title:          "Ensure 'log_min_error_statement' database flag for Cloud SQL PostgreSQL instance is set to 'Error' or stricter",
				FlagName:       "log_min_error_statement",
				EngineFamilies: postgres,
				Policy:         PolicySettings{Kind: policyKindOrdinal, Scale: PostgresMessageSeverity.Name, Parameter: "log_min_error_statement"},
			},
			{
				ID:             cisRuleID(8),
				Title:          "Ensure that the 'log_min_duration_statement' database flag for Cloud SQL PostgreSQL instance is set to '-1' (disabled)",
				FlagName:       "log_min_duration_statement",
				EngineFamilies: postgres,
				Policy:         PolicySettings{Kind: policyKindExact, Value: "-1"},
			},
			{
				ID:             cisRuleID(9),
				Title:          "Ensure that 'cloudsql.enable_pgaudit' database flag for each Cloud SQL PostgreSQL instance is set to 'on' for centralized logging",
				FlagName:       "cloudsql.enable_pgaudit",
				EngineFamilies: postgres,
				Policy:         on,
			},
		},
	}
}

// CISCloudSQLPostgres builds the CIS GCP 6.2 rules, overrides replacing default parameters
func CISCloudSQLPostgres(ctx context.Context, overrides Parameters) ([]Rule, error) {
	return CISCloudSQLPostgresCatalog().Build(ctx, overrides)
}

func cisRuleID(subControl int) string {
	return fmt.Sprintf("cis-gcp-%s.%d-%s", cisControlID, subControl, cisControlAbbrev)
}
