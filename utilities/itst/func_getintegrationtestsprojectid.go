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

package itst

import (
	"context"
	"strings"
	"testing"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/cloudresourcemanager/v1"
	"google.golang.org/api/option"
)

// BuildProjectNameMarker the project used to run integration tests MUST have a name that contains it
const BuildProjectNameMarker = "sqlflagaudit-build"

// GetIntegrationTestsProjectID returns the project id and credentials to run integration tests
// The test is skipped when no default credentials are found or when the short mode is on
func GetIntegrationTestsProjectID(t testing.TB) (projectID string, creds *google.Credentials) {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test skipped in short mode")
	}
	ctx := context.Background()
	creds, err := google.FindDefaultCredentials(ctx, "https://www.googleapis.com/auth/cloud-platform")
	if err != nil {
		t.Skipf("integration test skipped, no default credentials: %v", err)
	}
	if creds.ProjectID == "" {
		t.Skip("integration test skipped, default credentials carry no project")
	}
	cloudresourcemanagerService, err := cloudresourcemanager.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		t.Fatal(err)
	}
	project, err := cloudresourcemanagerService.Projects.Get(creds.ProjectID).Context(ctx).Do()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(project.Name, BuildProjectNameMarker) {
		t.Fatalf("the project used to run integration tests MUST have a name that contains '%s', got '%s'", BuildProjectNameMarker, project.Name)
	}
	return project.ProjectId, creds
}
