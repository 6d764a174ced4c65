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

// Package p contains a background cloud function
package p

import (
	"context"
	"log"

	"github.com/BrunoReboul/sqlflagaudit/services/auditsqlflags"
	"github.com/BrunoReboul/sqlflagaudit/utilities/gps"
	"github.com/BrunoReboul/sqlflagaudit/utilities/solution"
)

var global auditsqlflags.Global
var initErr error
var ctx = context.Background()

// EntryPoint is the function to be executed for each cloud function occurence
func EntryPoint(ctxEvent context.Context, PubSubMessage gps.PubSubMessage) error {
	if initErr != nil {
		// No retry, the same settings would fail again
		log.Printf("init failed, ignore message %v", initErr)
		return nil
	}
	return auditsqlflags.EntryPoint(ctxEvent, PubSubMessage, &global)
}

func init() {
	initErr = auditsqlflags.Initialize(ctx, solution.PathToFunctionCode+solution.SettingsFileName, &global)
}
