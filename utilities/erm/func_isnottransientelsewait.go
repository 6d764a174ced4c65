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

package erm

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/BrunoReboul/sqlflagaudit/utilities/logging"
	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// IsNotTransientElseWait check is the error is transient, 429 or 5xx, and wait if it is.
// A done ctx makes every error not transient.
func IsNotTransientElseWait(ctx context.Context, err error, waitSec time.Duration) (isNotTransient bool) {
	if ctx.Err() != nil || errors.Is(err, context.Canceled) {
		return true
	}
	if !isTransient(err) {
		return true
	}
	log.Println(logging.Entry{
		Severity:    "WARNING",
		Message:     "redo_on_transient",
		Description: fmt.Sprintf("wait %d sec and retry %v", waitSec, err),
	})
	timer := time.NewTimer(waitSec * time.Second)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return true
	case <-timer.C:
		return false
	}
}

func isTransient(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= http.StatusInternalServerError
	}
	if s, ok := status.FromError(err); ok && s.Code() != codes.Unknown {
		switch s.Code() {
		case codes.Unavailable, codes.ResourceExhausted, codes.Internal, codes.Aborted:
			return true
		default:
			return false
		}
	}
	erroMessage := err.Error()
	transientErrors := []string{"429", "500", "501", "502", "503", "504", "505", "506", "507", "508", "510", "511"}
	for _, transientError := range transientErrors {
		if strings.Contains(erroMessage, transientError) {
			return true
		}
	}
	return false
}
