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

package inventory

import (
	"context"
	"errors"
)

var (
	// ErrProviderUnavailable the provider could not answer a fetch request
	ErrProviderUnavailable = errors.New("inventory provider unavailable")
	// ErrUnknownInstance the identifier is not part of the fleet listing
	ErrUnknownInstance = errors.New("unknown instance")
)

// leaderGaveUp a coalesced fetch failed because the caller that ran it was cancelled
type leaderGaveUp struct {
	err error
}

func (e *leaderGaveUp) Error() string { return e.err.Error() }
func (e *leaderGaveUp) Unwrap() error { return e.err }

// isContextError is true when the fetch failed because the caller gave up
func isContextError(ctx context.Context, err error) bool {
	return ctx.Err() != nil ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

// fetchFailure builds the unmemoized error of a fetch that ended on a context error.
// Only the caller that ran the fetch being cancelled marks it as a leader failure.
func fetchFailure(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return &leaderGaveUp{err: err}
	}
	return err
}

// shouldRejoin is true when ctx is live and the shared fetch died with another caller
func shouldRejoin(ctx context.Context, err error) bool {
	var gaveUp *leaderGaveUp
	return ctx.Err() == nil && errors.As(err, &gaveUp)
}
