// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package backend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/gogama/httpc/request"
)

var (
	// ErrMustNotBeZero is returned by Throttle for a non-positive rate
	// or burst.
	ErrMustNotBeZero = errors.New("must be greater than zero")
	// ErrWaitingFailed wraps a failed wait for a rate limiter token.
	ErrWaitingFailed = errors.New("limiter waiting failed")
)

// throttle limits the rate at which requests reach the next backend
// using a token bucket.
type throttle struct {
	limiter *rate.Limiter
	rps     int
	burst   int
	next    Backend
	logger  zerolog.Logger
}

// Throttle wraps next so that at most rps requests per second, with
// bursts of up to burst requests, are passed through. Callers over the
// limit block until a token is available or their context ends, in
// which case the wait error wraps ErrWaitingFailed and next is not
// called.
//
// Waits are logged at debug level to logger.
func Throttle(next Backend, rps, burst int, logger zerolog.Logger) (Backend, error) {
	if next == nil {
		return nil, errors.New("httpc/backend: nil backend")
	}
	if rps <= 0 || burst <= 0 {
		return nil, fmt.Errorf("rps[%d] and burst[%d] %w", rps, burst, ErrMustNotBeZero)
	}

	return &throttle{
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		rps:     rps,
		burst:   burst,
		next:    next,
		logger:  logger,
	}, nil
}

func (t *throttle) Execute(ctx context.Context, r *request.Request) (*request.Response, error) {
	if t.limiter.Tokens() < 1 {
		start := time.Now()
		defer func() {
			t.logger.Debug().
				Int("rate", t.rps).
				Int("burst", t.burst).
				Dur("waited", time.Since(start)).
				Msg("throttle wait complete")
		}()
	}

	if err := t.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWaitingFailed, err)
	}

	return t.next.Execute(ctx, r)
}
