// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpc

import (
	"context"
	"sync"

	"github.com/gogama/httpc/request"
)

// A Future is the deferred execution of one request. Nothing is sent
// until the Future is awaited or started, and the execution runs at
// most once: a Future cannot be restarted or copied.
//
// A Future is safe for concurrent use. Any number of goroutines may
// await the same Future and will observe the same result.
type Future struct {
	doer Doer
	req  *request.Request

	once sync.Once
	done chan struct{}

	mu       sync.Mutex
	cancel   context.CancelFunc
	canceled bool

	exec *request.Execution
	err  error
}

func newFuture(d Doer, r *request.Request) *Future {
	return &Future{
		doer: d,
		req:  r,
		done: make(chan struct{}),
	}
}

// Await returns the result of the execution.
//
// If the execution has not started, Await runs it on the calling
// goroutine with ctx. Otherwise Await waits for it to end. If ctx is
// done while waiting, the execution is cancelled and ctx.Err() is
// returned.
func (f *Future) Await(ctx context.Context) (*request.Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	if f.claim() {
		f.run(ctx)
		return f.result()
	}

	select {
	case <-f.done:
		return f.result()
	case <-ctx.Done():
		f.Cancel()
		return nil, ctx.Err()
	}
}

// Start runs the execution on a new goroutine with ctx, if it has not
// already started, and returns f.
func (f *Future) Start(ctx context.Context) *Future {
	if ctx == nil {
		ctx = context.Background()
	}

	if f.claim() {
		go f.run(ctx)
	}
	return f
}

// Done returns a channel which is closed when the execution ends.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Cancel cancels the context of a running execution. If the execution
// has not started yet, it will start with a cancelled context. Cancel
// has no effect on an execution which has ended.
func (f *Future) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.canceled = true
	if f.cancel != nil {
		f.cancel()
	}
}

// Execution returns the final execution state, or nil if the execution
// has not ended.
func (f *Future) Execution() *request.Execution {
	select {
	case <-f.done:
		return f.exec
	default:
		return nil
	}
}

func (f *Future) claim() bool {
	claimed := false
	f.once.Do(func() {
		claimed = true
	})
	return claimed
}

func (f *Future) run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	f.mu.Lock()
	f.cancel = cancel
	if f.canceled {
		cancel()
	}
	f.mu.Unlock()

	f.exec, f.err = f.doer.Do(ctx, f.req)
	close(f.done)
}

func (f *Future) result() (*request.Response, error) {
	if f.exec == nil {
		return nil, f.err
	}
	return f.exec.Response, f.err
}
