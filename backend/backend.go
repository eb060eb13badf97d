// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package backend

import (
	"context"

	"github.com/gogama/httpc/request"
)

// A Backend performs the actual transmission of a request.
//
// Execute sends r and returns the response, or an error if no response
// was obtained. Execute may block while awaiting I/O and must honor
// cancellation of ctx by abandoning any in-flight work.
//
// Execute may modify r, for example to add headers. Implementations
// must be safe for concurrent use by multiple goroutines.
type Backend interface {
	Execute(ctx context.Context, r *request.Request) (*request.Response, error)
}

// The Func type is an adapter to allow the use of ordinary functions as
// backends.
type Func func(ctx context.Context, r *request.Request) (*request.Response, error)

// Execute calls f(ctx, r).
func (f Func) Execute(ctx context.Context, r *request.Request) (*request.Response, error) {
	return f(ctx, r)
}
