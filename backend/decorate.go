// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package backend

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/gogama/httpc/request"
)

// DefaultRequestIDHeader is the header RequestID uses when given an
// empty header name.
const DefaultRequestIDHeader = "X-Request-Id"

// RequestID wraps next so that every request carries a unique ID in
// the named header. A request that already has the header keeps its
// value.
func RequestID(next Backend, header string) Backend {
	if header == "" {
		header = DefaultRequestIDHeader
	}
	header = http.CanonicalHeaderKey(header)
	return Func(func(ctx context.Context, r *request.Request) (*request.Response, error) {
		if r.Header == nil {
			r.Header = make(http.Header)
		}
		if r.Header.Get(header) == "" {
			r.Header.Set(header, uuid.NewString())
		}
		return next.Execute(ctx, r)
	})
}

// UserAgent wraps next so that every request is sent with the given
// User-Agent header, replacing any value set on the request.
func UserAgent(next Backend, value string) Backend {
	return Func(func(ctx context.Context, r *request.Request) (*request.Response, error) {
		if r.Header == nil {
			r.Header = make(http.Header)
		}
		r.Header.Set("User-Agent", value)
		return next.Execute(ctx, r)
	})
}
