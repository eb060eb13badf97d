// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"context"
	"net/http"
	"time"
)

// An Execution represents the state of a single request execution.
//
// When a client executes a Request, an Execution is created for it. The
// Execution is updated as the run progresses (cookie injection, the
// backend call, cookie merge) and is ultimately returned as the result
// of the run.
//
// Event handlers may store values on an Execution using its SetValue
// method and read them back using Value. They should treat the exported
// fields as read-only, with the exception of reasonable changes to the
// Request before it is sent (for example request signing).
type Execution struct {
	// Request is the request being executed. It is never nil.
	Request *Request

	// Start is the start time of the execution. It is assigned when the
	// execution starts and remains constant thereafter.
	Start time.Time

	// End is the end time of the execution. It contains the zero value
	// until the execution ends.
	End time.Time

	// CookieStore records whether the client's cookie store was enabled
	// when the execution started. The same value governs both the
	// outgoing Cookie header and the merge of incoming Set-Cookie
	// headers, even if the client's setting changes mid-flight.
	CookieStore bool

	// CookiesSent is the number of jar cookies encoded into the
	// outgoing Cookie header.
	CookiesSent int

	// CookiesReceived is the number of Set-Cookie headers merged into
	// the jar after a successful response.
	CookiesReceived int

	// Response is the response returned by the backend. It is nil
	// until the backend returns, and remains nil if the backend failed.
	//
	// Response may be non-nil together with a non-nil Err if the
	// backend succeeded but a later step (cookie merge) failed.
	Response *Response

	// Err is the first error encountered during the execution. Once the
	// execution has ended it has the same value as the error returned
	// by the client.
	Err error

	data context.Context
}

// StatusCode returns the status code of the response. If there is no
// response, 0 is returned.
func (e *Execution) StatusCode() int {
	if e.Response == nil {
		return 0
	}

	return e.Response.StatusCode
}

// Header returns the response headers. If there is no response, the
// nil header is returned, which is safe for read-only operations.
func (e *Execution) Header() http.Header {
	if e.Response == nil {
		var nilHeader http.Header
		return nilHeader
	}

	return e.Response.Header
}

// Duration returns the duration of the execution.
//
// If the execution has not yet started, the duration is zero. If the
// execution has ended, the duration returned is equal to End minus
// Start. Otherwise, it is equal to the current time minus Start.
func (e *Execution) Duration() time.Duration {
	if !e.Started() {
		return time.Duration(0)
	} else if !e.Ended() {
		return time.Since(e.Start)
	}

	return e.End.Sub(e.Start)
}

// Started indicates whether the execution has started.
func (e *Execution) Started() bool {
	return !e.Start.IsZero()
}

// Ended indicates whether the execution has ended. Once it returns
// true there will be no further changes to the execution.
func (e *Execution) Ended() bool {
	return !e.End.IsZero()
}

// SetValue allows event handlers to store arbitrary data in the
// execution.
//
// The key must follow the same rules as the key parameter in
// context.WithValue: it may not be nil, it must be comparable, and it
// should not be of a built-in type to avoid collisions between
// different event handlers.
func (e *Execution) SetValue(key, value interface{}) {
	ctx := e.data
	if ctx == nil {
		ctx = context.Background()
	}

	e.data = context.WithValue(ctx, key, value)
}

// Value returns the data value associated with this execution for key,
// or nil if there is no value associated with key.
func (e *Execution) Value(key interface{}) interface{} {
	ctx := e.data
	if ctx == nil {
		return nil
	}

	return ctx.Value(key)
}
