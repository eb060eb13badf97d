// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package backend defines the transport capability consumed by an httpc
client, together with a net/http based implementation and a set of
decorators.

A Backend executes one request and returns the fully-buffered response
or an error. The client never depends on a concrete implementation:

	b := &backend.HTTP{Doer: &http.Client{Transport: myTransport}}
	client, err := httpc.New(httpc.WithBackend(b))

Decorators wrap any Backend to add behavior around the call:

	b, err := backend.Throttle(&backend.HTTP{}, 10, 5, zerolog.Nop())
	b = backend.RequestID(b, "X-Request-Id")
	b = backend.Trace(b, otel.GetTracerProvider())

Errors returned by a Backend reach the caller of the client unchanged.
*/
package backend
