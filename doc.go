// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package httpc provides an HTTP client which keeps a per-client cookie
jar and delegates the network exchange to a pluggable backend.

Create a Client, declare a request with a Builder, and send it:

	client, _ := httpc.New()
	b, err := client.Get("https://www.example.com/items?id=42")
	...
	resp, err := b.SetHeader("Accept", "application/json").Send(ctx)

Building a request performs no I/O. Resolving a Builder returns a
Future, which runs the request at most once when awaited or started:

	f, err := b.Resolve()
	...
	f.Start(ctx)
	...
	resp, err := f.Await(ctx)

Turn on the cookie store to carry cookies between requests. Every
stored cookie is sent as a single Cookie header, and Set-Cookie headers
of successful responses are merged back into the jar:

	client.EnableCookieStore()
	client.WithCookie(&http.Cookie{Name: "session", Value: "abc"})

For control over how requests are sent, supply a Backend. The backends
in package backend can be stacked, for example to rate limit and trace
requests sent by a custom http.Client:

	var b backend.Backend = &backend.HTTP{Doer: &http.Client{...}}
	b, _ = backend.Throttle(b, 10, 5, logger)
	b = backend.Trace(b, tracerProvider)
	client, _ := httpc.New(httpc.WithBackend(b))

To hook into the execution of every request, install a handler into the
appropriate handler chain:

	handlers := &httpc.HandlerGroup{}
	handlers.PushBack(httpc.AfterExecutionEnd, httpc.HandlerFunc(
		func(_ httpc.Event, e *request.Execution) {
			log.Printf("%s %s took %s", e.Request.Method, e.Request.URL, e.Duration())
		}),
	)
	client, _ := httpc.New(httpc.WithHandlers(handlers))

For quick use without configuration, the package-level functions Get,
Post, Put, Delete, Head, Patch, Method and Send use a lazily created
default Client.
*/
package httpc
