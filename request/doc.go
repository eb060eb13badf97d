// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package request contains the core value types Request (describes an HTTP
request), Response (a fully-buffered HTTP response) and Execution (the
state of one request execution by a client).

A Request looks like a stripped-down http.Request with all server-side
fields removed and the body replaced with a pre-buffered []byte:

	r, err := request.New("POST", "https://example.com/upload", body)
	...
	resp, err := client.Send(ctx, r)

URI-like values are converted with ParseURI, which accepts strings,
byte slices, url.URL values and fmt.Stringers, and rejects anything that
does not convert into an absolute URL with an *InvalidURIError.

An Execution is handed to event handlers while a request runs and is
returned by the client's Do method. You will typically not allocate
Execution instances yourself.
*/
package request
