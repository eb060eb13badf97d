// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import "net/http"

// A Response is the fully-buffered result of sending a Request.
//
// Response headers may contain several entries with the same name; in
// particular a server may send any number of Set-Cookie headers.
type Response struct {
	// StatusCode is the numeric HTTP status code, e.g. 200.
	StatusCode int

	// Status is the status line text, e.g. "200 OK".
	Status string

	// Proto is the protocol version, e.g. "HTTP/1.1".
	Proto string

	// Header holds the response header fields.
	Header http.Header

	// Body is the complete response body.
	Body []byte

	// Request is the request that produced this response.
	Request *Request
}

// Values returns all values of the response header named key, in the
// order they were received. It is safe to call on a nil Response.
func (r *Response) Values(key string) []string {
	if r == nil {
		return nil
	}
	return r.Header.Values(key)
}

// SetCookies returns the raw values of every Set-Cookie header in the
// response.
func (r *Response) SetCookies() []string {
	return r.Values("Set-Cookie")
}

// Text returns the response body as a string.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	return string(r.Body)
}
