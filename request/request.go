// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	urlpkg "net/url"
	"strings"

	"golang.org/x/net/http/httpguts"
)

var (
	template, _ = http.NewRequest("GET", "", nil)

	// ErrInvalidMethod is wrapped by the error returned when a method
	// is not a valid HTTP token.
	ErrInvalidMethod = errors.New("httpc/request: invalid method")
)

// A Request contains a logical HTTP request for execution by a client.
//
// The field structure of Request mirrors the structure of the
// lower-level http.Request with server-only fields removed, and with
// the body fields replaced by a simple pre-buffered []byte. A Request
// is built per call and is never shared between executions: once it
// has been handed to a client it belongs to that execution, which may
// modify it (for example to attach a Cookie header) before passing it
// to the backend.
type Request struct {
	// Method specifies the HTTP method (GET, POST, PUT, etc.).
	// An empty string means GET.
	Method string

	// URL specifies the absolute URL to access.
	URL *urlpkg.URL

	// Header contains the request header fields to be sent by the
	// client. Repeated header names are preserved, in the order they
	// were added.
	Header http.Header

	// Body is the pre-buffered request body to be sent. A nil or
	// empty body indicates no request body should be sent, for example
	// on a GET or DELETE request.
	Body []byte

	// Host optionally overrides the Host header to send. If empty, the
	// value of URL.Host will be sent.
	Host string
}

// New returns a new Request given a method, a URI-like value, and an
// optional body.
//
// Parameter uri may be any value accepted by ParseURI. A uri that
// cannot be converted into an absolute URL causes an *InvalidURIError.
//
// Parameter body may be nil (empty body), or it may be a string,
// []byte, io.Reader, or io.ReadCloser. If body is an io.Reader, it is
// read to the end and buffered into a []byte. If body is an
// io.ReadCloser, it is closed after buffering.
func New(method string, uri interface{}, body interface{}) (*Request, error) {
	if method == "" {
		method = http.MethodGet
	}
	if !ValidMethod(method) {
		return nil, fmt.Errorf("%w %q", ErrInvalidMethod, method)
	}
	u, err := ParseURI(uri)
	if err != nil {
		return nil, err
	}
	b, err := BodyBytes(body)
	if err != nil {
		return nil, err
	}
	return &Request{
		Method: method,
		URL:    u,
		Header: make(http.Header),
		Body:   b,
		Host:   u.Host,
	}, nil
}

// Clone returns a deep copy of r. The URL, Header and Body of the copy
// may be modified without affecting r.
func (r *Request) Clone() *Request {
	r2 := new(Request)
	*r2 = *r
	if r.URL != nil {
		r2.URL = cloneURL(r.URL)
	}
	r2.Header = r.Header.Clone()
	if r.Body != nil {
		r2.Body = append([]byte(nil), r.Body...)
	}
	return r2
}

// SetBasicAuth sets the request's Authorization header to use HTTP
// Basic Authentication with the provided username and password.
//
// With HTTP Basic Authentication the provided username and password
// are not encrypted.
func (r *Request) SetBasicAuth(username, password string) {
	if r.Header == nil {
		r.Header = make(http.Header)
	}
	r.Header.Set("Authorization", "Basic "+basicAuth(username, password))
}

// ToHTTP creates a net/http request corresponding to r. The context of
// the new request is set to ctx, which may not be nil.
//
// The header map is shared with r, so changes made by an http.Client
// or RoundTripper to the outgoing request's headers are visible in r.
func (r *Request) ToHTTP(ctx context.Context) *http.Request {
	hr := template.WithContext(ctx)
	hr.Method = r.Method
	if hr.Method == "" {
		hr.Method = http.MethodGet
	}
	hr.URL = r.URL
	if r.Header == nil {
		r.Header = make(http.Header)
	}
	hr.Header = r.Header
	if len(r.Body) > 0 {
		body := r.Body
		hr.Body = io.NopCloser(bytes.NewReader(body))
		hr.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(body)), nil
		}
		hr.ContentLength = int64(len(body))
	}
	hr.Host = r.Host
	return hr
}

// basicAuth is lifted verbatim from net/http/client.go.
//
// See 2 (end of page 4) https://www.ietf.org/rfc/rfc2617.txt
// "To receive authorization, the client sends the userid and password,
// separated by a single colon (":") character, within a base64
// encoded string in the credentials."
// It is not meant to be urlencoded.
func basicAuth(username, password string) string {
	auth := username + ":" + password
	return base64.StdEncoding.EncodeToString([]byte(auth))
}

// ValidMethod reports whether method is a syntactically valid HTTP
// method, i.e. a non-empty RFC 7230 token.
func ValidMethod(method string) bool {
	return method != "" && strings.IndexFunc(method, isNotToken) == -1
}

func isNotToken(r rune) bool {
	return !httpguts.IsTokenRune(r)
}
