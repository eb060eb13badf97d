// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package backend

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/gogama/httpc/request"
)

// An HTTPDoer implements a Do method in the same manner as the GoLang
// standard library http.Client from the net/http package.
type HTTPDoer interface {
	// Do sends an HTTP request and returns an HTTP response following
	// policy (such as redirects and auth) configured on the HTTPDoer.
	//
	// The Do method must follow the contract documented on the GoLang
	// standard library http.Client from the net/http package.
	Do(r *http.Request) (*http.Response, error)
}

// HTTP is a Backend that sends requests through an HTTPDoer and reads
// the whole response body into memory. Its zero value is valid and
// uses http.DefaultClient.
//
// Connection handling, redirects, TLS and timeouts are all properties
// of the HTTPDoer. The HTTPDoer should not have its own cookie jar when
// used by a client with the cookie store enabled, otherwise cookies are
// managed twice.
type HTTP struct {
	// Doer specifies the mechanics of sending HTTP requests and
	// receiving responses.
	//
	// If Doer is nil, http.DefaultClient is used.
	Doer HTTPDoer
}

// Execute sends r and buffers the response.
//
// Any returned error has the type *url.Error. If the response was
// received but reading its body failed, the error is returned and the
// response is discarded.
func (b *HTTP) Execute(ctx context.Context, r *request.Request) (*request.Response, error) {
	hr := r.ToHTTP(ctx)
	resp, err := b.doer().Do(hr)
	if err != nil {
		return nil, urlErrorWrap(r, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, urlErrorWrap(r, err)
	}

	return &request.Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Proto:      resp.Proto,
		Header:     resp.Header,
		Body:       body,
		Request:    r,
	}, nil
}

// CloseIdleConnections invokes the same method on the underlying
// HTTPDoer, if it has one.
func (b *HTTP) CloseIdleConnections() {
	if ic, ok := b.doer().(interface{ CloseIdleConnections() }); ok {
		ic.CloseIdleConnections()
	}
}

func (b *HTTP) doer() HTTPDoer {
	if b.Doer == nil {
		return http.DefaultClient
	}

	return b.Doer
}

func urlErrorWrap(r *request.Request, err error) error {
	if _, ok := err.(*url.Error); ok {
		return err
	}

	var u string
	if r.URL != nil {
		u = r.URL.String()
	}
	return &url.Error{
		Op:  urlErrorOp(r.Method),
		URL: u,
		Err: err,
	}
}

// urlErrorOp is lifted verbatim from net/http/client.go
func urlErrorOp(method string) string {
	if method == "" {
		return "Get"
	}
	return method[:1] + strings.ToLower(method[1:])
}
