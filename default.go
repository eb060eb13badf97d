// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpc

import (
	"context"
	"net/http"
	"sync"

	"github.com/gogama/httpc/request"
)

var (
	defaultOnce   sync.Once
	defaultClient *Client
)

// Default returns the process-wide default Client, creating it on
// first use. It has an empty jar, the cookie store disabled and the
// default HTTP backend. Programs that need other settings should create
// their own Client with New.
func Default() *Client {
	defaultOnce.Do(func() {
		defaultClient, _ = New()
	})
	return defaultClient
}

// Method calls Method on the default client.
func Method(method string, uri interface{}) (*Builder, error) {
	return Default().Method(method, uri)
}

// Get calls Get on the default client.
func Get(uri interface{}) (*Builder, error) {
	return Default().Method(http.MethodGet, uri)
}

// Post calls Post on the default client.
func Post(uri interface{}) (*Builder, error) {
	return Default().Method(http.MethodPost, uri)
}

// Put calls Put on the default client.
func Put(uri interface{}) (*Builder, error) {
	return Default().Method(http.MethodPut, uri)
}

// Delete calls Delete on the default client.
func Delete(uri interface{}) (*Builder, error) {
	return Default().Method(http.MethodDelete, uri)
}

// Head calls Head on the default client.
func Head(uri interface{}) (*Builder, error) {
	return Default().Method(http.MethodHead, uri)
}

// Patch calls Patch on the default client.
func Patch(uri interface{}) (*Builder, error) {
	return Default().Method(http.MethodPatch, uri)
}

// Send calls Send on the default client.
func Send(ctx context.Context, r *request.Request) (*request.Response, error) {
	return Default().Send(ctx, r)
}
