// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpc

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/gogama/httpc/backend"
	"github.com/gogama/httpc/cookie"
	"github.com/gogama/httpc/request"
)

var emptyHandlers = HandlerGroup{}

// A Client turns requests into executed network calls through its
// Backend while keeping a per-client cookie jar.
//
// A Client owns exactly one jar. When the cookie store is enabled, each
// execution attaches every stored cookie to the outgoing request as a
// single Cookie header, and merges the Set-Cookie headers of a
// successful response back into the jar. When it is disabled the jar is
// neither read nor written by executions, though cookies can still be
// added with WithCookie.
//
// Client is safe for concurrent use by multiple goroutines. Any number
// of builders and futures may be resolved and run against the same
// Client at the same time.
type Client struct {
	jar         *cookie.Jar
	cookieStore atomic.Bool
	backend     backend.Backend
	handlers    *HandlerGroup
	logger      zerolog.Logger
}

// New returns a new Client with an empty jar and the cookie store
// disabled, configured by opts. With no options New cannot fail.
func New(opts ...Option) (*Client, error) {
	o := options{
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, fmt.Errorf("httpc: applying option: %w", err)
		}
	}

	c := &Client{
		jar:      cookie.NewJar(),
		backend:  o.backend,
		handlers: o.handlers,
		logger:   o.logger,
	}
	if c.backend == nil {
		c.backend = &backend.HTTP{}
	}
	if c.handlers == nil {
		c.handlers = &emptyHandlers
	}
	c.cookieStore.Store(o.cookieStore)
	for _, ck := range o.cookies {
		c.jar.AddOriginal(ck)
	}

	return c, nil
}

// WithCookie stores a copy of ck in the jar, replacing any cookie with
// the same name, domain and path. A nil cookie is ignored. It returns c
// to allow chaining.
func (c *Client) WithCookie(ck *http.Cookie) *Client {
	c.jar.AddOriginal(ck)
	return c
}

// EnableCookieStore turns the cookie store on. Executions which have
// already started are not affected.
func (c *Client) EnableCookieStore() {
	c.cookieStore.Store(true)
}

// DisableCookieStore turns the cookie store off. Executions which have
// already started are not affected.
func (c *Client) DisableCookieStore() {
	c.cookieStore.Store(false)
}

// CookieStoreEnabled reports whether the cookie store is on.
func (c *Client) CookieStoreEnabled() bool {
	return c.cookieStore.Load()
}

// Jar returns the client's cookie jar.
func (c *Client) Jar() *cookie.Jar {
	return c.jar
}

// Method returns a Builder for a request with the given method and
// URI. The uri may be any value accepted by request.ParseURI. If it
// cannot be converted into an absolute URL, the error is an
// *InvalidURIError and no builder is returned.
func (c *Client) Method(method string, uri interface{}) (*Builder, error) {
	return newBuilder(c, method, uri)
}

// Get is shorthand for Method("GET", uri).
func (c *Client) Get(uri interface{}) (*Builder, error) {
	return c.Method(http.MethodGet, uri)
}

// Post is shorthand for Method("POST", uri).
func (c *Client) Post(uri interface{}) (*Builder, error) {
	return c.Method(http.MethodPost, uri)
}

// Put is shorthand for Method("PUT", uri).
func (c *Client) Put(uri interface{}) (*Builder, error) {
	return c.Method(http.MethodPut, uri)
}

// Delete is shorthand for Method("DELETE", uri).
func (c *Client) Delete(uri interface{}) (*Builder, error) {
	return c.Method(http.MethodDelete, uri)
}

// Head is shorthand for Method("HEAD", uri).
func (c *Client) Head(uri interface{}) (*Builder, error) {
	return c.Method(http.MethodHead, uri)
}

// Patch is shorthand for Method("PATCH", uri).
func (c *Client) Patch(uri interface{}) (*Builder, error) {
	return c.Method(http.MethodPatch, uri)
}

// Send executes r and returns the response. It runs the same pipeline
// as a resolved Builder. The request belongs to the execution once
// passed in and may be modified, for example to add a Cookie header.
//
// If the backend fails, its error is returned unchanged and the
// response is nil. If the backend succeeds but merging the response
// cookies fails, both the response and the error are returned.
func (c *Client) Send(ctx context.Context, r *request.Request) (*request.Response, error) {
	return send(ctx, c, r)
}

// CloseIdleConnections invokes the same method on the client's
// backend, if it has one.
func (c *Client) CloseIdleConnections() {
	if ic, ok := c.backend.(IdleCloser); ok {
		ic.CloseIdleConnections()
	}
}
