// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpc

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/net/http/httpguts"

	"github.com/gogama/httpc/request"
)

// A Builder accumulates the method, URL, headers and body of a single
// request before it is resolved into a Future. No I/O happens while
// building.
//
// Setters return the Builder to allow chaining. A setter given an
// invalid value records the first such error, which is then returned by
// Resolve. A Builder is not safe for concurrent use, and is consumed by
// its first call to Resolve or Send.
type Builder struct {
	doer     Doer
	req      *request.Request
	err      error
	consumed bool
}

func newBuilder(d Doer, method string, uri interface{}) (*Builder, error) {
	r, err := request.New(method, uri, nil)
	if err != nil {
		return nil, err
	}

	return &Builder{
		doer: d,
		req:  r,
	}, nil
}

// Method returns the request method.
func (b *Builder) Method() string {
	return b.req.Method
}

// SetMethod replaces the request method.
func (b *Builder) SetMethod(method string) *Builder {
	if !b.mutable() {
		return b
	}
	if !request.ValidMethod(method) {
		b.fail(fmt.Errorf("%w %q", request.ErrInvalidMethod, method))
		return b
	}
	b.req.Method = method
	return b
}

// URL returns the request URL.
func (b *Builder) URL() *url.URL {
	return b.req.URL
}

// SetURL replaces the request URL. The uri may be any value accepted
// by request.ParseURI.
func (b *Builder) SetURL(uri interface{}) *Builder {
	if !b.mutable() {
		return b
	}
	u, err := request.ParseURI(uri)
	if err != nil {
		b.fail(err)
		return b
	}
	b.req.URL = u
	b.req.Host = u.Host
	return b
}

// Header returns the request header. Changes to the returned header
// are reflected in the request, so the header must not be modified
// once the builder is resolved.
func (b *Builder) Header() http.Header {
	return b.req.Header
}

// SetHeader sets the header entries associated with name to the single
// element value, replacing any existing values.
func (b *Builder) SetHeader(name, value string) *Builder {
	if b.mutable() && b.checkHeader(name, value) {
		b.req.Header.Set(name, value)
	}
	return b
}

// AddHeader adds value to the values associated with name, keeping any
// existing values.
func (b *Builder) AddHeader(name, value string) *Builder {
	if b.mutable() && b.checkHeader(name, value) {
		b.req.Header.Add(name, value)
	}
	return b
}

// DelHeader deletes the values associated with name.
func (b *Builder) DelHeader(name string) *Builder {
	if b.mutable() {
		b.req.Header.Del(name)
	}
	return b
}

// Body returns the buffered request body.
func (b *Builder) Body() []byte {
	return b.req.Body
}

// SetBody replaces the request body. The body may be any value
// accepted by request.BodyBytes.
func (b *Builder) SetBody(body interface{}) *Builder {
	if !b.mutable() {
		return b
	}
	p, err := request.BodyBytes(body)
	if err != nil {
		b.fail(err)
		return b
	}
	b.req.Body = p
	return b
}

// Request returns the request being built. After Resolve the request
// belongs to the Future and must not be modified.
func (b *Builder) Request() *request.Request {
	return b.req
}

// Err returns the first error recorded by a setter, if any. A setter
// called after Resolve records ErrBuilderConsumed and has no effect.
func (b *Builder) Err() error {
	return b.err
}

// Resolve consumes the builder and returns a Future for its request.
// The request is not sent until the Future is awaited or started.
//
// Resolve returns ErrBuilderConsumed if the builder was already
// resolved, and otherwise the first error recorded by a setter.
func (b *Builder) Resolve() (*Future, error) {
	if b.consumed {
		return nil, ErrBuilderConsumed
	}
	b.consumed = true
	if b.err != nil {
		return nil, b.err
	}

	return newFuture(b.doer, b.req), nil
}

// Send resolves the builder and awaits the resulting Future.
func (b *Builder) Send(ctx context.Context) (*request.Response, error) {
	f, err := b.Resolve()
	if err != nil {
		return nil, err
	}

	return f.Await(ctx)
}

func (b *Builder) checkHeader(name, value string) bool {
	if !httpguts.ValidHeaderFieldName(name) {
		b.fail(fmt.Errorf("%w: name %q", ErrInvalidHeader, name))
		return false
	}
	if !httpguts.ValidHeaderFieldValue(value) {
		b.fail(fmt.Errorf("%w: value for %q", ErrInvalidHeader, name))
		return false
	}
	return true
}

func (b *Builder) mutable() bool {
	if b.consumed {
		b.fail(ErrBuilderConsumed)
		return false
	}
	return true
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}
