// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpc

import (
	"context"
	"net/http"

	"github.com/gogama/httpc/request"
)

// Doer is the interface that wraps the basic Do method.
//
// Do executes a request and returns the final execution state (and
// error, if any). Client implements the Doer interface, and any other
// Doer implementation must behave substantially the same as Client.Do.
//
// Builders and futures only need a Doer, so any Doer can be converted
// into an Executor via the Inflate function.
type Doer interface {
	Do(ctx context.Context, r *request.Request) (*request.Execution, error)
}

// Sender is the interface that wraps the basic Send method.
//
// Send executes a request and returns the response (and error, if
// any). Any Doer can be used to emulate a Sender via Inflate.
type Sender interface {
	Send(ctx context.Context, r *request.Request) (*request.Response, error)
}

// Requester is the interface that groups the builder factory methods.
//
// Each method converts a URI-like value, which may be any value
// accepted by request.ParseURI, and returns a Builder whose request
// will be executed by the underlying Doer.
type Requester interface {
	Method(method string, uri interface{}) (*Builder, error)
	Get(uri interface{}) (*Builder, error)
	Post(uri interface{}) (*Builder, error)
	Put(uri interface{}) (*Builder, error)
	Delete(uri interface{}) (*Builder, error)
	Head(uri interface{}) (*Builder, error)
	Patch(uri interface{}) (*Builder, error)
}

// IdleCloser is the interface that wraps the basic CloseIdleConnections
// method.
//
// If the underlying implementation supports it, CloseIdleConnections
// closes any idle connections kept from previous requests. It does
// not interrupt any connections currently in use.
type IdleCloser interface {
	CloseIdleConnections()
}

// Executor is the interface that groups the Doer, Sender, Requester
// and IdleCloser interfaces. Client implements Executor.
type Executor interface {
	Doer
	Sender
	Requester
	IdleCloser
}

// Inflate converts any non-nil Doer into an Executor. This may be
// helpful for interop across library boundaries, i.e. if code that only
// has access to a Doer needs to call a function that requires an
// Executor.
func Inflate(d Doer) Executor {
	if d == nil {
		panic("httpc: nil doer")
	}

	if e, ok := d.(Executor); ok {
		return e
	}

	return inflated{d}
}

type inflated struct {
	doer Doer
}

func (i inflated) Do(ctx context.Context, r *request.Request) (*request.Execution, error) {
	return i.doer.Do(ctx, r)
}

func (i inflated) Send(ctx context.Context, r *request.Request) (*request.Response, error) {
	return send(ctx, i.doer, r)
}

func (i inflated) Method(method string, uri interface{}) (*Builder, error) {
	return newBuilder(i.doer, method, uri)
}

func (i inflated) Get(uri interface{}) (*Builder, error) {
	return newBuilder(i.doer, http.MethodGet, uri)
}

func (i inflated) Post(uri interface{}) (*Builder, error) {
	return newBuilder(i.doer, http.MethodPost, uri)
}

func (i inflated) Put(uri interface{}) (*Builder, error) {
	return newBuilder(i.doer, http.MethodPut, uri)
}

func (i inflated) Delete(uri interface{}) (*Builder, error) {
	return newBuilder(i.doer, http.MethodDelete, uri)
}

func (i inflated) Head(uri interface{}) (*Builder, error) {
	return newBuilder(i.doer, http.MethodHead, uri)
}

func (i inflated) Patch(uri interface{}) (*Builder, error) {
	return newBuilder(i.doer, http.MethodPatch, uri)
}

func (i inflated) CloseIdleConnections() {
	if ic, ok := i.doer.(IdleCloser); ok {
		ic.CloseIdleConnections()
	}
}

func send(ctx context.Context, d Doer, r *request.Request) (*request.Response, error) {
	e, err := d.Do(ctx, r)
	if e == nil {
		return nil, err
	}
	return e.Response, err
}
