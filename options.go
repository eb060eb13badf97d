// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpc

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/gogama/httpc/backend"
)

// Option is a functional option for configuring a Client via New.
type Option func(*options) error

type options struct {
	backend     backend.Backend
	cookieStore bool
	cookies     []*http.Cookie
	handlers    *HandlerGroup
	logger      zerolog.Logger
}

// WithBackend sets the Backend which performs the network exchange.
// The default is a zero-value backend.HTTP, which sends requests
// through http.DefaultClient.
func WithBackend(b backend.Backend) Option {
	return func(o *options) error {
		if b == nil {
			return errors.New("backend must not be nil")
		}
		o.backend = b
		return nil
	}
}

// WithHTTPDoer is shorthand for WithBackend(&backend.HTTP{Doer: d}).
func WithHTTPDoer(d backend.HTTPDoer) Option {
	return func(o *options) error {
		if d == nil {
			return errors.New("doer must not be nil")
		}
		o.backend = &backend.HTTP{Doer: d}
		return nil
	}
}

// WithCookieStore sets the initial state of the cookie store. The
// store is disabled by default.
func WithCookieStore(enabled bool) Option {
	return func(o *options) error {
		o.cookieStore = enabled
		return nil
	}
}

// WithCookies seeds the jar with cookies, as if each were passed to
// Client.WithCookie in order.
func WithCookies(cookies ...*http.Cookie) Option {
	return func(o *options) error {
		for _, c := range cookies {
			if c == nil {
				return errors.New("cookie must not be nil")
			}
		}
		o.cookies = append(o.cookies, cookies...)
		return nil
	}
}

// WithHandlers installs a group of event handlers. The group must not
// be modified once the client is in use.
func WithHandlers(g *HandlerGroup) Option {
	return func(o *options) error {
		if g == nil {
			return errors.New("handler group must not be nil")
		}
		o.handlers = g
		return nil
	}
}

// WithLogger sets the logger used by the client. The default logger
// discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) error {
		o.logger = l
		return nil
	}
}
