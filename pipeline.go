// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpc

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gogama/httpc/request"
)

var errNilResponse = errors.New("httpc: backend returned neither response nor error")

// Do executes r and returns the final execution state. It is the
// pipeline behind Send, Builder.Send and Future.Await.
//
// The steps run strictly in sequence:
//
// • the cookie store flag is read once, and the same value governs the
// rest of the execution;
//
// • if the store is enabled and the jar is not empty, every stored
// cookie is encoded into a single Cookie header, replacing any Cookie
// header already on r;
//
// • r is passed to the backend, which is the only step that blocks;
//
// • if the store is enabled and the backend succeeded, every Set-Cookie
// header of the response is parsed and the cookies merged into the jar.
// If any header fails to parse nothing is merged.
//
// A backend error is returned unchanged. If ctx is done by the time the
// backend returns, ctx.Err() is returned and no cookies are merged. If
// the backend succeeded but the cookie merge failed, the execution
// holds both the response and the error.
//
// The returned Execution is nil only if r is nil. If an error was
// returned, the Err field of the Execution references the same error.
func (c *Client) Do(ctx context.Context, r *request.Request) (*request.Execution, error) {
	if r == nil {
		return nil, ErrNilRequest
	}
	if ctx == nil {
		ctx = context.Background()
	}

	e := request.Execution{
		Request: r,
	}

	c.handlers.run(BeforeExecutionStart, &e)
	e.Start = time.Now()
	e.CookieStore = c.cookieStore.Load()

	c.execute(ctx, &e)

	e.End = time.Now()
	c.handlers.run(AfterExecutionEnd, &e)
	return &e, e.Err
}

func (c *Client) execute(ctx context.Context, e *request.Execution) {
	if err := ctx.Err(); err != nil {
		e.Err = err
		return
	}

	if e.CookieStore {
		if err := c.attachCookies(e); err != nil {
			c.logger.Warn().
				Err(err).
				Str("method", e.Request.Method).
				Str("url", redacted(e.Request)).
				Msg("cookie header rejected")
			e.Err = err
			return
		}
	}

	c.handlers.run(BeforeSend, e)
	resp, err := c.backend.Execute(ctx, e.Request)
	if err == nil && resp == nil {
		err = errNilResponse
	}
	if err != nil {
		e.Err = err
		c.handlers.run(AfterSend, e)
		return
	}
	e.Response = resp
	c.handlers.run(AfterSend, e)

	if err = ctx.Err(); err != nil {
		e.Err = err
		return
	}

	if e.CookieStore {
		c.mergeCookies(e)
	}
}

func (c *Client) attachCookies(e *request.Execution) error {
	v, n, err := c.jar.Header()
	if err != nil {
		return err
	}
	if n == 0 {
		return nil
	}

	if e.Request.Header == nil {
		e.Request.Header = make(http.Header)
	}
	e.Request.Header.Set("Cookie", v)
	e.CookiesSent = n
	c.logger.Debug().
		Int("cookies", n).
		Str("url", redacted(e.Request)).
		Msg("cookies attached")
	return nil
}

func (c *Client) mergeCookies(e *request.Execution) {
	n, err := c.jar.Merge(e.Response.SetCookies())
	if err != nil {
		c.logger.Warn().
			Err(err).
			Int("status", e.Response.StatusCode).
			Str("url", redacted(e.Request)).
			Msg("set-cookie rejected")
		e.Err = err
		return
	}

	e.CookiesReceived = n
	if n > 0 {
		c.logger.Debug().
			Int("cookies", n).
			Int("jar", c.jar.Len()).
			Str("url", redacted(e.Request)).
			Msg("cookies merged")
	}
	c.handlers.run(AfterCookieMerge, e)
}

func redacted(r *request.Request) string {
	if r.URL == nil {
		return ""
	}
	return r.URL.Redacted()
}
