// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpc

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gogama/httpc/backend"
	"github.com/gogama/httpc/cookie"
	"github.com/gogama/httpc/request"
)

func TestNew(t *testing.T) {
	t.Run("zero options", func(t *testing.T) {
		c, err := New()
		require.NoError(t, err)
		assert.False(t, c.CookieStoreEnabled())
		assert.Equal(t, 0, c.Jar().Len())
		assert.IsType(t, &backend.HTTP{}, c.backend)
		assert.Same(t, &emptyHandlers, c.handlers)
	})
	t.Run("options", func(t *testing.T) {
		m := newMockBackend(t)
		g := &HandlerGroup{}
		c, err := New(
			WithBackend(m),
			WithCookieStore(true),
			WithCookies(&http.Cookie{Name: "a", Value: "1"}, &http.Cookie{Name: "b", Value: "2"}),
			WithHandlers(g),
			WithLogger(zerolog.Nop()),
		)
		require.NoError(t, err)
		assert.True(t, c.CookieStoreEnabled())
		assert.Equal(t, 2, c.Jar().Len())
		assert.Same(t, m, c.backend)
		assert.Same(t, g, c.handlers)
	})
	t.Run("http doer", func(t *testing.T) {
		d := &http.Client{}
		c, err := New(WithHTTPDoer(d))
		require.NoError(t, err)
		require.IsType(t, &backend.HTTP{}, c.backend)
		assert.Same(t, d, c.backend.(*backend.HTTP).Doer)
	})
	t.Run("option errors", func(t *testing.T) {
		testCases := []struct {
			name   string
			opt    Option
			expMsg string
		}{
			{"nil backend", WithBackend(nil), "httpc: applying option: backend must not be nil"},
			{"nil doer", WithHTTPDoer(nil), "httpc: applying option: doer must not be nil"},
			{"nil cookie", WithCookies(nil), "httpc: applying option: cookie must not be nil"},
			{"nil handlers", WithHandlers(nil), "httpc: applying option: handler group must not be nil"},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				c, err := New(tc.opt)
				assert.Nil(t, c)
				assert.EqualError(t, err, tc.expMsg)
			})
		}
	})
}

func TestClient_WithCookie(t *testing.T) {
	c := newTestClient(t)
	ret := c.WithCookie(&http.Cookie{Name: "a", Value: "1"}).
		WithCookie(&http.Cookie{Name: "b", Value: "2"}).
		WithCookie(&http.Cookie{Name: "a", Value: "3"}).
		WithCookie(nil)
	assert.Same(t, c, ret)
	cs := c.Jar().Cookies()
	require.Len(t, cs, 2)
	assert.Equal(t, "3", cs[0].Value)
	assert.Equal(t, "2", cs[1].Value)
}

func TestClient_CookieStore(t *testing.T) {
	c := newTestClient(t)
	assert.False(t, c.CookieStoreEnabled())
	c.EnableCookieStore()
	assert.True(t, c.CookieStoreEnabled())
	c.EnableCookieStore()
	assert.True(t, c.CookieStoreEnabled())
	c.DisableCookieStore()
	assert.False(t, c.CookieStoreEnabled())
}

func TestClient_Method(t *testing.T) {
	c := newTestClient(t)
	verbs := []struct {
		method string
		fn     func(interface{}) (*Builder, error)
	}{
		{"GET", c.Get},
		{"POST", c.Post},
		{"PUT", c.Put},
		{"DELETE", c.Delete},
		{"HEAD", c.Head},
		{"PATCH", c.Patch},
	}
	for _, v := range verbs {
		t.Run(v.method, func(t *testing.T) {
			b, err := v.fn("http://example.com/x")
			require.NoError(t, err)
			assert.Equal(t, v.method, b.Method())
			assert.Equal(t, "http://example.com/x", b.URL().String())
			assert.Same(t, c, b.doer)
		})
	}
	t.Run("custom method", func(t *testing.T) {
		b, err := c.Method("PROPFIND", "http://example.com")
		require.NoError(t, err)
		assert.Equal(t, "PROPFIND", b.Method())
	})
	t.Run("URI types", func(t *testing.T) {
		u, _ := url.Parse("https://example.com/a?b=c")
		for _, uri := range []interface{}{"https://example.com/a?b=c", []byte("https://example.com/a?b=c"), u, *u} {
			b, err := c.Get(uri)
			require.NoError(t, err)
			assert.Equal(t, "https://example.com/a?b=c", b.URL().String())
		}
	})
	t.Run("invalid URI", func(t *testing.T) {
		var nilBuilder *strings.Builder
		for _, uri := range []interface{}{"", ":::", "/relative", "example.com", 42, nil, nilBuilder} {
			b, err := c.Get(uri)
			assert.Nil(t, b)
			var uriErr *InvalidURIError
			assert.ErrorAs(t, err, &uriErr, "uri %v", uri)
			assert.ErrorIs(t, err, ErrInvalidURI)
			assert.Equal(t, InvalidURI, Classify(err))
		}
	})
	t.Run("invalid method", func(t *testing.T) {
		b, err := c.Method("GET PUT", "http://example.com")
		assert.Nil(t, b)
		assert.ErrorIs(t, err, ErrInvalidMethod)
	})
}

func TestClient_Send(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		expected := &request.Response{StatusCode: 204}
		m := newMockBackend(t)
		c := newTestClient(t, WithBackend(m))
		r := newTestRequest(t, "PUT", "http://example.com/x")
		m.On("Execute", mock.Anything, r).Return(expected, nil).Once()
		resp, err := c.Send(context.Background(), r)
		assert.NoError(t, err)
		assert.Same(t, expected, resp)
		m.AssertExpectations(t)
	})
	t.Run("backend error", func(t *testing.T) {
		cause := errors.New("transport down")
		m := newMockBackend(t)
		c := newTestClient(t, WithBackend(m))
		m.On("Execute", mock.Anything, mock.Anything).Return(nil, cause).Once()
		resp, err := c.Send(context.Background(), newTestRequest(t, "GET", "http://example.com"))
		assert.Nil(t, resp)
		assert.Same(t, cause, err)
		assert.Equal(t, Transport, Classify(err))
	})
	t.Run("nil request", func(t *testing.T) {
		m := newMockBackend(t)
		c := newTestClient(t, WithBackend(m))
		resp, err := c.Send(context.Background(), nil)
		assert.Nil(t, resp)
		assert.Same(t, ErrNilRequest, err)
		m.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	})
	t.Run("servers", func(t *testing.T) {
		for _, server := range servers {
			t.Run(serverName(server), func(t *testing.T) {
				c := newTestClient(t, WithHTTPDoer(server.Client()))
				r := newTestRequest(t, "POST", server.URL+"/echo?q=1")
				r.Body = (&serverInstruction{StatusCode: 202}).toJSON()
				resp, err := c.Send(context.Background(), r)
				require.NoError(t, err)
				assert.Equal(t, 202, resp.StatusCode)
				var echo serverEcho
				require.NoError(t, echo.fromJSON(resp.Body))
				assert.Equal(t, "POST", echo.Method)
				assert.Equal(t, "/echo", echo.Path)
				assert.Equal(t, "q=1", echo.Query)
				assert.Empty(t, echo.Cookies)
			})
		}
	})
}

func TestClient_CloseIdleConnections(t *testing.T) {
	t.Run("backend without method", func(t *testing.T) {
		c := newTestClient(t, WithBackend(newMockBackend(t)))
		assert.NotPanics(t, c.CloseIdleConnections)
	})
	t.Run("backend with method", func(t *testing.T) {
		m := &mockBackendWithCloseIdleConnections{}
		m.Test(t)
		m.On("CloseIdleConnections").Return().Once()
		c := newTestClient(t, WithBackend(m))
		c.CloseIdleConnections()
		m.AssertExpectations(t)
	})
}

func newTestClient(t *testing.T, opts ...Option) *Client {
	c, err := New(opts...)
	require.NoError(t, err)
	return c
}

func newTestRequest(t *testing.T, method, uri string) *request.Request {
	r, err := request.New(method, uri, nil)
	require.NoError(t, err)
	return r
}

func okResponse(setCookies ...string) *request.Response {
	h := make(http.Header)
	for _, sc := range setCookies {
		h.Add("Set-Cookie", sc)
	}
	return &request.Response{StatusCode: 200, Status: "200 OK", Header: h}
}

func jarValues(j *cookie.Jar) map[string]string {
	m := make(map[string]string)
	for _, c := range j.Cookies() {
		m[c.Name] = c.Value
	}
	return m
}

type mockBackend struct {
	mock.Mock
}

func newMockBackend(t *testing.T) *mockBackend {
	m := &mockBackend{}
	m.Test(t)
	return m
}

func (m *mockBackend) Execute(ctx context.Context, r *request.Request) (*request.Response, error) {
	args := m.Called(ctx, r)
	resp, _ := args.Get(0).(*request.Response)
	return resp, args.Error(1)
}

type mockBackendWithCloseIdleConnections struct {
	mockBackend
}

func (m *mockBackendWithCloseIdleConnections) CloseIdleConnections() {
	m.Called()
}
