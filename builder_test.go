// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpc

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gogama/httpc/request"
)

func TestBuilder(t *testing.T) {
	t.Run("accessors", testBuilderAccessors)
	t.Run("setter errors", testBuilderSetterErrors)
	t.Run("resolve", testBuilderResolve)
	t.Run("setters after resolve", testBuilderSettersAfterResolve)
	t.Run("send", testBuilderSend)
}

func testBuilderAccessors(t *testing.T) {
	c := newTestClient(t)
	b, err := c.Get("http://example.com/a")
	require.NoError(t, err)

	ret := b.SetMethod("POST").
		SetURL("https://example.org/b?c=d").
		SetHeader("Content-Type", "text/plain").
		AddHeader("X-Multi", "1").
		AddHeader("X-Multi", "2").
		SetHeader("X-Gone", "x").
		DelHeader("X-Gone").
		SetBody(strings.NewReader("body"))
	assert.Same(t, b, ret)
	require.NoError(t, b.Err())

	assert.Equal(t, "POST", b.Method())
	assert.Equal(t, "https://example.org/b?c=d", b.URL().String())
	assert.Equal(t, "text/plain", b.Header().Get("Content-Type"))
	assert.Equal(t, []string{"1", "2"}, b.Header().Values("X-Multi"))
	assert.Empty(t, b.Header().Get("X-Gone"))
	assert.Equal(t, []byte("body"), b.Body())

	r := b.Request()
	assert.Equal(t, "POST", r.Method)
	assert.Equal(t, "example.org", r.Host)
	assert.Equal(t, []byte("body"), r.Body)

	b.Header().Set("Direct", "yes")
	assert.Equal(t, "yes", r.Header.Get("Direct"))

	u, _ := url.Parse("http://example.net")
	b.SetURL(u)
	assert.Equal(t, "http://example.net", b.URL().String())
	assert.NotSame(t, u, b.URL())
}

func testBuilderSetterErrors(t *testing.T) {
	testCases := []struct {
		name   string
		set    func(*Builder) *Builder
		expErr error
	}{
		{"method", func(b *Builder) *Builder { return b.SetMethod("") }, ErrInvalidMethod},
		{"url", func(b *Builder) *Builder { return b.SetURL("not absolute") }, ErrInvalidURI},
		{"header name", func(b *Builder) *Builder { return b.SetHeader("Bad Name", "v") }, ErrInvalidHeader},
		{"header value", func(b *Builder) *Builder { return b.AddHeader("X-Bad", "a\r\nb") }, ErrInvalidHeader},
		{"body", func(b *Builder) *Builder { return b.SetBody(42) }, nil},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newMockBackend(t)
			c := newTestClient(t, WithBackend(m))
			b, err := c.Get("http://example.com")
			require.NoError(t, err)

			tc.set(b).SetHeader("X-Later", "ok").SetMethod("PUT")
			require.Error(t, b.Err())
			if tc.expErr != nil {
				assert.ErrorIs(t, b.Err(), tc.expErr)
			}
			assert.Equal(t, "http://example.com", b.URL().String())

			f, err := b.Resolve()
			assert.Nil(t, f)
			assert.Same(t, b.Err(), err)
			m.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func testBuilderResolve(t *testing.T) {
	m := newMockBackend(t)
	c := newTestClient(t, WithBackend(m))
	b, err := c.Delete("http://example.com/thing")
	require.NoError(t, err)

	f, err := b.Resolve()
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Nil(t, f.Execution())
	m.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)

	f2, err := b.Resolve()
	assert.Nil(t, f2)
	assert.Same(t, ErrBuilderConsumed, err)
	assert.Equal(t, Usage, Classify(err))

	resp, err := b.Send(context.Background())
	assert.Nil(t, resp)
	assert.Same(t, ErrBuilderConsumed, err)
}

func testBuilderSettersAfterResolve(t *testing.T) {
	bb := newBlockingBackend()
	c := newTestClient(t, WithBackend(bb))
	b, err := c.Post("http://example.com/a")
	require.NoError(t, err)
	b.SetHeader("X-Keep", "1").SetBody("original")

	f, err := b.Resolve()
	require.NoError(t, err)
	f.Start(context.Background())
	<-bb.started

	b.SetMethod("PUT").
		SetURL("http://example.org/b").
		SetHeader("X-Late", "late").
		AddHeader("X-Keep", "2").
		DelHeader("X-Keep").
		SetBody("changed")
	assert.Same(t, ErrBuilderConsumed, b.Err())

	r := b.Request()
	assert.Equal(t, "POST", r.Method)
	assert.Equal(t, "http://example.com/a", r.URL.String())
	assert.Equal(t, []string{"1"}, r.Header.Values("X-Keep"))
	assert.Empty(t, r.Header.Get("X-Late"))
	assert.Equal(t, []byte("original"), r.Body)

	close(bb.release)
	resp, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func testBuilderSend(t *testing.T) {
	m := newMockBackend(t)
	c := newTestClient(t, WithBackend(m))
	expected := okResponse()
	m.On("Execute", mock.Anything, mock.MatchedBy(func(r *request.Request) bool {
		return r.Method == "PATCH" &&
			r.URL.String() == "http://example.com/p" &&
			r.Header.Get("If-Match") == "etag" &&
			string(r.Body) == `{"a":1}`
	})).Return(expected, nil).Once()

	b, err := c.Patch("http://example.com/p")
	require.NoError(t, err)
	resp, err := b.SetHeader("If-Match", "etag").SetBody(`{"a":1}`).Send(context.Background())
	require.NoError(t, err)
	assert.Same(t, expected, resp)
	m.AssertExpectations(t)
}
