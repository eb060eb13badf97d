// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gogama/httpc/cookie"
	"github.com/gogama/httpc/request"
)

func TestClassify(t *testing.T) {
	_, uriErr := request.ParseURI("relative")
	_, parseErr := cookie.Parse("nope")
	encErr := cookie.ValidateHeader("a=\x00")

	testCases := []struct {
		name     string
		err      error
		expected Kind
	}{
		{"nil", nil, None},
		{"invalid URI", uriErr, InvalidURI},
		{"cookie parse", parseErr, CookieParse},
		{"header encoding", encErr, HeaderEncoding},
		{"wrapped header encoding", fmt.Errorf("x: %w", encErr), HeaderEncoding},
		{"builder consumed", ErrBuilderConsumed, Usage},
		{"nil request", ErrNilRequest, Usage},
		{"invalid method", fmt.Errorf("%w %q", ErrInvalidMethod, " "), Usage},
		{"invalid header", ErrInvalidHeader, Usage},
		{"canceled", context.Canceled, Canceled},
		{"url canceled", &url.Error{Op: "Get", URL: "x", Err: context.Canceled}, Canceled},
		{"deadline", context.DeadlineExceeded, Timeout},
		{"url deadline", &url.Error{Op: "Get", URL: "x", Err: context.DeadlineExceeded}, Timeout},
		{"conn refused", &url.Error{Op: "Get", URL: "x", Err: &net.OpError{Op: "dial", Err: os.NewSyscallError("connect", syscall.ECONNREFUSED)}}, ConnRefused},
		{"conn reset", &net.OpError{Op: "read", Err: os.NewSyscallError("read", syscall.ECONNRESET)}, ConnReset},
		{"other", errors.New("something else"), Transport},
		{"other errno", syscall.EPIPE, Transport},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Classify(tc.err))
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Len(t, kindNames, int(Transport)+1)
	assert.Equal(t, "None", None.String())
	assert.Equal(t, "InvalidURI", InvalidURI.String())
	assert.Equal(t, "CookieParse", CookieParse.String())
	assert.Equal(t, "HeaderEncoding", HeaderEncoding.String())
	assert.Equal(t, "Transport", Transport.String())
}

func TestReexports(t *testing.T) {
	assert.Same(t, request.ErrInvalidURI, ErrInvalidURI)
	assert.Same(t, cookie.ErrParse, ErrCookieParse)
	assert.Same(t, cookie.ErrHeaderEncoding, ErrHeaderEncoding)

	var err error = &InvalidURIError{URI: "x"}
	var target *request.InvalidURIError
	assert.ErrorAs(t, err, &target)
}
