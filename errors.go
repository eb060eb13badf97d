// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpc

import (
	"context"
	"errors"
	"syscall"

	"github.com/gogama/httpc/cookie"
	"github.com/gogama/httpc/request"
)

// Re-exported error types so callers can match them without importing
// the subpackages.
type (
	// InvalidURIError is returned when a URI-like value cannot be
	// converted into an absolute URL.
	InvalidURIError = request.InvalidURIError
	// CookieParseError is returned when a Set-Cookie header of a
	// successful response cannot be parsed.
	CookieParseError = cookie.ParseError
	// HeaderEncodingError is returned when the encoded Cookie header is
	// not a valid header field value.
	HeaderEncodingError = cookie.EncodingError
)

var (
	// ErrInvalidURI is wrapped by every *InvalidURIError.
	ErrInvalidURI = request.ErrInvalidURI
	// ErrInvalidMethod is wrapped by errors for methods which are not
	// valid HTTP tokens.
	ErrInvalidMethod = request.ErrInvalidMethod
	// ErrCookieParse is wrapped by every *CookieParseError.
	ErrCookieParse = cookie.ErrParse
	// ErrHeaderEncoding is wrapped by every *HeaderEncodingError.
	ErrHeaderEncoding = cookie.ErrHeaderEncoding

	// ErrBuilderConsumed is returned when a Builder is resolved twice.
	ErrBuilderConsumed = errors.New("httpc: builder already resolved")
	// ErrNilRequest is returned when a nil request is executed.
	ErrNilRequest = errors.New("httpc: nil request")
	// ErrInvalidHeader is wrapped by errors for header names or values
	// rejected by a Builder.
	ErrInvalidHeader = errors.New("httpc: invalid header field")
)

// A Kind is the broad category of an error returned by a Client, as
// reported by Classify.
type Kind int

const (
	// None is the kind of a nil error.
	None Kind = iota
	// Usage indicates a programming error: an invalid method or header,
	// a nil request, or a builder resolved twice.
	Usage
	// InvalidURI indicates a URI could not be converted.
	InvalidURI
	// CookieParse indicates a Set-Cookie header could not be parsed.
	CookieParse
	// HeaderEncoding indicates the jar could not be encoded into a
	// valid Cookie header.
	HeaderEncoding
	// Canceled indicates the execution's context was cancelled.
	Canceled
	// Timeout indicates the error or one of its causes reports a
	// timeout, including an expired context deadline.
	Timeout
	// ConnRefused indicates the remote host refused the connection
	// (syscall.ECONNREFUSED).
	ConnRefused
	// ConnReset indicates the remote host reset an active connection
	// (syscall.ECONNRESET).
	ConnReset
	// Transport is any other error returned by the backend.
	Transport
)

var kindNames = []string{
	"None",
	"Usage",
	"InvalidURI",
	"CookieParse",
	"HeaderEncoding",
	"Canceled",
	"Timeout",
	"ConnRefused",
	"ConnReset",
	"Transport",
}

// String returns the name of the kind.
func (k Kind) String() string {
	return kindNames[int(k)]
}

// Classify returns the kind of err. It looks at the causes wrapped
// inside err, not just err itself. Any error not produced by the client
// itself is reported as one of the transport kinds.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return None
	case errors.Is(err, ErrInvalidURI):
		return InvalidURI
	case errors.Is(err, ErrCookieParse):
		return CookieParse
	case errors.Is(err, ErrHeaderEncoding):
		return HeaderEncoding
	case errors.Is(err, ErrInvalidMethod),
		errors.Is(err, ErrInvalidHeader),
		errors.Is(err, ErrNilRequest),
		errors.Is(err, ErrBuilderConsumed):
		return Usage
	case errors.Is(err, context.Canceled):
		return Canceled
	}

	var hasTimeout hasTimeout
	if errors.As(err, &hasTimeout) && hasTimeout.Timeout() {
		return Timeout
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		if errno == syscall.ECONNRESET {
			return ConnReset
		} else if errno == syscall.ECONNREFUSED {
			return ConnRefused
		}
	}

	return Transport
}

type hasTimeout interface {
	Timeout() bool
}
