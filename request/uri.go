// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"errors"
	"fmt"
	urlpkg "net/url"
	"reflect"
	"strings"
)

// ErrInvalidURI is the sentinel error wrapped by every InvalidURIError.
var ErrInvalidURI = errors.New("httpc/request: invalid uri")

// An InvalidURIError reports a value that could not be converted into
// an absolute request URL.
type InvalidURIError struct {
	// URI is a printable form of the value that failed conversion.
	URI string
	// Err is the underlying cause, if any.
	Err error
}

func (e *InvalidURIError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v: %q", ErrInvalidURI, e.URI)
	}
	return fmt.Sprintf("%v: %q: %v", ErrInvalidURI, e.URI, e.Err)
}

// Unwrap returns the underlying cause so that both errors.Is(err,
// ErrInvalidURI) and inspection of the parse failure work.
func (e *InvalidURIError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidURI}
	}
	return []error{ErrInvalidURI, e.Err}
}

// ParseURI converts a URI-like value into an absolute URL.
//
// Parameter uri may be a string, []byte, *url.URL, url.URL, or any
// fmt.Stringer. The conversion logic is:
//
// • strings, byte slices and Stringers are parsed with url.Parse;
//
// • a *url.URL or url.URL is copied, so the caller's value is never
// aliased by the request.
//
// The result must be absolute, meaning it has both a scheme and a
// host. Nothing is coerced: a relative reference, an unparseable
// string, a nil pointer (including a nil Stringer) or an unsupported
// type all produce an *InvalidURIError.
func ParseURI(uri interface{}) (*urlpkg.URL, error) {
	var u *urlpkg.URL
	switch x := uri.(type) {
	case string:
		return parseString(x)
	case []byte:
		return parseString(string(x))
	case *urlpkg.URL:
		if x == nil {
			return nil, &InvalidURIError{URI: "<nil>"}
		}
		u = cloneURL(x)
	case urlpkg.URL:
		u = cloneURL(&x)
	case fmt.Stringer:
		s, err := stringOf(x)
		if err != nil {
			return nil, err
		}
		return parseString(s)
	default:
		return nil, &InvalidURIError{
			URI: fmt.Sprintf("%v", uri),
			Err: fmt.Errorf("unsupported type %T", uri),
		}
	}
	if err := checkAbsolute(u); err != nil {
		return nil, &InvalidURIError{URI: u.String(), Err: err}
	}
	u.Host = removeEmptyPort(u.Host)
	return u, nil
}

// stringOf calls x.String, turning a nil receiver or a panic inside
// String into an *InvalidURIError.
func stringOf(x fmt.Stringer) (s string, err error) {
	if v := reflect.ValueOf(x); isNilable(v.Kind()) && v.IsNil() {
		return "", &InvalidURIError{URI: "<nil>", Err: fmt.Errorf("nil %T", x)}
	}
	defer func() {
		if r := recover(); r != nil {
			err = &InvalidURIError{URI: fmt.Sprintf("%T", x), Err: fmt.Errorf("String panicked: %v", r)}
		}
	}()
	return x.String(), nil
}

func isNilable(k reflect.Kind) bool {
	switch k {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return true
	}
	return false
}

func parseString(s string) (*urlpkg.URL, error) {
	u, err := urlpkg.Parse(s)
	if err != nil {
		return nil, &InvalidURIError{URI: s, Err: err}
	}
	if err = checkAbsolute(u); err != nil {
		return nil, &InvalidURIError{URI: s, Err: err}
	}
	u.Host = removeEmptyPort(u.Host)
	return u, nil
}

func checkAbsolute(u *urlpkg.URL) error {
	if u.Scheme == "" {
		return errors.New("missing scheme")
	}
	if u.Host == "" {
		return errors.New("missing host")
	}
	return nil
}

func cloneURL(u *urlpkg.URL) *urlpkg.URL {
	u2 := new(urlpkg.URL)
	*u2 = *u
	if u.User != nil {
		u2.User = new(urlpkg.Userinfo)
		*u2.User = *u.User
	}
	return u2
}

// hasPort is lifted verbatim from net/http/http.go
//
// Given a string of the form "host", "host:port", or "[ipv6::address]:port",
// return true if the string includes a port.
func hasPort(s string) bool { return strings.LastIndex(s, ":") > strings.LastIndex(s, "]") }

// removeEmptyPort is lifted verbatim from net/http/http.go
//
// removeEmptyPort strips the empty port in ":port" to ""
// as mandated by RFC 3986 Section 6.2.3.
func removeEmptyPort(host string) string {
	if hasPort(host) {
		return strings.TrimSuffix(host, ":")
	}
	return host
}
