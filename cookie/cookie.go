// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cookie

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/http/httpguts"
)

// Separator joins the name=value pairs of the outgoing Cookie header.
const Separator = ";"

var (
	// ErrParse is the sentinel error wrapped by every ParseError.
	ErrParse = errors.New("httpc/cookie: cannot parse set-cookie header")
	// ErrHeaderEncoding is the sentinel error wrapped by every
	// EncodingError.
	ErrHeaderEncoding = errors.New("httpc/cookie: cookie header is not a valid header value")

	errNotText = errors.New("not valid UTF-8 text")
)

// A ParseError is returned when a Set-Cookie header value is not valid
// text or does not follow the cookie grammar.
type ParseError struct {
	// Line is the offending Set-Cookie header value.
	Line string
	// Err is the underlying cause.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v %q: %v", ErrParse, e.Line, e.Err)
}

// Unwrap returns ErrParse and the underlying cause.
func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// An EncodingError is returned when the Cookie header built from the
// jar cannot be placed on the wire.
type EncodingError struct {
	// Value is the rejected header value.
	Value string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%v: %q", ErrHeaderEncoding, e.Value)
}

func (e *EncodingError) Unwrap() error {
	return ErrHeaderEncoding
}

// A Key is the storage identity of a cookie. Two cookies with the same
// Key cannot coexist in a Jar.
type Key struct {
	Name   string
	Domain string
	Path   string
}

// KeyOf returns the identity of c.
func KeyOf(c *http.Cookie) Key {
	return Key{Name: c.Name, Domain: c.Domain, Path: c.Path}
}

// String returns the key in name;domain;path form, for logging.
func (k Key) String() string {
	return k.Name + ";" + k.Domain + ";" + k.Path
}

// Parse parses one Set-Cookie header value.
//
// The value must be valid UTF-8 and must satisfy the cookie grammar as
// implemented by http.ParseSetCookie. Any failure is reported as a
// *ParseError.
func Parse(line string) (*http.Cookie, error) {
	if !utf8.ValidString(line) {
		return nil, &ParseError{Line: line, Err: errNotText}
	}
	c, err := http.ParseSetCookie(line)
	if err != nil {
		return nil, &ParseError{Line: line, Err: err}
	}
	return c, nil
}

// ParseAll parses every line with Parse and fails on the first error,
// in which case no cookies are returned.
func ParseAll(lines []string) ([]*http.Cookie, error) {
	if len(lines) == 0 {
		return nil, nil
	}
	cs := make([]*http.Cookie, 0, len(lines))
	for _, line := range lines {
		c, err := Parse(line)
		if err != nil {
			return nil, err
		}
		cs = append(cs, c)
	}
	return cs, nil
}

// Encode renders cookies as name=value pairs joined by Separator, with
// no space after the separator. A value that arrived quoted is quoted
// again. Attributes are never encoded.
func Encode(cookies []*http.Cookie) string {
	var b strings.Builder
	for i, c := range cookies {
		if i > 0 {
			b.WriteString(Separator)
		}
		b.WriteString(c.Name)
		b.WriteByte('=')
		if c.Quoted {
			b.WriteByte('"')
			b.WriteString(c.Value)
			b.WriteByte('"')
		} else {
			b.WriteString(c.Value)
		}
	}
	return b.String()
}

// Valid reports whether c can be encoded into a Cookie header without
// corrupting it: the name must be a non-empty token and the value must
// not contain a quote, backslash, semicolon or control character.
func Valid(c *http.Cookie) bool {
	if c.Name == "" {
		return false
	}
	for _, r := range c.Name {
		if !httpguts.IsTokenRune(r) {
			return false
		}
	}
	for i := 0; i < len(c.Value); i++ {
		if b := c.Value[i]; b < 0x20 || b >= 0x7f || b == '"' || b == ';' || b == '\\' {
			return false
		}
	}
	return true
}

// ValidateHeader reports an *EncodingError if v cannot be sent as an
// HTTP header field value.
func ValidateHeader(v string) error {
	if !utf8.ValidString(v) || !httpguts.ValidHeaderFieldValue(v) {
		return &EncodingError{Value: v}
	}
	return nil
}
