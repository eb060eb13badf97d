// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"errors"
	"io"
	urlpkg "net/url"
)

const badBodyTypeMsg = "httpc/request: invalid type (for body use nil, " +
	"string, []byte, url.Values, io.Reader or io.ReadCloser)"

// BodyBytes converts a generic body parameter to a byte slice for use
// as a request body.
//
// The body parameter may be nil, or it may be a string, []byte,
// url.Values, io.Reader, or io.ReadCloser:
//
// • nil yields a nil byte slice;
//
// • a []byte is returned as is, and a string is converted;
//
// • url.Values is form-encoded with its Encode method;
//
// • an io.Reader is read to the end, and closed afterwards if it is
// also an io.Closer. A read or close failure yields a nil slice and
// the error.
//
// Any other type is an error.
func BodyBytes(body interface{}) ([]byte, error) {
	switch x := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return x, nil
	case string:
		return []byte(x), nil
	case urlpkg.Values:
		return []byte(x.Encode()), nil
	case io.Reader:
		b, err := io.ReadAll(x)
		if err != nil {
			return nil, err
		}
		if c, ok := x.(io.Closer); ok {
			if err = c.Close(); err != nil {
				return nil, err
			}
		}
		return b, nil
	default:
		return nil, errors.New(badBodyTypeMsg)
	}
}
