// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package cookie provides the in-memory cookie jar used by an httpc
client, together with the encoding of the outgoing Cookie header and the
parsing of incoming Set-Cookie headers.

A Jar maps cookie identity, the (name, domain, path) triple, to the most
recently stored cookie with that identity. Storing is "original"
insertion: the cookie is treated as authoritative, exactly as received,
and no client-side domain or path restrictions are applied.

	jar := &cookie.Jar{}
	jar.AddOriginal(&http.Cookie{Name: "id", Value: "42"})
	v, n, err := jar.Header() // "id=42", 1, nil

A Jar is safe for concurrent use. Reads (Header, Get, Cookies, Len)
proceed in parallel; writes (AddOriginal, Merge, Remove, Clear) are
exclusive. No method blocks on anything but the jar's own lock.
*/
package cookie
