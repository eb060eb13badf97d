// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cookie

import (
	"net/http"
	"sync"
)

// A Jar is a concurrency-safe, in-memory collection of cookies keyed
// by identity. Its zero value is an empty jar ready to use.
//
// Cookies are kept in insertion order. Replacing a cookie keeps the
// position of the entry it replaces, so the encoded Cookie header is
// stable across repeated merges of the same Set-Cookie headers.
//
// A Jar must not be copied after first use.
type Jar struct {
	mu      sync.RWMutex
	index   map[Key]int
	cookies []*http.Cookie
}

// NewJar returns an empty jar.
func NewJar() *Jar {
	return &Jar{}
}

// AddOriginal stores c as authoritative, replacing any cookie with the
// same identity. A copy of c is stored, so later changes to c do not
// affect the jar. A nil cookie is ignored.
func (j *Jar) AddOriginal(c *http.Cookie) {
	if c == nil {
		return
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	j.add(c)
}

// AddAll stores every cookie in cs as if by AddOriginal, under a single
// acquisition of the write lock. Readers observe either none or all of
// the cookies.
func (j *Jar) AddAll(cs []*http.Cookie) {
	if len(cs) == 0 {
		return
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	for _, c := range cs {
		if c != nil {
			j.add(c)
		}
	}
}

// Merge parses each Set-Cookie header value in lines and stores the
// results with AddAll. Parsing happens before the write lock is taken.
// If any line fails to parse, a *ParseError is returned and the jar is
// left untouched.
//
// Merge returns the number of cookies stored.
func (j *Jar) Merge(lines []string) (int, error) {
	cs, err := ParseAll(lines)
	if err != nil {
		return 0, err
	}
	j.AddAll(cs)
	return len(cs), nil
}

// Header encodes every stored cookie with Encode, under the read lock,
// and returns the value together with the number of cookies encoded.
// An empty jar yields "", 0 and no error. If any cookie fails Valid, or
// the encoded value is not a valid header field value, an
// *EncodingError is returned.
func (j *Jar) Header() (string, int, error) {
	j.mu.RLock()
	n := len(j.cookies)
	v := Encode(j.cookies)
	ok := true
	for _, c := range j.cookies {
		if !Valid(c) {
			ok = false
			break
		}
	}
	j.mu.RUnlock()

	if n == 0 {
		return "", 0, nil
	}
	if !ok {
		return "", 0, &EncodingError{Value: v}
	}
	if err := ValidateHeader(v); err != nil {
		return "", 0, err
	}
	return v, n, nil
}

// Get returns a copy of the cookie with the given identity, or nil if
// there is none.
func (j *Jar) Get(k Key) *http.Cookie {
	j.mu.RLock()
	defer j.mu.RUnlock()
	i, ok := j.index[k]
	if !ok {
		return nil
	}
	return clone(j.cookies[i])
}

// Cookies returns copies of all stored cookies in insertion order.
func (j *Jar) Cookies() []*http.Cookie {
	j.mu.RLock()
	defer j.mu.RUnlock()
	cs := make([]*http.Cookie, len(j.cookies))
	for i, c := range j.cookies {
		cs[i] = clone(c)
	}
	return cs
}

// Len returns the number of stored cookies.
func (j *Jar) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.cookies)
}

// Remove deletes the cookie with the given identity and reports
// whether there was one.
func (j *Jar) Remove(k Key) bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	i, ok := j.index[k]
	if !ok {
		return false
	}
	j.cookies = append(j.cookies[:i], j.cookies[i+1:]...)
	delete(j.index, k)
	for ; i < len(j.cookies); i++ {
		j.index[KeyOf(j.cookies[i])] = i
	}
	return true
}

// Clear removes all cookies.
func (j *Jar) Clear() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.cookies = nil
	j.index = nil
}

// add must be called with the write lock held.
func (j *Jar) add(c *http.Cookie) {
	if j.index == nil {
		j.index = make(map[Key]int)
	}
	c = clone(c)
	k := KeyOf(c)
	if i, ok := j.index[k]; ok {
		j.cookies[i] = c
		return
	}
	j.index[k] = len(j.cookies)
	j.cookies = append(j.cookies, c)
}

func clone(c *http.Cookie) *http.Cookie {
	c2 := new(http.Cookie)
	*c2 = *c
	if c.Unparsed != nil {
		c2.Unparsed = append([]string(nil), c.Unparsed...)
	}
	return c2
}
