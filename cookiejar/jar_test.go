// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cookiejar

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustURL(t *testing.T, raw string) *url.URL {
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestJar_UpdateFromSetCookie_HostOnlyAndDefaultPath(t *testing.T) {
	var j Jar
	u := mustURL(t, "http://www.example.com/foo/bar")
	j.UpdateFromSetCookie([]string{"session=abc123"}, u)

	values := j.AllValues(u)
	assert.Equal(t, "abc123", values["session"])

	// A sibling path under the same directory still matches.
	sibling := mustURL(t, "http://www.example.com/foo/baz")
	assert.Equal(t, "abc123", j.AllValues(sibling)["session"])

	// A different directory does not match.
	other := mustURL(t, "http://www.example.com/other")
	assert.Empty(t, j.AllValues(other))

	// A different host does not match a host-only cookie.
	otherHost := mustURL(t, "http://other.example.com/foo/bar")
	assert.Empty(t, j.AllValues(otherHost))
}

func TestJar_SecureCookieNotSentOverHTTP(t *testing.T) {
	var j Jar
	httpsURI := mustURL(t, "https://example.com/")
	j.UpdateFromSetCookie([]string{"foo=bar; secure"}, httpsURI)

	assert.Equal(t, "bar", j.AllValues(httpsURI)["foo"])
	httpURI := mustURL(t, "http://example.com/")
	assert.Empty(t, j.AllValues(httpURI))
}

func TestJar_ExpiredCookieOmitted(t *testing.T) {
	var j Jar
	u := mustURL(t, "http://example.com/")
	j.UpdateFromSetCookie([]string{"stale=1; Expires=Mon, 01 Jan 2001 00:00:00 GMT"}, u)
	assert.Empty(t, j.AllValues(u))
}

func TestJar_MalformedCookieIgnoredSilently(t *testing.T) {
	var j Jar
	u := mustURL(t, "http://example.com/")
	j.UpdateFromSetCookie([]string{"", "   ", "=novalue"}, u)
	assert.Empty(t, j.All())
}

func TestJar_SetOverwritesByNamePathDomain(t *testing.T) {
	var j Jar
	j.Set(&Cookie{Name: "a", Value: "1", RawValue: "1", Domain: "x.com", Path: "/"})
	j.Set(&Cookie{Name: "a", Value: "2", RawValue: "2", Domain: "x.com", Path: "/"})
	require.Len(t, j.All(), 1)
	assert.Equal(t, "2", j.All()[0].Value)
}

func TestJar_ExpireAndClear(t *testing.T) {
	var j Jar
	j.Set(&Cookie{Name: "a", Domain: "x.com", Path: "/"})
	j.Set(&Cookie{Name: "b", Domain: "x.com", Path: "/"})
	j.Expire("a", "", "")
	require.Len(t, j.All(), 1)
	j.Clear()
	assert.Empty(t, j.All())
}

func TestJar_RawValuePreservesEncoding(t *testing.T) {
	var j Jar
	u := mustURL(t, "http://example.com/")
	j.UpdateFromSetCookie([]string{"tok=a%20b"}, u)
	assert.Equal(t, "a b", j.AllValues(u)["tok"])
	assert.Equal(t, "a%20b", j.AllRawValues(u)["tok"])
}

func TestJar_PublicSuffixDomainRejected(t *testing.T) {
	var j Jar
	u := mustURL(t, "http://www.example.com/")
	j.UpdateFromSetCookie([]string{"a=1; Domain=com"}, u)
	assert.Empty(t, j.All())
}

func TestDomainMatches(t *testing.T) {
	assert.True(t, domainMatches("www.example.com", "example.com"))
	assert.True(t, domainMatches("example.com", "example.com"))
	assert.False(t, domainMatches("notexample.com", "example.com"))
	assert.False(t, domainMatches("example.com", "www.example.com"))
}

func TestPathMatches(t *testing.T) {
	assert.True(t, pathMatches("/foo/bar", "/foo"))
	assert.True(t, pathMatches("/foo", "/foo"))
	assert.True(t, pathMatches("/foo/bar", "/foo/"))
	assert.False(t, pathMatches("/foobar", "/foo"))
}
