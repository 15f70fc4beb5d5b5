// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cookiejar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSetCookie_Attributes(t *testing.T) {
	u := mustURL(t, "https://www.example.com/app/")
	c, err := ParseSetCookie("foo=bar; Path=/app; Secure; HttpOnly; SameSite=Strict", u)
	require.NoError(t, err)
	assert.Equal(t, "foo", c.Name)
	assert.Equal(t, "bar", c.Value)
	assert.Equal(t, "/app", c.Path)
	assert.True(t, c.Secure)
	assert.True(t, c.HTTPOnly)
	assert.Equal(t, SameSiteStrict, c.SameSite)
	assert.Nil(t, c.Expires)
}

func TestParseSetCookie_DefaultsFromRequestURI(t *testing.T) {
	u := mustURL(t, "https://www.example.com/app/page")
	c, err := ParseSetCookie("foo=bar", u)
	require.NoError(t, err)
	assert.Equal(t, "www.example.com", c.Domain)
	assert.Equal(t, "/app", c.Path)
}

func TestParseSetCookie_ExplicitDomainStripsLeadingDot(t *testing.T) {
	u := mustURL(t, "https://www.example.com/")
	c, err := ParseSetCookie("foo=bar; Domain=.example.com", u)
	require.NoError(t, err)
	assert.Equal(t, "example.com", c.Domain)
}

func TestParseSetCookie_MaxAgeSetsExpiry(t *testing.T) {
	u := mustURL(t, "http://example.com/")
	c, err := ParseSetCookie("foo=bar; Max-Age=3600", u)
	require.NoError(t, err)
	require.NotNil(t, c.Expires)
}

func TestParseSetCookie_Malformed(t *testing.T) {
	u := mustURL(t, "http://example.com/")
	_, err := ParseSetCookie("; Path=/", u)
	assert.Error(t, err)
}

func TestParseSetCookie_ExpiresRFC1123(t *testing.T) {
	u := mustURL(t, "http://example.com/")
	c, err := ParseSetCookie("foo=bar; Expires=Wed, 21 Oct 2099 07:28:00 GMT", u)
	require.NoError(t, err)
	require.NotNil(t, c.Expires)
	assert.Equal(t, 2099, c.Expires.Year())
}
