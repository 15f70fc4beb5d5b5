// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package redirect

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/browserkit/browserkit/request"
	"github.com/stretchr/testify/assert"
)

func hopWith(status int, location string) *request.Hop {
	h := http.Header{}
	if location != "" {
		h.Set("Location", location)
	}
	return &request.Hop{
		Request:  &request.Request{URL: &url.URL{Scheme: "http", Host: "x"}},
		Response: &request.Response{Status: status, Header: h},
	}
}

func TestStatusIn(t *testing.T) {
	d := StatusIn(301, 302)
	assert.True(t, d.Decide(hopWith(302, "/x")))
	assert.False(t, d.Decide(hopWith(200, "/x")), "non-redirect status")
	assert.False(t, d.Decide(hopWith(302, "")), "missing Location")
}

func TestTimes(t *testing.T) {
	d := Times(2)
	assert.True(t, d.Decide(&request.Hop{RedirectCount: 0}))
	assert.True(t, d.Decide(&request.Hop{RedirectCount: 1}))
	assert.False(t, d.Decide(&request.Hop{RedirectCount: 2}))
}

func TestTimes_UnboundedWhenNegative(t *testing.T) {
	d := Times(-1)
	assert.True(t, d.Decide(&request.Hop{RedirectCount: 1000}))
}

func TestDeciderFunc_AndOr(t *testing.T) {
	always := DeciderFunc(func(*request.Hop) bool { return true })
	never := DeciderFunc(func(*request.Hop) bool { return false })
	assert.True(t, always.And(always).Decide(nil))
	assert.False(t, always.And(never).Decide(nil))
	assert.True(t, never.Or(always).Decide(nil))
	assert.False(t, never.Or(never).Decide(nil))
}
