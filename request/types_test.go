// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValues_Clone_NilReceiver(t *testing.T) {
	var v Values
	clone := v.Clone()
	assert.NotNil(t, clone)
	assert.Empty(t, clone)
}

func TestValues_Clone_IsShallowCopy(t *testing.T) {
	v := Values{"a": "1"}
	clone := v.Clone()
	clone["a"] = "2"
	assert.Equal(t, "1", v["a"])
}

func TestRequest_Clone_IndependentOfOriginal(t *testing.T) {
	u, _ := url.Parse("http://example.com/foo")
	r := &Request{
		Method:     "GET",
		URL:        u,
		Parameters: Values{"a": "1"},
		Files:      map[string]*File{"f": {ClientName: "x"}},
		Server:     ServerParams{"HTTPS": true},
		Cookies:    map[string]string{"c": "v"},
	}
	clone := r.Clone()

	clone.Parameters["a"] = "2"
	clone.Server.Set("HTTPS", false)
	clone.Cookies["c"] = "changed"
	clone.URL.Path = "/bar"

	assert.Equal(t, "1", r.Parameters["a"])
	assert.Equal(t, true, r.Server["HTTPS"])
	assert.Equal(t, "v", r.Cookies["c"])
	assert.Equal(t, "/foo", r.URL.Path)
}

func TestRequest_Clone_NilReceiver(t *testing.T) {
	var r *Request
	assert.Nil(t, r.Clone())
}

func TestResponse_Location(t *testing.T) {
	resp := &Response{Header: http.Header{"Location": {"/next"}}}
	loc, ok := resp.Location()
	assert.True(t, ok)
	assert.Equal(t, "/next", loc)

	empty := &Response{Header: http.Header{}}
	_, ok = empty.Location()
	assert.False(t, ok)
}

func TestResponse_Location_NilReceiver(t *testing.T) {
	var resp *Response
	_, ok := resp.Location()
	assert.False(t, ok)
}

func TestResponse_IsRedirect(t *testing.T) {
	for _, status := range []int{301, 302, 303, 307, 308} {
		assert.True(t, (&Response{Status: status}).IsRedirect(), "status %d", status)
	}
	for _, status := range []int{200, 404, 500, 304} {
		assert.False(t, (&Response{Status: status}).IsRedirect(), "status %d", status)
	}
}

func TestResponse_IsRedirect_NilReceiver(t *testing.T) {
	var resp *Response
	assert.False(t, resp.IsRedirect())
}

func TestRequest_String(t *testing.T) {
	u, _ := url.Parse("http://example.com/foo")
	r := &Request{Method: "GET", URL: u}
	assert.Equal(t, "GET http://example.com/foo", r.String())

	var nilReq *Request
	assert.Equal(t, "<nil>", nilReq.String())
}
