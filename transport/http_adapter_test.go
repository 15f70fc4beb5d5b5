// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/browserkit/browserkit/request"
)

func newGetRequest(t *testing.T, rawURL string) *request.Request {
	u, err := url.Parse(rawURL)
	require.NoError(t, err)
	return &request.Request{
		Method: "GET",
		URL:    u,
		Server: request.DefaultServerParams(),
	}
}

func TestHTTPAdapter_Do_SimpleGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/hello", r.URL.Path)
		w.Header().Set("X-Test", "yes")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("hi there"))
	}))
	defer srv.Close()

	a := &HTTPAdapter{}
	resp, err := a.Do(context.Background(), newGetRequest(t, srv.URL+"/hello"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, "hi there", string(resp.Content))
	assert.Equal(t, "yes", resp.Header.Get("X-Test"))
}

func TestHTTPAdapter_Do_FoldsHTTPHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "en-US", r.Header.Get("Accept-Language"))
		assert.Equal(t, "example.com", r.Header.Get("X-Forwarded-Host"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	r := newGetRequest(t, srv.URL+"/")
	r.Server.Set("HTTP_ACCEPT_LANGUAGE", "en-US")
	r.Server.Set("HTTP_X_FORWARDED_HOST", "example.com")

	a := &HTTPAdapter{}
	_, err := a.Do(context.Background(), r)
	require.NoError(t, err)
}

func TestHTTPAdapter_Do_DoesNotFollowRedirects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/target", http.StatusFound)
	}))
	defer srv.Close()

	a := &HTTPAdapter{}
	resp, err := a.Do(context.Background(), newGetRequest(t, srv.URL+"/"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.Status)
	loc, ok := resp.Location()
	require.True(t, ok)
	assert.Equal(t, "/target", loc)
}

func TestHTTPAdapter_Do_BasicAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "alice", user)
		assert.Equal(t, "secret", pass)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	r := newGetRequest(t, srv.URL+"/")
	r.Server.Set(request.KeyAuthUser, "alice")
	r.Server.Set(request.KeyAuthPassword, "secret")

	a := &HTTPAdapter{}
	_, err := a.Do(context.Background(), r)
	require.NoError(t, err)
}

func TestHTTPAdapter_Do_CookieHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie("session")
		require.NoError(t, err)
		assert.Equal(t, "abc123", c.Value)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	r := newGetRequest(t, srv.URL+"/")
	r.Cookies = map[string]string{"session": "abc123"}

	a := &HTTPAdapter{}
	_, err := a.Do(context.Background(), r)
	require.NoError(t, err)
}

func TestHTTPAdapter_Do_URLEncodedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		values, err := url.ParseQuery(string(body))
		require.NoError(t, err)
		assert.Equal(t, "bob", values.Get("name"))
		assert.Equal(t, "nyc", values.Get("address[city]"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	u, err := url.Parse(srv.URL + "/submit")
	require.NoError(t, err)
	r := &request.Request{
		Method: "POST",
		URL:    u,
		Server: request.DefaultServerParams(),
		Parameters: request.Values{
			"name": "bob",
			"address": request.Values{
				"city": "nyc",
			},
		},
	}

	a := &HTTPAdapter{}
	_, err = a.Do(context.Background(), r)
	require.NoError(t, err)
}

func TestHTTPAdapter_Do_MultipartBodyWithFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "bob", r.FormValue("name"))
		f, hdr, err := r.FormFile("avatar")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "avatar.png", hdr.Filename)
		content, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, "PNGDATA", string(content))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	u, err := url.Parse(srv.URL + "/upload")
	require.NoError(t, err)
	r := &request.Request{
		Method:     "POST",
		URL:        u,
		Server:     request.DefaultServerParams(),
		Parameters: request.Values{"name": "bob"},
		Files: map[string]*request.File{
			"avatar": {ClientName: "avatar.png", Content: []byte("PNGDATA")},
		},
	}

	a := &HTTPAdapter{}
	_, err = a.Do(context.Background(), r)
	require.NoError(t, err)
}

func TestHTTPAdapter_Do_RawContentBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, string(body))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	u, err := url.Parse(srv.URL + "/json")
	require.NoError(t, err)
	r := &request.Request{
		Method:  "POST",
		URL:     u,
		Server:  request.DefaultServerParams(),
		Content: []byte(`{"a":1}`),
	}
	r.Server.Set(request.KeyContentType, "application/json")

	a := &HTTPAdapter{}
	resp, err := a.Do(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
}

func TestHTTPAdapter_Do_LogsDispatchDebugLine(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	a := &HTTPAdapter{Logger: &logger}
	_, err := a.Do(context.Background(), newGetRequest(t, srv.URL+"/hello"))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "dispatching request")
	assert.Contains(t, buf.String(), srv.URL+"/hello")
}

func TestHTTPAdapter_Do_LogsTransportFailureCategory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close() // nothing listens on addr now, so Do fails with ECONNREFUSED

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	a := &HTTPAdapter{Logger: &logger}
	_, err := a.Do(context.Background(), newGetRequest(t, addr))
	require.Error(t, err)

	logged := buf.String()
	assert.Contains(t, logged, "transport failure")
	assert.Contains(t, logged, "conn-refused")
}

func TestHTTPAdapter_Do_GetHasNoBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Empty(t, body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := &HTTPAdapter{}
	_, err := a.Do(context.Background(), newGetRequest(t, srv.URL+"/"))
	require.NoError(t, err)
}
