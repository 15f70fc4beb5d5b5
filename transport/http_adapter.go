// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/browserkit/browserkit/request"
	"github.com/browserkit/browserkit/transient"
)

// HTTPAdapter is the default Doer, sending one request.Request over
// the network using an underlying *http.Client and folding the result
// back into a request.Response.
//
// The zero value is ready to use: it allocates a *http.Client on first
// Do call with redirects disabled, since the browser core is the only
// layer that decides whether to chase a 30x response.
type HTTPAdapter struct {
	// Client is the underlying HTTP client. If nil, Do lazily
	// constructs one with CheckRedirect disabled.
	Client *http.Client

	// Logger, if non-nil, receives one debug line per attempt and one
	// warn line per transport failure, categorized via
	// transient.Categorize.
	Logger *zerolog.Logger
}

func (a *HTTPAdapter) client() *http.Client {
	if a.Client != nil {
		return a.Client
	}
	a.Client = &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	return a.Client
}

// Do implements Doer.
func (a *HTTPAdapter) Do(ctx context.Context, r *request.Request) (*request.Response, error) {
	body, contentType, err := buildBody(r)
	if err != nil {
		return nil, fmt.Errorf("transport: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, r.Method, r.URL.String(), body)
	if err != nil {
		return nil, err
	}
	foldHeaders(httpReq, r, contentType)

	if a.Logger != nil {
		a.Logger.Debug().Str("method", r.Method).Stringer("url", r.URL).Msg("dispatching request")
	}

	resp, err := a.client().Do(httpReq)
	if err != nil {
		if a.Logger != nil {
			cat := transient.Categorize(err)
			a.Logger.Warn().Err(err).Str("category", cat.String()).Stringer("url", r.URL).Msg("transport failure")
		}
		return nil, err
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("transport: reading response body: %w", err)
	}

	return &request.Response{
		Content: content,
		Status:  resp.StatusCode,
		Header:  resp.Header,
	}, nil
}

// foldHeaders builds the outgoing request's headers from r.Server and
// r.Cookies per the folding rules: HTTP_* keys are stripped of their
// prefix, lowercased, and have underscores replaced with hyphens;
// CONTENT_TYPE, CONTENT_LENGTH, and CONTENT_MD5 are folded directly;
// PHP_AUTH_USER/PHP_AUTH_PW become HTTP Basic auth; and the cookie jar
// contributes a single Cookie header.
func foldHeaders(httpReq *http.Request, r *request.Request, contentType string) {
	for key := range r.Server {
		s := r.Server.GetString(key, "")
		switch key {
		case request.KeyHTTPS, request.KeyAuthUser, request.KeyAuthPassword:
			continue
		case request.KeyContentType, request.KeyContentLength, request.KeyContentMD5:
			httpReq.Header.Set(foldContentKey(key), s)
		default:
			if strings.HasPrefix(key, "HTTP_") {
				httpReq.Header.Set(foldHTTPKey(key), s)
			}
		}
	}

	if user, ok := r.Server.Get(request.KeyAuthUser); ok {
		pass := r.Server.GetString(request.KeyAuthPassword, "")
		httpReq.SetBasicAuth(fmt.Sprint(user), pass)
	}

	if contentType != "" && httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	if httpReq.Header.Get("User-Agent") == "" {
		httpReq.Header.Set("User-Agent", request.DefaultUserAgent)
	}

	if len(r.Cookies) > 0 {
		pairs := make([]string, 0, len(r.Cookies))
		for name, val := range r.Cookies {
			pairs = append(pairs, (&http.Cookie{Name: name, Value: val}).String())
		}
		httpReq.Header.Set("Cookie", strings.Join(pairs, "; "))
	}
}

func foldContentKey(key string) string {
	switch key {
	case request.KeyContentType:
		return "Content-Type"
	case request.KeyContentLength:
		return "Content-Length"
	case request.KeyContentMD5:
		return "Content-MD5"
	default:
		return key
	}
}

func foldHTTPKey(key string) string {
	trimmed := strings.TrimPrefix(key, "HTTP_")
	parts := strings.Split(strings.ToLower(trimmed), "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, "-")
}

// buildBody constructs the outgoing request body: multipart/form-data
// when r.Files is non-empty, url-encoded form when only r.Parameters
// is set, raw bytes when r.Content is set, and no body at all for
// GET/HEAD.
func buildBody(r *request.Request) (io.Reader, string, error) {
	method := strings.ToUpper(r.Method)
	if method == "GET" || method == "HEAD" {
		return nil, "", nil
	}

	if r.Content != nil {
		return bytes.NewReader(r.Content), "", nil
	}

	if len(r.Files) > 0 {
		return buildMultipartBody(r)
	}

	if len(r.Parameters) > 0 {
		values := flattenParams(r.Parameters)
		return strings.NewReader(values.Encode()), "application/x-www-form-urlencoded", nil
	}

	return nil, "", nil
}

func buildMultipartBody(r *request.Request) (io.Reader, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	values := flattenParams(r.Parameters)
	for _, key := range sortedKeys(values) {
		for _, v := range values[key] {
			if err := w.WriteField(key, v); err != nil {
				return nil, "", err
			}
		}
	}

	names := make([]string, 0, len(r.Files))
	for name := range r.Files {
		names = append(names, name)
	}
	for _, name := range sortFiles(names) {
		f := r.Files[name]
		part, err := w.CreateFormFile(name, f.ClientName)
		if err != nil {
			return nil, "", err
		}
		content, err := fileContent(f)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(content); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

func fileContent(f *request.File) ([]byte, error) {
	if f.Content != nil {
		return f.Content, nil
	}
	if f.TmpPath == "" {
		return nil, fmt.Errorf("file %q has neither Content nor TmpPath set", f.ClientName)
	}
	return readFile(f.TmpPath)
}

func sortFiles(names []string) []string {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j-1] > names[j]; j-- {
			names[j-1], names[j] = names[j], names[j-1]
		}
	}
	return names
}

func readFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}
