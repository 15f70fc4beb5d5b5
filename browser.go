// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package browser

import (
	"context"
	"net/url"
	"strings"

	"github.com/browserkit/browserkit/cookiejar"
	"github.com/browserkit/browserkit/history"
	"github.com/browserkit/browserkit/htmlquery"
	"github.com/browserkit/browserkit/redirect"
	"github.com/browserkit/browserkit/request"
	"github.com/browserkit/browserkit/resolve"
	"github.com/browserkit/browserkit/timeout"
	"github.com/browserkit/browserkit/transport"
)

// A Browser is a headless programmatic browser: it drives an
// HTTP-level dialogue against a remote server while emulating the
// parts of a real browser that matter for integration testing and
// scripted navigation: URL resolution, cookie management, redirect
// following, HTML-triggered navigation, and a back/forward history.
//
// The zero value is a valid, ready-to-use Browser. It uses a
// *transport.HTTPAdapter as its transport, follows 301/302/303/307/308
// redirects up to redirect.DefaultMaxRedirects hops, does not follow
// meta-refresh, applies timeout.DefaultPolicy to every hop, and keeps
// its own cookie jar and history.
//
// A Browser is not safe for concurrent use. One goroutine should own
// and drive a given Browser; if an external Jar or History is
// injected, the same single-goroutine contract extends to them, since
// Browser never synchronizes access on its own.
type Browser struct {
	// Doer sends one hop over the wire. If nil, a *transport.HTTPAdapter
	// is allocated and used.
	Doer transport.Doer
	// Jar stores cookies observed across hops. If nil, an internal Jar
	// is allocated lazily.
	Jar *cookiejar.Jar
	// History stores user-initiated navigation for Back, Forward, and
	// Reload. If nil, an internal History is allocated lazily.
	History *history.History
	// RedirectDecider classifies which responses are worth chasing
	// automatically. If nil, redirect.StatusIn(301, 302, 303, 307, 308)
	// is used, i.e. every conventional redirect status with a
	// Location header.
	RedirectDecider redirect.Decider
	// TimeoutPolicy sets the deadline applied to each dispatched hop.
	// If nil, timeout.DefaultPolicy is used.
	TimeoutPolicy timeout.Policy
	// FilterResponse, if set, transforms every response before it is
	// exposed through GetResponse (GetInternalResponse always returns
	// the verbatim transport reply). Identity by default; this is the
	// browser's only point of polymorphism, replacing what an
	// inheritance-based design would express as a filterResponse
	// method override.
	FilterResponse func(*request.Response) (*request.Response, error)
	// Handlers fires at each plug-in point (see Event) during a
	// navigation. If nil, no handlers run.
	Handlers *HandlerGroup

	serverParams      request.ServerParams
	maxRedirects      *int
	noFollowRedirects bool
	followMetaRefresh bool

	lastRequest   *request.Request
	lastResponse  *request.Response
	lastFiltered  *request.Response
	lastDoc       *htmlquery.Document
	redirectCount int
}

func (b *Browser) init() {
	if b.Jar == nil {
		b.Jar = &cookiejar.Jar{}
	}
	if b.History == nil {
		b.History = history.New()
	}
}

func (b *Browser) resolveMaxRedirects() int {
	if b.maxRedirects != nil {
		return *b.maxRedirects
	}
	return redirect.DefaultMaxRedirects
}

func (b *Browser) resolveDecider() redirect.Decider {
	if b.RedirectDecider != nil {
		return b.RedirectDecider
	}
	return redirect.StatusIn(301, 302, 303, 307, 308)
}

func (b *Browser) resolveTimeoutPolicy() timeout.Policy {
	if b.TimeoutPolicy != nil {
		return b.TimeoutPolicy
	}
	return timeout.DefaultPolicy
}

func (b *Browser) resolveDoer() transport.Doer {
	if b.Doer == nil {
		b.Doer = &transport.HTTPAdapter{}
	}
	return b.Doer
}

func (b *Browser) resolveFilter() func(*request.Response) (*request.Response, error) {
	if b.FilterResponse != nil {
		return b.FilterResponse
	}
	return func(r *request.Response) (*request.Response, error) { return r, nil }
}

// SetMaxRedirects sets the maximum number of redirect (or
// meta-refresh) hops a single navigation may chase; a navigation, or a
// FollowRedirect call, that would chase one more hop than that fails
// with a LogicError. A negative n means
// unbounded. The default, if SetMaxRedirects is never called, is
// redirect.DefaultMaxRedirects.
func (b *Browser) SetMaxRedirects(n int) {
	b.maxRedirects = &n
}

// FollowRedirects enables or disables automatic redirect chasing.
// Disabling it leaves every 30x response for the caller to chase
// explicitly via FollowRedirect. Enabled by default.
func (b *Browser) FollowRedirects(enable bool) {
	b.noFollowRedirects = !enable
}

// FollowMetaRefresh enables or disables automatic meta-refresh
// navigation (see the Document Design discussion of an immediate,
// zero-timeout <meta http-equiv="refresh"> tag). Disabled by default.
func (b *Browser) FollowMetaRefresh(enable bool) {
	b.followMetaRefresh = enable
}

// SetServerParameter stores value under key in the default server
// parameters applied to every subsequent request. It does not affect
// any request already dispatched.
func (b *Browser) SetServerParameter(key string, value interface{}) {
	if b.serverParams == nil {
		b.serverParams = request.DefaultServerParams()
	}
	b.serverParams.Set(key, value)
}

// GetServerParameter returns the string form of the default server
// parameter stored under key, or fallback if it was never explicitly
// set. This distinguishes a user-configured value from a
// default-effective one: HTTP_USER_AGENT, for instance, is applied at
// dispatch time by the transport adapter, not stored here, so
// GetServerParameter("HTTP_USER_AGENT", "") returns "" unless the
// caller has called SetServerParameter("HTTP_USER_AGENT", ...) itself.
func (b *Browser) GetServerParameter(key, fallback string) string {
	if b.serverParams == nil {
		return fallback
	}
	return b.serverParams.GetString(key, fallback)
}

// GetRequest returns the most recently dispatched request (the landing
// request after any redirect chasing, which is not user-initiated when
// a redirect was followed), or nil if no request has been made yet.
func (b *Browser) GetRequest() *request.Request {
	return b.lastRequest
}

// GetResponse returns the most recent response after FilterResponse
// has been applied, or nil if no request has been made yet.
func (b *Browser) GetResponse() *request.Response {
	return b.lastFiltered
}

// GetInternalResponse returns the most recent response exactly as the
// transport adapter produced it, bypassing FilterResponse, or nil if
// no request has been made yet.
func (b *Browser) GetInternalResponse() *request.Response {
	return b.lastResponse
}

// GetCrawler returns the query façade over the most recent response
// body, or nil if no request has been made yet, or the body could not
// be parsed as HTML.
func (b *Browser) GetCrawler() *htmlquery.Document {
	return b.lastDoc
}

// Request resolves uri against the browser's current location (or
// against the default scheme/host if no request has been made yet),
// merges server over the browser's default server parameters for
// this call only, dispatches method to the resolved URI, stores the
// result, pushes a history entry when changeHistory is true, and then
// follows redirects and meta-refresh according to the browser's
// configuration. It returns a query façade over the landing response
// body.
//
// content may be nil, a string, []byte, io.Reader, or io.ReadCloser
// (see request.BodyBytes); when non-nil it is sent verbatim as the
// request body instead of params and files.
func (b *Browser) Request(
	ctx context.Context,
	method, uri string,
	params request.Values,
	files map[string]*request.File,
	server request.ServerParams,
	content interface{},
	changeHistory bool,
) (*htmlquery.Document, error) {
	b.init()

	method = strings.ToUpper(method)
	if !request.ValidMethod(method) {
		return nil, invalidArgumentErrorf("invalid HTTP method %q", method)
	}

	body, err := request.BodyBytes(content)
	if err != nil {
		return nil, invalidArgumentErrorf("%s", err)
	}

	var base *url.URL
	if b.lastRequest != nil {
		base = b.lastRequest.URL
	}
	resolved, err := resolve.Resolve(base, uri)
	if err != nil {
		return nil, err
	}

	merged := b.serverParams.Merge(server)
	return b.navigate(ctx, method, &resolved.URL, params, files, merged, body, changeHistory)
}

// XMLHTTPRequest is identical to Request except that, for this call
// only, it sets HTTP_X_REQUESTED_WITH to "XMLHttpRequest" (the
// conventional signal a server uses to distinguish an Ajax call from a
// full-page navigation). The header is not persisted in the browser's
// default server parameters.
func (b *Browser) XMLHTTPRequest(
	ctx context.Context,
	method, uri string,
	params request.Values,
	files map[string]*request.File,
	server request.ServerParams,
	content interface{},
) (*htmlquery.Document, error) {
	server = server.Clone()
	server.Set(request.KeyRequestedWith, request.ValueXMLHTTPRequest)
	return b.Request(ctx, method, uri, params, files, server, content, true)
}
