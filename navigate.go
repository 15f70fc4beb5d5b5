// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package browser

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/browserkit/browserkit/cookiejar"
	"github.com/browserkit/browserkit/history"
	"github.com/browserkit/browserkit/htmlquery"
	"github.com/browserkit/browserkit/redirect"
	"github.com/browserkit/browserkit/request"
	"github.com/browserkit/browserkit/resolve"
)

// navigate runs the full redirect/meta-refresh loop for one
// user-initiated call: dispatch the first hop, push a history entry
// for it if changeHistory, then keep chasing chained hops (with
// changeHistory effectively false) until the loop settles, errors, or
// exceeds the redirect budget.
func (b *Browser) navigate(
	ctx context.Context,
	method string,
	target *url.URL,
	params request.Values,
	files map[string]*request.File,
	server request.ServerParams,
	content []byte,
	changeHistory bool,
) (*htmlquery.Document, error) {
	decider := b.resolveDecider()
	maxRedirects := b.resolveMaxRedirects()

	req := b.buildRequest(method, target, params, files, server, content)
	b.Handlers.run(BeforeNavigate, &request.Hop{Request: req})

	redirectCount := 0
	var lastHop *request.Hop
	for {
		hop, err := b.dispatchHop(ctx, req, redirectCount, redirectCount > 0)
		lastHop = hop
		if err != nil {
			b.Handlers.run(AfterNavigate, hop)
			return nil, err
		}

		if redirectCount == 0 && changeHistory {
			b.History.Push(history.NewEntry(req))
		}

		next, nerr := b.nextHop(hop, decider, maxRedirects)
		if nerr != nil {
			b.Handlers.run(AfterNavigate, hop)
			return nil, nerr
		}
		if next == nil {
			break
		}
		b.Handlers.run(BeforeRedirect, hop)
		req = next.Request
		redirectCount = next.RedirectCount
	}

	b.redirectCount = redirectCount
	b.Handlers.run(AfterNavigate, lastHop)
	return b.lastDoc, nil
}

// dispatchHop sends one hop and, on success, updates the browser's
// jar, last-request/response slots, and parsed document. On a
// transport failure it leaves all of that state untouched: a transport
// error never mutates the jar or the last-successful request/response.
// If FilterResponse fails, the jar and the last request and internal
// response are already updated, while the filtered response and the
// parsed document still hold the previous hop's values.
func (b *Browser) dispatchHop(ctx context.Context, req *request.Request, redirectCount int, chained bool) (*request.Hop, error) {
	hop := &request.Hop{Request: req, RedirectCount: redirectCount, Chained: chained}

	timeoutPolicy := b.resolveTimeoutPolicy()
	doer := b.resolveDoer()

	hop.Start = time.Now()
	b.Handlers.run(BeforeDispatch, hop)

	dctx, cancel := context.WithTimeout(ctx, timeoutPolicy.Timeout(hop))
	resp, err := doer.Do(dctx, req)
	cancel()

	hop.End = time.Now()
	hop.Response = resp
	hop.Err = err
	b.Handlers.run(AfterDispatch, hop)

	if err != nil {
		return hop, err
	}

	b.Jar.UpdateFromSetCookie(resp.Header["Set-Cookie"], req.URL)
	b.lastRequest = req
	b.lastResponse = resp

	filtered, ferr := b.resolveFilter()(resp)
	if ferr != nil {
		return hop, ferr
	}
	b.lastFiltered = filtered

	if doc, derr := htmlquery.Parse(filtered.Content, filtered.Header.Get("Content-Type"), req.URL); derr == nil {
		b.lastDoc = doc
	} else {
		b.lastDoc = nil
	}

	return hop, nil
}

// nextHop decides whether hop's response should trigger another,
// automatically-chased hop: either a conventional 30x redirect, or,
// failing that, an immediate meta-refresh. It returns (nil, nil) when
// there is nothing more to chase, and a non-nil error when the
// redirect budget has been exceeded or the Location/target could not
// be resolved.
func (b *Browser) nextHop(hop *request.Hop, decider redirect.Decider, maxRedirects int) (*request.Hop, error) {
	policy := redirect.Policy{Decider: decider, MaxRedirects: maxRedirects}

	if !b.noFollowRedirects && policy.ShouldChase(hop) {
		if policy.ExceedsBudget(hop) {
			return nil, logicErrorf("exceeded maximum of %d redirects", maxRedirects)
		}
		loc, _ := hop.Response.Location()
		resolved, err := resolve.Resolve(hop.Request.URL, loc)
		if err != nil {
			return nil, err
		}
		nextMethod, params, files, content := demoteIfNeeded(hop)
		req := b.buildRequest(nextMethod, &resolved.URL, params, files, hop.Request.Server.Clone(), content)
		return &request.Hop{Request: req, RedirectCount: hop.RedirectCount + 1, Chained: true}, nil
	}

	if b.followMetaRefresh && isSuccessHTML(hop.Response) {
		doc, err := htmlquery.Parse(hop.Response.Content, hop.Response.Header.Get("Content-Type"), hop.Request.URL)
		if err == nil {
			if target, ok := doc.MetaRefresh(); ok {
				budget := redirect.Policy{MaxRedirects: maxRedirects}
				if budget.ExceedsBudget(hop) {
					return nil, logicErrorf("exceeded maximum of %d redirects", maxRedirects)
				}
				req := b.buildRequest("GET", target, nil, nil, hop.Request.Server.Clone(), nil)
				return &request.Hop{Request: req, RedirectCount: hop.RedirectCount + 1, Chained: true}, nil
			}
		}
	}

	return nil, nil
}

// demoteIfNeeded implements the redirect algorithm's method/body step:
// a 301, 302, or 303 response to a POST/PUT/DELETE/PATCH request
// demotes the next hop to GET and drops its body; a 307 or 308
// preserves method and body verbatim, as does any status on a request
// method that never demotes (GET, HEAD, ...).
func demoteIfNeeded(hop *request.Hop) (method string, params request.Values, files map[string]*request.File, content []byte) {
	method = hop.Request.Method
	params = hop.Request.Parameters
	files = hop.Request.Files
	content = hop.Request.Content
	if isDemotingStatus(hop.Response.Status) && request.ShouldDemoteToGet(hop.Request.Method) {
		return "GET", nil, nil, nil
	}
	return method, params, files, content
}

func isDemotingStatus(status int) bool {
	switch status {
	case 301, 302, 303:
		return true
	default:
		return false
	}
}

// isSuccessHTML reports whether resp is a terminal, non-redirect 2xx
// response carrying (or not specifying) an HTML content type: a
// meta-refresh tag on a 4xx/5xx error page is not navigation.
func isSuccessHTML(resp *request.Response) bool {
	if resp.Status < 200 || resp.Status > 299 {
		return false
	}
	ct := resp.Header.Get("Content-Type")
	if ct == "" {
		return true
	}
	return strings.Contains(strings.ToLower(ct), "html")
}

// buildRequest assembles a request.Request for target: it clones
// server, recomputes the HTTPS and HTTP_HOST entries from target on
// every dispatch, sets HTTP_REFERER to the previous request's URL if
// there was one, and selects cookies from the jar fresh for target.
func (b *Browser) buildRequest(
	method string,
	target *url.URL,
	params request.Values,
	files map[string]*request.File,
	server request.ServerParams,
	content []byte,
) *request.Request {
	server = server.Clone()
	server.Set(request.KeyHTTPS, target.Scheme == "https")
	server.Set(request.KeyHost, target.Host)
	if b.lastRequest != nil {
		server.Set(request.KeyReferer, b.lastRequest.URL.String())
	}

	return &request.Request{
		Method:     method,
		URL:        target,
		Parameters: params,
		Files:      files,
		Server:     server,
		Content:    content,
		Cookies:    b.Jar.AllRawValues(target),
	}
}

// FollowRedirect dispatches the redirect target captured on the last
// response, one hop at a time (unlike the automatic loop Request
// drives, which keeps chasing until it settles). It fails with a
// LogicError if the last response was not a 30x with a Location
// header, or if chasing one more hop would exceed the redirect
// budget.
func (b *Browser) FollowRedirect(ctx context.Context) (*htmlquery.Document, error) {
	b.init()

	if b.lastResponse == nil || !b.lastResponse.IsRedirect() {
		return nil, logicErrorf("no pending redirect to follow")
	}

	maxRedirects := b.resolveMaxRedirects()
	hop := &request.Hop{Request: b.lastRequest, Response: b.lastResponse, RedirectCount: b.redirectCount}
	budget := redirect.Policy{MaxRedirects: maxRedirects}
	if budget.ExceedsBudget(hop) {
		return nil, logicErrorf("exceeded maximum of %d redirects", maxRedirects)
	}

	loc, ok := b.lastResponse.Location()
	if !ok {
		return nil, logicErrorf("no pending redirect to follow")
	}
	resolved, err := resolve.Resolve(b.lastRequest.URL, loc)
	if err != nil {
		return nil, err
	}
	nextMethod, params, files, content := demoteIfNeeded(hop)
	req := b.buildRequest(nextMethod, &resolved.URL, params, files, b.lastRequest.Server.Clone(), content)

	if _, err := b.dispatchHop(ctx, req, b.redirectCount+1, true); err != nil {
		return nil, err
	}
	b.redirectCount++
	return b.lastDoc, nil
}

// Back re-dispatches the history entry before the current one,
// without changing the stored history contents. It fails with a
// LogicError if already at the oldest entry.
func (b *Browser) Back(ctx context.Context) (*htmlquery.Document, error) {
	b.init()
	e, ok := b.History.Back()
	if !ok {
		return nil, logicErrorf("no previous entry in history")
	}
	return b.replay(ctx, e)
}

// Forward re-dispatches the history entry after the current one. It
// fails with a LogicError if already at the newest entry.
func (b *Browser) Forward(ctx context.Context) (*htmlquery.Document, error) {
	b.init()
	e, ok := b.History.Forward()
	if !ok {
		return nil, logicErrorf("no next entry in history")
	}
	return b.replay(ctx, e)
}

// Reload re-dispatches the current history entry without moving the
// history cursor. It fails with a LogicError if no request has been
// made yet.
func (b *Browser) Reload(ctx context.Context) (*htmlquery.Document, error) {
	b.init()
	e, ok := b.History.Current()
	if !ok {
		return nil, logicErrorf("no current entry to reload")
	}
	return b.replay(ctx, e)
}

// replay re-dispatches a history entry verbatim: its method,
// parameters, files, server, and content are all taken from the
// entry exactly as they were captured, but cookies are selected from
// the jar fresh, not snapshotted.
func (b *Browser) replay(ctx context.Context, e history.Entry) (*htmlquery.Document, error) {
	target, err := url.Parse(e.URL)
	if err != nil {
		return nil, err
	}
	return b.navigate(ctx, e.Method, target, e.Parameters, e.Files, e.Server.Clone(), e.Content, false)
}

// Restart clears both the history and the cookie jar, as if the
// Browser were newly constructed.
func (b *Browser) Restart() {
	b.Jar = &cookiejar.Jar{}
	b.History = history.New()
	b.lastRequest = nil
	b.lastResponse = nil
	b.lastFiltered = nil
	b.lastDoc = nil
	b.redirectCount = 0
}
