// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package browser implements a headless programmatic browser: a library
that drives an HTTP-level dialogue against a remote server while
emulating the parts of a real browser that matter for integration
testing and scripted navigation.

Create a Browser to begin navigating.

	b := &browser.Browser{}
	doc, err := b.Request(ctx, "GET", "https://www.example.com", nil, nil, nil, nil, true)
	...
	doc, err = b.ClickLink(ctx, "Sign in")
	...
	doc, err = b.SubmitForm(ctx, "Log in", request.Values{"password": "hunter2"}, "", nil)

For control over how the browser sends hops, install a custom Doer,
such as *transport.HTTPAdapter configured with its own *http.Client:

	adapter := &transport.HTTPAdapter{
		Client: &http.Client{Timeout: 10 * time.Second},
	}
	b := &browser.Browser{Doer: adapter}

For control over redirect chasing, set RedirectDecider and call
SetMaxRedirects; to stop chasing redirects automatically and step
through a chain by hand, call FollowRedirects(false) and then
FollowRedirect repeatedly:

	b.FollowRedirects(false)
	doc, err := b.Request(ctx, "GET", "https://example.com/old", nil, nil, nil, nil, true)
	for err == nil && b.GetInternalResponse().IsRedirect() {
		doc, err = b.FollowRedirect(ctx)
	}

To hook into the fine-grained details of a navigation, install a
handler into the appropriate handler chain. This example wires in
zerolog for structured logging of every hop:

	log := zerolog.New(os.Stdout)
	handlers := &browser.HandlerGroup{}
	handlers.PushBack(browser.AfterDispatch, browser.HandlerFunc(
		func(_ browser.Event, h *request.Hop) {
			log.Debug().
				Str("method", h.Request.Method).
				Stringer("url", h.Request.URL).
				Dur("duration", h.Duration()).
				Msg("hop complete")
		},
	))
	b := &browser.Browser{Handlers: handlers}

Package browser deliberately treats three concerns as external
collaborators rather than baking them in: the wire transport (package
transport), the cookie store (package cookiejar), and the HTML query
façade used to locate links and forms (package htmlquery). Any of
these may be swapped out or wrapped by an embedding application.
*/
package browser
