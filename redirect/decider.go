// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package redirect

import "github.com/browserkit/browserkit/request"

// A Decider decides whether a hop's response should trigger another,
// automatically-chased hop.
//
// Use the built-in constructors Times and StatusIn, or implement your
// own. Use DeciderFunc to convert an ordinary function into a Decider,
// and to compose deciders logically using DeciderFunc.And and
// DeciderFunc.Or.
type Decider interface {
	Decide(h *request.Hop) bool
}

// The DeciderFunc type is an adapter to allow the use of ordinary
// functions as redirect deciders. It implements the Decider interface,
// and also provides the logical composition methods And and Or.
type DeciderFunc func(h *request.Hop) bool

// DefaultMaxRedirects is the redirect budget browser.Browser uses when
// SetMaxRedirects has not been called.
const DefaultMaxRedirects = 20

// DefaultDecider allows chasing a redirect as long as the response is
// one of the redirect status codes with a Location header, and the
// hop's redirect budget (DefaultMaxRedirects) has not been exceeded.
var DefaultDecider = StatusIn(301, 302, 303, 307, 308).And(Times(DefaultMaxRedirects))

// Decide returns f(h).
func (f DeciderFunc) Decide(h *request.Hop) bool {
	return f(h)
}

// And composes two deciders into a new decider which returns true only
// if both sub-deciders return true. Short-circuits: g is not evaluated
// if f returns false.
func (f DeciderFunc) And(g DeciderFunc) DeciderFunc {
	return func(h *request.Hop) bool {
		return f(h) && g(h)
	}
}

// Or composes two deciders into a new decider which returns true if
// either sub-decider returns true. Short-circuits: g is not evaluated
// if f returns true.
func (f DeciderFunc) Or(g DeciderFunc) DeciderFunc {
	return func(h *request.Hop) bool {
		return f(h) || g(h)
	}
}

// Times constructs a decider which allows chasing up to n more
// redirects. A negative n means unbounded. The returned decider
// compares against h.RedirectCount, which counts redirects already
// chased in the current navigation (not including the hop currently
// being decided).
func Times(n int) DeciderFunc {
	return func(h *request.Hop) bool {
		return n < 0 || h.RedirectCount < n
	}
}

// StatusIn constructs a decider which allows chasing a redirect only
// if the hop's response has one of the given status codes and carries
// a Location header.
func StatusIn(codes ...int) DeciderFunc {
	set := make(map[int]bool, len(codes))
	for _, c := range codes {
		set[c] = true
	}
	return func(h *request.Hop) bool {
		if h.Response == nil || !set[h.Response.Status] {
			return false
		}
		_, ok := h.Response.Location()
		return ok
	}
}
