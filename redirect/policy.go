// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package redirect

import "github.com/browserkit/browserkit/request"

// A Policy controls whether browser.Browser chases a redirect
// response automatically. It pairs a Decider, which classifies
// whether a given hop's response looks like something worth chasing,
// with a redirect budget: MaxRedirects caps how many automatic hops a
// single navigation may make before the browser core must report a
// Logic error rather than silently stopping.
//
// A negative MaxRedirects means unbounded.
type Policy struct {
	Decider      Decider
	MaxRedirects int
}

// DefaultPolicy is the policy a fresh Browser uses: chase 301, 302,
// 303, 307, and 308 responses carrying a Location header, up to
// DefaultMaxRedirects hops.
var DefaultPolicy = Policy{
	Decider:      StatusIn(301, 302, 303, 307, 308),
	MaxRedirects: DefaultMaxRedirects,
}

// Never is a policy that never chases a redirect automatically,
// leaving every 30x response for the caller to chase explicitly via
// Browser.FollowRedirect.
var Never = Policy{
	Decider:      DeciderFunc(func(*request.Hop) bool { return false }),
	MaxRedirects: 0,
}

// ShouldChase reports whether the policy's Decider classifies h's
// response as a redirect worth chasing. It does not consult
// MaxRedirects; callers check the budget separately so that exceeding
// it can be surfaced as an error rather than a silent stop.
func (p Policy) ShouldChase(h *request.Hop) bool {
	if p.Decider == nil {
		return false
	}
	return p.Decider.Decide(h)
}

// ExceedsBudget reports whether chasing one more redirect would push
// h.RedirectCount beyond MaxRedirects.
func (p Policy) ExceedsBudget(h *request.Hop) bool {
	return p.MaxRedirects >= 0 && h.RedirectCount+1 > p.MaxRedirects
}
