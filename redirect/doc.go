// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package redirect provides the decision logic behind browserkit's
// automatic redirect chasing: given the current state of a navigation
// (its request.Hop), should the browser issue another hop, and is
// doing so still within the configured redirect budget.
//
// The interface Decider defines the decision-maker. A Decider can be
// built up from the provided constructors Times and StatusIn, and
// composed with And/Or:
//
//	d := redirect.StatusIn(301, 302, 303, 307, 308).And(redirect.Times(20))
//
// DefaultDecider is suitable for standalone use of this package.
// browser.Browser composes the StatusIn half of it with its own
// configurable redirect budget rather than referencing DefaultDecider
// directly, so that SetMaxRedirects can raise or lower the budget
// without also having to replace the decider.
package redirect
