// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package timeout

import (
	"time"

	"github.com/browserkit/browserkit/request"
)

// A Policy defines a timeout policy which may be plugged into
// browser.Browser to direct how long each dispatched request.Hop is
// allowed to run, including hops chased automatically by a redirect
// or meta-refresh.
//
// Implementations of Policy must be safe for concurrent use by
// multiple goroutines, in case a Policy value is shared across
// Browser instances running on separate goroutines even though any
// one Browser is not itself concurrency-safe.
type Policy interface {
	// Timeout returns the timeout to set on the hop's dispatch.
	Timeout(h *request.Hop) time.Duration
}

// DefaultPolicy is the default timeout policy. It sets a fixed timeout
// of 30 seconds on each hop.
var DefaultPolicy Policy = Fixed(30 * time.Second)

// Infinite is a built-in timeout policy which never times out.
var Infinite Policy = Fixed(1<<63 - 1)

// Fixed constructs a timeout policy that returns the same duration for
// every hop, regardless of how many redirects have already been
// chased in the navigation.
func Fixed(d time.Duration) Policy {
	return fixedPolicy(d)
}

type fixedPolicy time.Duration

func (p fixedPolicy) Timeout(*request.Hop) time.Duration {
	return time.Duration(p)
}
