// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package timeout defines flexible policies for setting the
// per-hop context deadline browser.Browser applies before dispatching
// each request.Hop, including hops automatically chased during a
// redirect or meta-refresh navigation. A generic interface for timeout
// policies is provided, Policy, along with two built-in policies,
// Fixed and Infinite.
package timeout
