// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package transport implements browserkit's transport adapter: the
single-hop translation of a request.Request into a wire call and back
into a request.Response, with no redirect following of its own. The
browser core is the only layer that decides whether and how to chase
a redirect.

The package's one implementation, HTTPAdapter, does this over
net/http. Doer is the minimal interface the browser core actually
depends on, so tests (and callers with an exotic transport need) can
substitute a fake without dragging in net/http at all:

	type fakeDoer struct{ resp *request.Response }

	func (f *fakeDoer) Do(_ context.Context, _ *request.Request) (*request.Response, error) {
		return f.resp, nil
	}
*/
package transport
