// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package request contains the core value types shared by every layer of
browserkit: Request, Response, and Hop.

A Request is an immutable snapshot of everything needed to dispatch one
HTTP call: method, absolute URL, form parameters, uploaded files,
server parameters (the outgoing-header and environment-flag
conventions browserkit inherits from the PHP $_SERVER superglobal
tradition), a raw content override, and the cookies selected to
accompany this particular hop.

	r := &request.Request{
		Method: "GET",
		URL:    u,
		Server: request.DefaultServerParams(),
	}

A Response is the immutable counterpart: the status code, header
fields and body bytes that came back.

A Hop ties a Request and (once dispatched) its Response or error
together with bookkeeping used by the browser's redirect loop: how many
redirects have been chased so far, and whether this particular hop was
automatically generated by a redirect or meta-refresh rather than
initiated by the caller.
*/
package request
