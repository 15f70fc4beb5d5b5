// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"context"

	"github.com/browserkit/browserkit/request"
)

// A Doer sends one request.Request hop and returns the
// request.Response, or a transport-level error (DNS failure, refused
// connection, TLS mismatch, timeout, ...), which the browser core
// propagates to the caller untouched.
//
// A Doer must not follow redirects; the browser core is the only
// layer that decides whether and how to chase a 30x response.
type Doer interface {
	Do(ctx context.Context, r *request.Request) (*request.Response, error)
}
