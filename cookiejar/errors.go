// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cookiejar

import "errors"

// errMalformed is returned by ParseSetCookie when the header value has
// no NAME=VALUE pair to parse. Jar.UpdateFromSetCookie treats this
// (and any other parse error) as "ignore this header value silently".
var errMalformed = errors.New("cookiejar: malformed Set-Cookie header")
