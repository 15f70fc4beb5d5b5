// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import "strings"

// ValidMethod reports whether method is a syntactically valid HTTP
// method token per RFC 7230 section 3.2.6. It is lifted from the
// method-token check used throughout the net/http ecosystem to
// validate a Request's Method before it ever reaches a transport.
func ValidMethod(method string) bool {
	return method != "" && strings.IndexFunc(method, isNotTokenRune) == -1
}

func isNotTokenRune(r rune) bool {
	return !isTokenRune(r)
}

// isTokenRune classifies a rune as valid for an HTTP token as defined
// in RFC 7230 section 3.2.6. Lifted (and de-exported) from
// x/net/http/httpguts.
func isTokenRune(r rune) bool {
	i := int(r)
	return i < len(isTokenTable) && isTokenTable[i]
}

var isTokenTable = [127]bool{
	'!': true, '#': true, '$': true, '%': true, '&': true, '\'': true,
	'*': true, '+': true, '-': true, '.': true,
	'0': true, '1': true, '2': true, '3': true, '4': true,
	'5': true, '6': true, '7': true, '8': true, '9': true,
	'A': true, 'B': true, 'C': true, 'D': true, 'E': true, 'F': true,
	'G': true, 'H': true, 'I': true, 'J': true, 'K': true, 'L': true,
	'M': true, 'N': true, 'O': true, 'P': true, 'Q': true, 'R': true,
	'S': true, 'T': true, 'U': true, 'W': true, 'V': true, 'X': true,
	'Y': true, 'Z': true,
	'^': true, '_': true, '`': true,
	'a': true, 'b': true, 'c': true, 'd': true, 'e': true, 'f': true,
	'g': true, 'h': true, 'i': true, 'j': true, 'k': true, 'l': true,
	'm': true, 'n': true, 'o': true, 'p': true, 'q': true, 'r': true,
	's': true, 't': true, 'u': true, 'v': true, 'w': true, 'x': true,
	'y': true, 'z': true,
	'|': true, '~': true,
}

// demoteOnRedirect is the set of methods that a 301, 302, or 303
// redirect downgrades to GET, dropping the request body. Per the
// historical convention net/http.Client itself follows, GET and HEAD
// are left alone (HEAD stays HEAD; GET is already GET).
var demoteOnRedirect = map[string]bool{
	"POST":   true,
	"PUT":    true,
	"DELETE": true,
	"PATCH":  true,
}

// ShouldDemoteToGet reports whether a 301/302/303 redirect response to
// a request using method should cause the next hop to switch to GET
// and drop its body.
func ShouldDemoteToGet(method string) bool {
	return demoteOnRedirect[strings.ToUpper(method)]
}
