// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

// DefaultUserAgent is the product token browserkit advertises when the
// caller has not configured a HTTP_USER_AGENT server parameter of its
// own. It is applied only at dispatch time by the transport adapter
// (it is never written into a ServerParams map just because a Browser
// exists), so GetServerParameter("HTTP_USER_AGENT") faithfully reports
// whether the caller actually configured one.
const DefaultUserAgent = "BrowserKit/1.0 (+https://github.com/browserkit/browserkit)"

// Well-known server parameter keys, following the PHP $_SERVER
// superglobal convention: HTTP_* keys fold into outgoing
// request headers, and a handful of other keys carry environment
// flags or auth credentials.
const (
	KeyHTTPS         = "HTTPS"
	KeyHost          = "HTTP_HOST"
	KeyReferer       = "HTTP_REFERER"
	KeyUserAgent     = "HTTP_USER_AGENT"
	KeyAuthUser      = "PHP_AUTH_USER"
	KeyAuthPassword  = "PHP_AUTH_PW"
	KeyContentType   = "CONTENT_TYPE"
	KeyContentLength = "CONTENT_LENGTH"
	KeyContentMD5    = "CONTENT_MD5"
	KeyRequestedWith = "HTTP_X_REQUESTED_WITH"
)

// ValueXMLHTTPRequest is the conventional value of
// HTTP_X_REQUESTED_WITH set by XMLHTTPRequest for a single call.
const ValueXMLHTTPRequest = "XMLHttpRequest"

// ServerParams is a caller-controlled map of server parameters applied
// to an outgoing Request. Values are normally strings; KeyHTTPS is
// stored as a bool.
//
// ServerParams is a plain map type rather than a struct with typed
// fields plus a catch-all, because nearly every key (including the
// "well-known" ones) only ever needs string-in, string-out treatment
// by the transport adapter; a struct would just duplicate the catch-all
// map under a different name.
type ServerParams map[string]interface{}

// DefaultServerParams returns a new, empty ServerParams. It exists
// (rather than having callers write ServerParams{} directly) so that
// if browserkit ever needs to seed a non-empty baseline, there is one
// place to change it; today the baseline is empty because defaults
// like DefaultUserAgent are applied at dispatch time, not stored here.
func DefaultServerParams() ServerParams {
	return ServerParams{}
}

// Clone returns a shallow copy of p. A nil receiver clones to an
// empty, non-nil ServerParams.
func (p ServerParams) Clone() ServerParams {
	out := make(ServerParams, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Merge returns a new ServerParams containing every entry of p,
// overridden by every entry of overrides. Neither p nor overrides is
// mutated, which is what lets Browser.Request fold a per-call server
// map over the default server parameters without mutating the
// defaults.
func (p ServerParams) Merge(overrides ServerParams) ServerParams {
	out := p.Clone()
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

// Get returns the raw value stored under key and whether it was
// present.
func (p ServerParams) Get(key string) (interface{}, bool) {
	v, ok := p[key]
	return v, ok
}

// GetString returns the string form of the value stored under key, or
// fallback if the key is absent. This is the primitive behind
// Browser.GetServerParameter: the caller decides the fallback, so a
// default that was never explicitly stored is never confused with a
// user-configured value.
func (p ServerParams) GetString(key, fallback string) string {
	v, ok := p[key]
	if !ok {
		return fallback
	}
	switch s := v.(type) {
	case string:
		return s
	case bool:
		if s {
			return "1"
		}
		return ""
	default:
		return fallback
	}
}

// GetBool returns the boolean form of the value stored under key: a
// bool as is, the strings "1" and "true" as true, and a missing key or
// any other value as false.
func (p ServerParams) GetBool(key string) bool {
	v, ok := p[key]
	if !ok {
		return false
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return b == "1" || b == "true"
	default:
		return false
	}
}

// Set stores value under key, mutating the receiver in place.
func (p ServerParams) Set(key string, value interface{}) {
	p[key] = value
}

// Delete removes key from the receiver.
func (p ServerParams) Delete(key string) {
	delete(p, key)
}
