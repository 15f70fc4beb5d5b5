// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package cookiejar implements the cookie storage and selection rules
browserkit needs: a Cookie type representing one RFC 6265 cookie, and a
Jar that scopes, expires, and selects cookies for a target URL.

It is a dedicated implementation rather than a thin wrapper over
net/http/cookiejar because browserkit needs to expose both the decoded
and raw cookie values (net/http/cookiejar only exposes decoded ones via
Cookies), and because the Set-Cookie grammar is tolerant of unquoted
commas inside the Expires attribute in a way that a naive
strings.Split on the header's own list-separating comma would corrupt.
*/
package cookiejar

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// SameSite enumerates the SameSite attribute values browserkit
// recognizes when parsing a Set-Cookie header.
type SameSite string

const (
	SameSiteUnset  SameSite = ""
	SameSiteLax    SameSite = "Lax"
	SameSiteStrict SameSite = "Strict"
	SameSiteNone   SameSite = "None"
)

// A Cookie represents a single RFC 6265 cookie, scoped by domain and
// path.
type Cookie struct {
	Name string
	// Value is the decoded value: percent-decoding is undone if the
	// server percent-encoded the value (a common, non-standard but
	// widespread practice). RawValue is exactly what the server sent.
	Value    string
	RawValue string
	// Expires is nil for a session cookie (one that should survive
	// until the jar is cleared), or the absolute expiry time.
	Expires  *time.Time
	Path     string
	Domain   string
	Secure   bool
	HTTPOnly bool
	SameSite SameSite
}

// Expired reports whether the cookie has expired as of now.
func (c *Cookie) Expired(now time.Time) bool {
	return c.Expires != nil && !c.Expires.After(now)
}

// key identifies a cookie's storage slot: cookies sharing a
// (name, domain, path) triple overwrite one another when stored.
type key struct {
	name, domain, path string
}

func (c *Cookie) key() key {
	return key{name: c.Name, domain: c.Domain, path: c.Path}
}

// ParseSetCookie parses one Set-Cookie header value into a Cookie.
//
// defaultURI supplies the required fallbacks: an unspecified
// Domain attribute defaults to defaultURI's host. Cookie has no
// host-only flag, so such a cookie is matched by Jar exactly like one
// with an explicit Domain attribute naming that host: it is also sent
// to that host's subdomains. An unspecified Path attribute defaults to
// the directory portion of defaultURI's path (RFC 6265 section 5.1.4's
// "default-path" algorithm).
//
// A malformed cookie (no NAME=VALUE pair) returns an error; callers
// that want to ignore malformed cookies silently should discard the
// error rather than propagate it.
func ParseSetCookie(header string, defaultURI *url.URL) (*Cookie, error) {
	parts := strings.Split(header, ";")
	if len(parts) == 0 {
		return nil, errMalformed
	}
	name, rawValue, ok := splitNameValue(parts[0])
	if !ok || name == "" {
		return nil, errMalformed
	}

	c := &Cookie{
		Name:     name,
		RawValue: rawValue,
		Value:    decodeValue(rawValue),
		Path:     defaultPath(defaultURI),
		Domain:   defaultURI.Hostname(),
	}

	for _, attr := range parts[1:] {
		attr = strings.TrimSpace(attr)
		if attr == "" {
			continue
		}
		attrName, attrValue, hasValue := splitNameValue(attr)
		switch strings.ToLower(attrName) {
		case "expires":
			if hasValue {
				if t, err := parseCookieDate(attrValue); err == nil {
					c.Expires = &t
				}
			}
		case "max-age":
			if hasValue {
				if secs, err := strconv.Atoi(strings.TrimSpace(attrValue)); err == nil {
					t := time.Now().Add(time.Duration(secs) * time.Second)
					c.Expires = &t
				}
			}
		case "domain":
			if hasValue && attrValue != "" {
				c.Domain = strings.ToLower(strings.TrimPrefix(attrValue, "."))
			}
		case "path":
			if hasValue && strings.HasPrefix(attrValue, "/") {
				c.Path = attrValue
			}
		case "secure":
			c.Secure = true
		case "httponly":
			c.HTTPOnly = true
		case "samesite":
			c.SameSite = SameSite(titleCase(attrValue))
		}
	}
	return c, nil
}

func splitNameValue(s string) (name, value string, ok bool) {
	i := strings.IndexByte(s, '=')
	if i < 0 {
		return strings.TrimSpace(s), "", false
	}
	return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+1:]), true
}

func decodeValue(v string) string {
	unquoted := strings.Trim(v, `"`)
	if decoded, err := url.QueryUnescape(unquoted); err == nil {
		return decoded
	}
	return unquoted
}

// defaultPath implements RFC 6265 section 5.1.4's default-path
// algorithm: the directory portion of the request path, or "/" if the
// request path has no more than one segment.
func defaultPath(u *url.URL) string {
	p := u.Path
	if p == "" || !strings.HasPrefix(p, "/") {
		return "/"
	}
	i := strings.LastIndex(p, "/")
	if i <= 0 {
		return "/"
	}
	return p[:i]
}

// cookieDateLayouts covers the handful of date formats real servers
// send in Expires attributes; RFC 6265's grammar is deliberately
// permissive here.
var cookieDateLayouts = []string{
	time.RFC1123,
	time.RFC1123Z,
	"Mon, 02-Jan-2006 15:04:05 MST",
	"Monday, 02-Jan-2006 15:04:05 MST",
	time.ANSIC,
	time.RFC850,
}

// titleCase upper-cases the first rune and lower-cases the rest, used
// to normalize a SameSite attribute value like "lax" or "STRICT" into
// the canonical "Lax"/"Strict"/"None" spelling.
func titleCase(s string) string {
	s = strings.ToLower(s)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func parseCookieDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range cookieDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		} else {
			lastErr = err
		}
	}
	return time.Time{}, lastErr
}
