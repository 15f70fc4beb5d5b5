// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cookiejar

import (
	"net"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/publicsuffix"
)

// A Jar is browserkit's cookie store. Its zero value is ready to use.
//
// Jar is not safe for concurrent use, matching the single-threaded
// contract the whole browser package operates under: one owning
// goroutine drives a Browser and, transitively, its Jar.
type Jar struct {
	cookies map[key]*Cookie
}

// Set stores c, overwriting any existing cookie sharing its
// (name, path, domain) key.
func (j *Jar) Set(c *Cookie) {
	if j.cookies == nil {
		j.cookies = make(map[key]*Cookie)
	}
	cp := *c
	j.cookies[c.key()] = &cp
}

// Expire removes cookies named name. If path or domain are non-empty
// they narrow the match to that specific (name, path, domain) triple;
// otherwise every cookie with the given name, regardless of scope, is
// removed.
func (j *Jar) Expire(name, path, domain string) {
	for k := range j.cookies {
		if k.name != name {
			continue
		}
		if path != "" && k.path != path {
			continue
		}
		if domain != "" && k.domain != domain {
			continue
		}
		delete(j.cookies, k)
	}
}

// Clear removes every cookie from the jar.
func (j *Jar) Clear() {
	j.cookies = nil
}

// All returns every non-expired cookie in the jar, keyed by nothing in
// particular. It exists mainly so callers (and tests asserting that
// Restart empties the jar) can inspect or count the jar's full
// contents regardless of any particular target URL.
func (j *Jar) All() []*Cookie {
	out := make([]*Cookie, 0, len(j.cookies))
	now := time.Now()
	for _, c := range j.cookies {
		if !c.Expired(now) {
			out = append(out, c)
		}
	}
	return out
}

// UpdateFromSetCookie parses each value in headers as a Set-Cookie
// header and stores the resulting cookies, using defaultURI to fill in
// an absent Domain or Path attribute. A malformed cookie, or one whose
// explicit Domain attribute is rejected by the public-suffix check
// (RFC 6265 section 5.3 step 5: a domain-attribute may not be a public
// suffix unless it is also the request host itself), is ignored
// silently.
func (j *Jar) UpdateFromSetCookie(headers []string, defaultURI *url.URL) {
	for _, h := range headers {
		c, err := ParseSetCookie(h, defaultURI)
		if err != nil {
			continue
		}
		if !domainAcceptable(c.Domain, defaultURI.Hostname()) {
			continue
		}
		j.Set(c)
	}
}

// domainAcceptable rejects a cookie whose Domain attribute names a
// public suffix (e.g. "com", "co.uk") unless that suffix is itself the
// exact request host, per RFC 6265 section 5.3 step 5. IP-literal
// hosts are exempt, since publicsuffix has no opinion about them.
func domainAcceptable(domain, requestHost string) bool {
	if domain == "" {
		return true
	}
	if net.ParseIP(domain) != nil {
		return true
	}
	if domain == requestHost {
		return true
	}
	suffix, icann := publicsuffix.PublicSuffix(domain)
	return !(icann && suffix == domain)
}

// AllValues returns name -> decoded value for every unexpired cookie
// in the jar whose domain and path scope match uri, and whose Secure
// flag, if set, is satisfied because uri's scheme is https.
func (j *Jar) AllValues(uri *url.URL) map[string]string {
	return j.selectValues(uri, func(c *Cookie) string { return c.Value })
}

// AllRawValues is identical to AllValues except it returns the raw,
// undecoded cookie values, which is what belongs on an outgoing
// Cookie: header.
func (j *Jar) AllRawValues(uri *url.URL) map[string]string {
	return j.selectValues(uri, func(c *Cookie) string { return c.RawValue })
}

func (j *Jar) selectValues(uri *url.URL, pick func(*Cookie) string) map[string]string {
	out := make(map[string]string)
	now := time.Now()
	host := uri.Hostname()
	for _, c := range j.cookies {
		if c.Expired(now) {
			continue
		}
		if !domainMatches(host, c.Domain) {
			continue
		}
		if !pathMatches(uri.Path, c.Path) {
			continue
		}
		if c.Secure && !strings.EqualFold(uri.Scheme, "https") {
			continue
		}
		out[c.Name] = pick(c)
	}
	return out
}

// domainMatches implements RFC 6265 section 5.1.3: string
// domain-matches domain-string.
func domainMatches(host, domain string) bool {
	host = strings.ToLower(host)
	domain = strings.ToLower(domain)
	if host == domain {
		return true
	}
	if !strings.HasSuffix(host, domain) {
		return false
	}
	if net.ParseIP(host) != nil {
		return false
	}
	prefixLen := len(host) - len(domain)
	return prefixLen > 0 && host[prefixLen-1] == '.'
}

// pathMatches implements RFC 6265 section 5.1.4: request-path
// path-matches cookie-path.
func pathMatches(requestPath, cookiePath string) bool {
	if requestPath == "" {
		requestPath = "/"
	}
	if requestPath == cookiePath {
		return true
	}
	if !strings.HasPrefix(requestPath, cookiePath) {
		return false
	}
	if strings.HasSuffix(cookiePath, "/") {
		return true
	}
	return requestPath[len(cookiePath)] == '/'
}
