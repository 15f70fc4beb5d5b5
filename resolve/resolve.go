// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package resolve implements browserkit's URI resolution rules: producing
an absolute URL from a base URL and a reference string, per RFC 3986
and the specific edge cases browserkit must uphold (a bare "#" or "?"
reference, a scheme-relative "//host/..." reference, and so on).

This is deliberately not a call to the standard library's
net/url.URL.ResolveReference, which normalizes in ways browserkit must
not: it collapses an empty fragment or query away, and it does not
give the caller a hook for the "no base yet" default-host fallback
browserkit needs for the very first request made on a Browser.
*/
package resolve

import (
	"net/url"
	"strings"
)

// DefaultHost and DefaultScheme are used to synthesize a base URL when
// the caller issues the first request on a Browser using a relative
// reference and there is no previous request to resolve against.
const (
	DefaultScheme = "http"
	DefaultHost   = "localhost"
)

// URL is the result of Resolve: an absolute URL together with whether
// a bare "?" or "#" reference was resolved, which plain url.URL.String
// cannot render on its own.
//
// The empty-query case has a home in net/url already (ForceQuery), so
// URL embeds url.URL and relies on it for that half. The empty-fragment
// case has no such field anywhere in net/url, so URL tracks it itself
// and appends the "#" in its own String.
type URL struct {
	url.URL
	forceFragment bool
}

// String renders u the way url.URL.String does, except that a bare
// "#" reference resolved by Resolve still ends in "#" even though
// u.Fragment is empty.
func (u *URL) String() string {
	s := u.URL.String()
	if u.forceFragment {
		s += "#"
	}
	return s
}

// Resolve returns the absolute URL obtained by resolving ref against
// base, following the reference kinds browserkit distinguishes:
//
//   - absolute (has its own scheme): returned unchanged except for
//     lower-casing the scheme;
//   - scheme-relative ("//host/..."): inherits base's scheme;
//   - fragment-only ("#..." or bare "#"): replaces base's fragment,
//     keeping everything else, including an empty fragment;
//   - query-only ("?..." or bare "?"): replaces base's query and drops
//     base's fragment, keeping scheme, authority, and path; a bare "?"
//     keeps an empty query;
//   - path-absolute ("/x"): keeps base's scheme and authority, replaces
//     path+query+fragment;
//   - path-relative (everything else): merged against base's path by
//     dropping base's last path segment and appending ref.
//
// If base is nil, a default base of http://localhost/ is used, so a
// caller can always resolve a bare path on a freshly-constructed
// Browser that has not yet made a request.
func Resolve(base *url.URL, ref string) (*URL, error) {
	if base == nil {
		base = &url.URL{Scheme: DefaultScheme, Host: DefaultHost, Path: "/"}
	}

	var (
		raw *url.URL
		err error
	)
	switch {
	case ref == "":
		raw = cloneURL(base)
	case strings.HasPrefix(ref, "#"):
		raw = resolveFragment(base, ref)
	case strings.HasPrefix(ref, "?"):
		raw = resolveQuery(base, ref)
	case strings.HasPrefix(ref, "//"):
		raw, err = resolveSchemeRelative(base, ref)
	case strings.HasPrefix(ref, "/"):
		raw, err = resolvePathAbsolute(base, ref)
	case hasScheme(ref):
		raw, err = resolveAbsolute(ref)
	default:
		raw, err = resolvePathRelative(base, ref)
	}
	if err != nil {
		return nil, err
	}

	out := &URL{URL: *raw}
	if ref == "?" {
		out.ForceQuery = true
	}
	if ref == "#" {
		out.forceFragment = true
	}
	return out, nil
}

func cloneURL(u *url.URL) *url.URL {
	cp := *u
	return &cp
}

// hasScheme reports whether ref begins with a scheme, i.e. a token
// that starts with a letter, is made of letters/digits/+/-/., and is
// followed immediately by a colon before any "/", "?" or "#". Nothing
// after the colon is examined, so "host:8080" counts as having the
// scheme "host".
func hasScheme(ref string) bool {
	i := strings.IndexAny(ref, ":/?#")
	if i <= 0 || ref[i] != ':' {
		return false
	}
	scheme := ref[:i]
	for j, r := range scheme {
		isAlpha := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		isOther := r == '+' || r == '-' || r == '.'
		if j == 0 && !isAlpha {
			return false
		}
		if !isAlpha && !isDigit && !isOther {
			return false
		}
	}
	return true
}

func resolveAbsolute(ref string) (*url.URL, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return nil, err
	}
	u.Scheme = strings.ToLower(u.Scheme)
	return u, nil
}

func resolveSchemeRelative(base *url.URL, ref string) (*url.URL, error) {
	u, err := url.Parse(base.Scheme + ":" + ref)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func resolvePathAbsolute(base *url.URL, ref string) (*url.URL, error) {
	rest, err := url.Parse(ref)
	if err != nil {
		return nil, err
	}
	out := cloneURL(base)
	out.Path = rest.Path
	out.RawPath = rest.RawPath
	out.RawQuery = rest.RawQuery
	out.Fragment = rest.Fragment
	out.RawFragment = rest.RawFragment
	return out, nil
}

func resolveFragment(base *url.URL, ref string) *url.URL {
	out := cloneURL(base)
	out.Fragment = strings.TrimPrefix(ref, "#")
	out.RawFragment = out.Fragment
	return out
}

func resolveQuery(base *url.URL, ref string) *url.URL {
	out := cloneURL(base)
	out.RawQuery = strings.TrimPrefix(ref, "?")
	out.Fragment = ""
	out.RawFragment = ""
	return out
}

// resolvePathRelative merges ref against base's path: strip the last
// segment of base's path (everything after the final "/", or the
// whole path if there is no "/"), then append ref's path; query and
// fragment come from ref if present, otherwise are dropped (a bare
// relative path reference clears any query/fragment base had, which
// matches ordinary browser link-following behaviour).
func resolvePathRelative(base *url.URL, ref string) (*url.URL, error) {
	rest, err := url.Parse(ref)
	if err != nil {
		return nil, err
	}
	out := cloneURL(base)
	dir := base.Path
	if i := strings.LastIndex(dir, "/"); i >= 0 {
		dir = dir[:i+1]
	} else {
		dir = ""
	}
	out.Path = dir + rest.Path
	out.RawPath = ""
	out.RawQuery = rest.RawQuery
	out.Fragment = rest.Fragment
	out.RawFragment = rest.RawFragment
	return out, nil
}
