// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package htmlquery

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/browserkit/browserkit/resolve"
)

// MetaRefresh looks for a <meta http-equiv="refresh" content="N;
// URL=target"> in the document's <head> (including inside a <noscript>
// nested in <head>) and reports the resolved target when the timeout
// segment is exactly zero. Any other timeout value, or the absence of
// such a tag, reports ok=false: browserkit only treats an immediate
// meta-refresh as navigation, never a delayed one.
func (d *Document) MetaRefresh() (target *url.URL, ok bool) {
	sel := d.goquery.Find("head meta")
	// The parser keeps the content of a <noscript> in <head> as raw
	// text, so any <meta> written inside one is parsed out separately.
	d.goquery.Find("head noscript").Each(func(_ int, ns *goquery.Selection) {
		if inner, err := goquery.NewDocumentFromReader(strings.NewReader(ns.Text())); err == nil {
			sel = sel.AddSelection(inner.Find("meta"))
		}
	})
	for i := 0; i < sel.Length(); i++ {
		s := sel.Eq(i)
		equiv, has := s.Attr("http-equiv")
		if !has || !strings.EqualFold(strings.TrimSpace(equiv), "refresh") {
			continue
		}
		content, has := s.Attr("content")
		if !has {
			continue
		}
		timeout, rawTarget, parsed := parseRefreshContent(content)
		if !parsed || timeout != 0 || rawTarget == "" {
			continue
		}
		resolved, err := resolve.Resolve(d.base, rawTarget)
		if err != nil {
			continue
		}
		return &resolved.URL, true
	}
	return nil, false
}

// parseRefreshContent parses the content attribute of a meta-refresh
// tag: "<timeout>" or "<timeout>;URL=<target>" or "<timeout>;
// url='<target>'", tolerating whitespace around the semicolon and the
// equals sign and any of unquoted/single/double-quoted targets.
func parseRefreshContent(content string) (timeout int, target string, ok bool) {
	parts := strings.SplitN(content, ";", 2)
	timeoutStr := strings.TrimSpace(parts[0])
	n, err := strconv.Atoi(timeoutStr)
	if err != nil {
		return 0, "", false
	}
	if len(parts) == 1 {
		return n, "", true
	}
	rest := strings.TrimSpace(parts[1])
	idx := strings.IndexByte(rest, '=')
	if idx == -1 {
		return n, "", true
	}
	key := strings.TrimSpace(rest[:idx])
	if !strings.EqualFold(key, "url") {
		return n, "", true
	}
	val := strings.TrimSpace(rest[idx+1:])
	val = strings.Trim(val, `"'`)
	return n, val, true
}
