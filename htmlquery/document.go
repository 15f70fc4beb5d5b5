// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package htmlquery

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"

	"github.com/browserkit/browserkit/request"
	"github.com/browserkit/browserkit/resolve"
)

// A Link is one <a href="..."> found in a document, resolved against
// the document's base URL.
type Link struct {
	Text string
	URL  *url.URL
}

// A Form is one <form> found in a document, with its fields collected
// from the default value of every named input, select, and textarea.
type Form struct {
	Action  *url.URL
	Method  string
	Fields  request.Values
	Buttons []string
}

// A Document is a read-only, parsed HTML page together with the URL
// it was fetched from, used to resolve relative hrefs and form actions.
type Document struct {
	goquery *goquery.Document
	base    *url.URL
}

// Parse builds a Document from a response body, its Content-Type
// header value (used only to sniff a non-UTF-8 charset; pass "" if
// unknown), and the URL the response was fetched from. A parse
// failure (malformed markup beyond what the tokenizer can recover
// from) is rare; golang.org/x/net/html is forgiving, and errors here
// usually indicate the body was not HTML at all.
func Parse(body []byte, contentType string, base *url.URL) (*Document, error) {
	utf8Reader, err := charset.NewReader(bytes.NewReader(body), contentType)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(utf8Reader)
	if err != nil {
		return nil, err
	}
	return &Document{goquery: doc, base: base}, nil
}

// FindLinkByText returns the first <a> element whose trimmed text, alt
// attribute, or id attribute equals text, in document order. Ties are
// broken by taking the first match; browserkit keeps this DOM-order
// "first match wins" behavior deliberately rather than trying to rank
// matches by specificity.
func (d *Document) FindLinkByText(text string) (*Link, bool) {
	var found *Link
	d.goquery.Find("a").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !linkMatches(s, text) {
			return true
		}
		href, ok := s.Attr("href")
		if !ok {
			return true
		}
		resolved, err := resolve.Resolve(d.base, strings.TrimSpace(href))
		if err != nil {
			return true
		}
		found = &Link{Text: strings.TrimSpace(s.Text()), URL: &resolved.URL}
		return false
	})
	if found == nil {
		return nil, false
	}
	return found, true
}

func linkMatches(s *goquery.Selection, text string) bool {
	if strings.TrimSpace(s.Text()) == text {
		return true
	}
	if alt, ok := s.Attr("alt"); ok && alt == text {
		return true
	}
	if id, ok := s.Attr("id"); ok && id == text {
		return true
	}
	return false
}

// FindFormByButtonText returns the first <form> containing a button
// (an <input type="submit">, an <input type="button">, or any
// <button> element, whatever its type) whose label equals buttonText.
func (d *Document) FindFormByButtonText(buttonText string) (*Form, bool) {
	var found *Form
	d.goquery.Find("form").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !formHasButton(s, buttonText) {
			return true
		}
		found = d.buildForm(s)
		return false
	})
	if found == nil {
		return nil, false
	}
	return found, true
}

func formHasButton(form *goquery.Selection, text string) bool {
	matched := false
	form.Find("input[type=submit], button, input[type=button]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if buttonLabel(s) == text {
			matched = true
			return false
		}
		return true
	})
	return matched
}

func buttonLabel(s *goquery.Selection) string {
	if v, ok := s.Attr("value"); ok && v != "" {
		return v
	}
	return strings.TrimSpace(s.Text())
}

func (d *Document) buildForm(s *goquery.Selection) *Form {
	action, _ := s.Attr("action")
	method, _ := s.Attr("method")
	if method == "" {
		method = "GET"
	}
	method = strings.ToUpper(method)

	var actionURL *url.URL
	if resolved, err := resolve.Resolve(d.base, strings.TrimSpace(action)); err == nil {
		actionURL = &resolved.URL
	} else {
		actionURL = d.base
	}

	fields := request.Values{}
	var buttons []string

	s.Find("input, select, textarea").Each(func(_ int, field *goquery.Selection) {
		name, ok := field.Attr("name")
		if !ok || name == "" {
			return
		}
		typ, _ := field.Attr("type")
		switch strings.ToLower(typ) {
		case "submit", "button", "reset", "image":
			buttons = append(buttons, buttonLabel(field))
			return
		case "checkbox", "radio":
			if _, checked := field.Attr("checked"); !checked {
				return
			}
		}
		fields[name] = fieldValue(field)
	})

	return &Form{Action: actionURL, Method: method, Fields: fields, Buttons: buttons}
}

func fieldValue(field *goquery.Selection) string {
	if goquery.NodeName(field) == "select" {
		val, ok := field.Find("option[selected]").Attr("value")
		if ok {
			return val
		}
		return field.Find("option").First().Text()
	}
	if goquery.NodeName(field) == "textarea" {
		return field.Text()
	}
	v, _ := field.Attr("value")
	return v
}
