// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package browser

import (
	"context"
	"strings"

	"github.com/browserkit/browserkit/htmlquery"
	"github.com/browserkit/browserkit/request"
)

// Click dispatches a GET to a *Link's URL, or delegates to Submit for
// a *Form. Any other type fails with an InvalidArgumentError.
func (b *Browser) Click(ctx context.Context, target interface{}) (*htmlquery.Document, error) {
	switch v := target.(type) {
	case *htmlquery.Link:
		return b.Request(ctx, "GET", v.URL.String(), nil, nil, nil, nil, true)
	case *htmlquery.Form:
		return b.Submit(ctx, v, nil, nil)
	default:
		return nil, invalidArgumentErrorf("click target must be a *browser.Link or *browser.Form, got %T", target)
	}
}

// ClickLink locates the first link in the current document whose
// text, alt, or id matches text (first match in document order wins)
// and clicks it. It fails with an InvalidArgumentError if there is no
// current document, or no matching link.
func (b *Browser) ClickLink(ctx context.Context, text string) (*htmlquery.Document, error) {
	if b.lastDoc == nil {
		return nil, invalidArgumentErrorf("no document to search for a link matching %q", text)
	}
	link, ok := b.lastDoc.FindLinkByText(text)
	if !ok {
		return nil, invalidArgumentErrorf("no link found matching %q", text)
	}
	return b.Click(ctx, link)
}

// Submit dispatches form with values merged over its default field
// values (values wins on conflict) and headers folded into the server
// parameters for this call only.
func (b *Browser) Submit(ctx context.Context, form *htmlquery.Form, values request.Values, headers request.ServerParams) (*htmlquery.Document, error) {
	if form == nil {
		return nil, invalidArgumentErrorf("submit requires a non-nil form")
	}
	fields := form.Fields.Clone()
	for k, v := range values {
		fields[k] = v
	}
	return b.Request(ctx, form.Method, form.Action.String(), fields, nil, headers, nil, true)
}

// SubmitForm locates the first form in the current document
// containing a button labeled buttonText (as matched by
// htmlquery.Document.FindFormByButtonText), optionally
// overriding its method, and submits it with values and headers as
// Submit does. It fails with an InvalidArgumentError if there is no
// current document, or no matching form.
func (b *Browser) SubmitForm(ctx context.Context, buttonText string, values request.Values, method string, headers request.ServerParams) (*htmlquery.Document, error) {
	if b.lastDoc == nil {
		return nil, invalidArgumentErrorf("no document to search for a form with submit button %q", buttonText)
	}
	form, ok := b.lastDoc.FindFormByButtonText(buttonText)
	if !ok {
		return nil, invalidArgumentErrorf("no form found with submit button %q", buttonText)
	}
	if method != "" {
		form.Method = strings.ToUpper(method)
	}
	return b.Submit(ctx, form, values, headers)
}
