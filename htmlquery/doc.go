// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package htmlquery is browserkit's HTML query façade: the external
collaborator the browser core hands a response body to once a
navigation lands, so that callers can find a link or a form by
visible text without browserkit itself carrying a DOM implementation.

It is a thin wrapper over goquery (itself built on
golang.org/x/net/html), offering lookups by visible text (a link by
its text, alt, or id; a form by its button label). It has no lookup
by CSS selector.

The façade is read-only: it never mutates the document, and it never
issues requests of its own. The browser core is the only thing that
dispatches a Click or a Submit once htmlquery has located the target.
*/
package htmlquery
