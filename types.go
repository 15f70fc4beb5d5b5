// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package browser

import "github.com/browserkit/browserkit/htmlquery"

// Crawler, Link, and Form are aliases for the corresponding htmlquery
// types, so most callers never need to import package htmlquery
// directly just to type a variable that holds what GetCrawler,
// ClickLink, or SubmitForm hands back.
type (
	Crawler = htmlquery.Document
	Link    = htmlquery.Link
	Form    = htmlquery.Form
)
