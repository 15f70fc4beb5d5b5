// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package browser

import "fmt"

// A LogicError reports a programming-error-style misuse of a Browser:
// calling FollowRedirect with nothing pending, exceeding the redirect
// budget, or similar fail-fast conditions that do not depend on the
// content of any particular page.
type LogicError struct {
	Reason string
}

func (e *LogicError) Error() string {
	return fmt.Sprintf("browser: %s", e.Reason)
}

func logicErrorf(format string, args ...interface{}) error {
	return &LogicError{Reason: fmt.Sprintf(format, args...)}
}

// An InvalidArgumentError reports an argument a Browser cannot act on:
// a link or form the caller asked for by text that is not in the
// current document, an invalid HTTP method, an unsupported content
// type, a nil form, or a click target that is neither a Link nor a
// Form.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("browser: %s", e.Reason)
}

func invalidArgumentErrorf(format string, args ...interface{}) error {
	return &InvalidArgumentError{Reason: fmt.Sprintf(format, args...)}
}
