// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package transient classifies errors returned by browserkit's
// transport adapter as transient or non-transient. Browser.Request
// never retries a failed hop on its own, but transient.Categorize is
// still useful for logging: a handler installed on
// browser.AfterDispatch can bucket a transport failure as a timeout, a
// refused connection, or a reset connection without browserkit having
// to parse syscall.Errno itself at every call site.
//
// Package transient is extremely lightweight, as it depends only on
// the standard library packages "errors" and "syscall", so it doesn't
// bring any significant dependencies when imported as a standalone
// package.
package transient
