// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package history implements browserkit's back/forward navigation
stack: an indexed sequence of user-initiated requests plus a cursor
integer, rather than a doubly-linked list.

Redirect hops are never pushed here (the browser core dispatches them
with changeHistory=false), so every Entry in a History is, by
construction, something a caller asked for directly: back() and
forward() never need to skip over anything.
*/
package history

import "github.com/browserkit/browserkit/request"

// An Entry is a snapshot of one user-initiated request, sufficient to
// re-dispatch it verbatim for back(), forward(), and reload().
type Entry struct {
	Method     string
	URL        string
	Parameters request.Values
	Files      map[string]*request.File
	Server     request.ServerParams
	Content    []byte
}

// NewEntry builds a History Entry from the user-initiated
// request.Request that started a navigation: the first hop, not any
// hop chased afterwards by a redirect or meta-refresh.
func NewEntry(r *request.Request) Entry {
	return Entry{
		Method:     r.Method,
		URL:        r.URL.String(),
		Parameters: r.Parameters.Clone(),
		Files:      r.Files,
		Server:     r.Server.Clone(),
		Content:    r.Content,
	}
}

// A History is a cursor-addressed sequence of Entry values.
//
// Its zero value is an empty history ready to use. It is not safe for
// concurrent use, matching the rest of browserkit.
type History struct {
	entries []Entry
	cursor  int // index of the current entry; -1 when empty
}

// New returns an empty History.
func New() *History {
	return &History{cursor: -1}
}

// IsEmpty reports whether the history has no entries.
func (h *History) IsEmpty() bool {
	return len(h.entries) == 0
}

// Len returns the number of entries currently in the history.
func (h *History) Len() int {
	return len(h.entries)
}

// Current returns the entry at the cursor and true, or the zero Entry
// and false if the history is empty.
func (h *History) Current() (Entry, bool) {
	if h.IsEmpty() {
		return Entry{}, false
	}
	return h.entries[h.cursor], true
}

// Push appends e as the new current entry, truncating any forward
// entries that existed past the current cursor position. This is what
// makes a fresh navigation after back() discard the abandoned forward
// branch, exactly like a real browser's history stack.
func (h *History) Push(e Entry) {
	if h.IsEmpty() {
		h.cursor = -1
	}
	h.entries = append(h.entries[:h.cursor+1], e)
	h.cursor = len(h.entries) - 1
}

// Back moves the cursor one step back and returns the entry now
// current, or returns (Entry{}, false) without moving the cursor if
// already at the oldest entry (or the history is empty).
func (h *History) Back() (Entry, bool) {
	if h.cursor <= 0 {
		return Entry{}, false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Forward moves the cursor one step forward and returns the entry now
// current, or returns (Entry{}, false) without moving the cursor if
// already at the newest entry (or the history is empty).
func (h *History) Forward() (Entry, bool) {
	if h.cursor < 0 || h.cursor >= len(h.entries)-1 {
		return Entry{}, false
	}
	h.cursor++
	return h.entries[h.cursor], true
}

// Clear empties the history, as required by restart().
func (h *History) Clear() {
	h.entries = nil
	h.cursor = -1
}
