// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package browser

import (
	"github.com/browserkit/browserkit/request"
)

// A HandlerGroup is a group of event handler chains which can be
// installed on a Browser via its Handlers field.
type HandlerGroup struct {
	handlers [][]Handler
}

// PushBack adds an event handler to the back of the event handler
// chain for a specific event type.
func (g *HandlerGroup) PushBack(evt Event, h Handler) {
	if h == nil {
		panic("browser: nil handler")
	}

	if g.handlers == nil {
		g.handlers = make([][]Handler, numEvents)
	}

	g.handlers[evt] = append(g.handlers[evt], h)
}

func (g *HandlerGroup) run(evt Event, h *request.Hop) {
	if g == nil {
		return
	}
	i := int(evt)
	if i < len(g.handlers) {
		for _, handler := range g.handlers[i] {
			handler.Handle(evt, h)
		}
	}
}

// A Handler handles the occurrence of an event during a Browser
// navigation.
type Handler interface {
	Handle(Event, *request.Hop)
}

// The HandlerFunc type is an adapter to allow the use of ordinary
// functions as event handlers.
type HandlerFunc func(Event, *request.Hop)

// Handle calls f(evt, h).
func (f HandlerFunc) Handle(evt Event, h *request.Hop) {
	f(evt, h)
}
