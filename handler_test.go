// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/browserkit/browserkit/request"
)

func TestHandlerGroup_NilGroupRunIsNoop(t *testing.T) {
	var g *HandlerGroup
	assert.NotPanics(t, func() { g.run(BeforeNavigate, &request.Hop{}) })
}

func TestHandlerGroup_EmptyGroupRunIsNoop(t *testing.T) {
	g := &HandlerGroup{}
	assert.NotPanics(t, func() { g.run(BeforeNavigate, &request.Hop{}) })
}

func TestHandlerGroup_RunsHandlersInOrderForEvent(t *testing.T) {
	g := &HandlerGroup{}
	var order []string
	g.PushBack(BeforeDispatch, HandlerFunc(func(_ Event, _ *request.Hop) { order = append(order, "first") }))
	g.PushBack(BeforeDispatch, HandlerFunc(func(_ Event, _ *request.Hop) { order = append(order, "second") }))
	g.PushBack(AfterDispatch, HandlerFunc(func(_ Event, _ *request.Hop) { order = append(order, "wrong-event") }))

	g.run(BeforeDispatch, &request.Hop{})
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestHandlerGroup_PushBackNilPanics(t *testing.T) {
	g := &HandlerGroup{}
	assert.Panics(t, func() { g.PushBack(BeforeNavigate, nil) })
}

func TestHandlerGroup_HandlerReceivesHop(t *testing.T) {
	g := &HandlerGroup{}
	var got *request.Hop
	g.PushBack(AfterDispatch, HandlerFunc(func(_ Event, h *request.Hop) { got = h }))

	hop := &request.Hop{RedirectCount: 3}
	g.run(AfterDispatch, hop)
	assert.Same(t, hop, got)
}
