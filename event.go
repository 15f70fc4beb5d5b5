// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package browser

// An Event identifies the event type when installing or running a
// Handler. Install event handlers in a Browser's Handlers field to
// extend it with custom functionality, such as logging every hop a
// navigation makes.
type Event int

const (
	// BeforeNavigate identifies the event that occurs before a
	// user-initiated navigation (Request, Click, Submit, Back,
	// Forward, Reload, ...) dispatches its first hop.
	//
	// When Browser fires BeforeNavigate, the hop's Request field is
	// set to the hop about to be sent, and RedirectCount is 0.
	BeforeNavigate Event = iota
	// BeforeDispatch identifies the event that occurs before every
	// individual hop is sent, including hops chased automatically by
	// a redirect or meta-refresh.
	BeforeDispatch
	// AfterDispatch identifies the event that occurs after every hop
	// concludes, regardless of whether it concluded successfully.
	//
	// Exactly one of the hop's Response and Err fields is non-nil when
	// AfterDispatch fires.
	AfterDispatch
	// BeforeRedirect identifies the event that occurs after a hop's
	// response has been classified as worth chasing (a 30x Location,
	// or a zero-timeout meta-refresh) and the next hop has been built,
	// but before that next hop is dispatched.
	BeforeRedirect
	// AfterNavigate identifies the event that occurs after a
	// user-initiated navigation has fully settled: either it stopped
	// chasing redirects, or it failed.
	AfterNavigate
	// eventSentinel provides the total number of events typed as an
	// Event.
	eventSentinel

	// numEvents provides the total number of events typed as an int.
	numEvents = int(eventSentinel)
)

var eventNames = []string{
	"BeforeNavigate",
	"BeforeDispatch",
	"AfterDispatch",
	"BeforeRedirect",
	"AfterNavigate",
}

// Events returns a slice containing all events which can occur during
// a Browser navigation, in the order in which they would occur.
func Events() []Event {
	return []Event{
		BeforeNavigate,
		BeforeDispatch,
		AfterDispatch,
		BeforeRedirect,
		AfterNavigate,
	}
}

// Name returns the name of the event.
func (evt Event) Name() string {
	return eventNames[int(evt)]
}

// String returns the name of the event.
func (evt Event) String() string {
	return evt.Name()
}
