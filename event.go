// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpc

// An Event identifies the event type when installing or running a
// Handler. Install event handlers in a Client to extend it with custom
// functionality.
type Event int

const (
	// BeforeExecutionStart identifies the event that occurs before the
	// execution starts.
	//
	// When Client fires BeforeExecutionStart, the execution is
	// non-nil but the only field that has been set is the request.
	BeforeExecutionStart Event = iota
	// BeforeSend identifies the event that occurs immediately before
	// the request is passed to the backend.
	//
	// When Client fires BeforeSend, the cookie store snapshot has been
	// taken and, if the store is enabled and the jar is not empty, the
	// Cookie header has been set on the request. Handlers may modify
	// the request, for example to sign it.
	//
	// BeforeSend does not fire if the execution failed before reaching
	// the backend.
	BeforeSend
	// AfterSend identifies the event that occurs after the backend
	// returns, whether it succeeded or not.
	//
	// When Client fires AfterSend, exactly one of the execution's
	// response and error fields is non-nil.
	AfterSend
	// AfterCookieMerge identifies the event that occurs after the
	// Set-Cookie headers of a successful response have been merged
	// into the jar.
	//
	// AfterCookieMerge only fires when the cookie store is enabled for
	// the execution and the merge succeeded.
	AfterCookieMerge
	// AfterExecutionEnd identifies the event that occurs after the
	// execution ends.
	//
	// When Client fires AfterExecutionEnd, the execution is in its
	// final state and its end time is set.
	AfterExecutionEnd
	// eventSentinel provides the total number of events typed as an
	// Event.
	eventSentinel

	// numEvents provides the total number of events types as an int.
	numEvents = int(eventSentinel)
)

var eventNames = []string{
	"BeforeExecutionStart",
	"BeforeSend",
	"AfterSend",
	"AfterCookieMerge",
	"AfterExecutionEnd",
}

// Events returns a slice containing all events which can occur in an
// execution by Client, in the order in which they would occur.
func Events() []Event {
	return []Event{
		BeforeExecutionStart,
		BeforeSend,
		AfterSend,
		AfterCookieMerge,
		AfterExecutionEnd,
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
