// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains types for event handling.
package event

// Event is the marker interface for events.
type Event interface {
	ImplementsEvent()
}

// Status reports whether a widget handled an event.
type Status uint8

const (
	// Ignored means the event was not handled. It is the
	// normal outcome for most widgets.
	Ignored Status = iota
	// Captured means the event was handled and should not
	// trigger further behavior.
	Captured
)

// Merge combines the statuses of two handlers of the same event.
// Captured dominates.
func (s Status) Merge(s2 Status) Status {
	if s == Captured || s2 == Captured {
		return Captured
	}
	return Ignored
}

// MergeAll merges a list of statuses. The result of an empty
// list is Ignored.
func MergeAll(statuses ...Status) Status {
	s := Ignored
	for _, s2 := range statuses {
		s = s.Merge(s2)
	}
	return s
}

func (s Status) String() string {
	switch s {
	case Ignored:
		return "Ignored"
	case Captured:
		return "Captured"
	default:
		panic("unknown status")
	}
}
