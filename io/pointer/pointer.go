// SPDX-License-Identifier: Unlicense OR MIT

package pointer

import (
	"strings"

	"flexui.org/f32"
	"flexui.org/io/key"
)

// Event is a pointer event.
type Event struct {
	Kind Kind
	// Buttons are the set of pressed mouse buttons for this event.
	Buttons Buttons
	// Position is the coordinates of the event in the coordinate
	// space of the widget tree.
	Position f32.Point
	// Scroll is the scroll amount, if any. Positive values scroll
	// content towards the end.
	Scroll f32.Point
	// Modifiers is the set of active modifiers when
	// the event occurred.
	Modifiers key.Modifiers
}

// Kind of an Event.
type Kind uint

// Buttons is a set of mouse buttons
type Buttons uint8

// Cursor denotes a pre-defined cursor shape, hinted by widgets
// under the pointer.
//
// Cursors are ordered by precedence: when several widgets hint a
// cursor, MaxCursor picks the one with the highest value.
type Cursor byte

// The cursors correspond to CSS pointer naming.
const (
	// CursorDefault is the default cursor.
	CursorDefault Cursor = iota
	// CursorText is for selecting and inserting text.
	CursorText
	// CursorPointer is for a link or a button.
	// Usually displayed as a pointing hand.
	CursorPointer
	// CursorCrosshair is for a precise location.
	CursorCrosshair
	// CursorGrab is for content that can be grabbed (dragged to be moved).
	// Usually displayed as an open hand.
	CursorGrab
	// CursorGrabbing is for content that is being grabbed (dragged to be moved).
	// Usually displayed as a closed hand.
	CursorGrabbing
	// CursorColResize is for vertical resize.
	CursorColResize
	// CursorRowResize is for horizontal resize.
	CursorRowResize
	// CursorNotAllowed is shown when the request action cannot be carried out.
	CursorNotAllowed
	// CursorWait is shown when the program is busy and user cannot interact.
	CursorWait
)

const (
	// Press of a pointer.
	Press Kind = 1 << iota
	// Release of a pointer.
	Release
	// Move of a pointer.
	Move
	// Scroll of a pointer.
	Scroll
	// Pointer leaves the window.
	Leave
)

const (
	// ButtonPrimary is the primary button, usually the left button for a
	// right-handed user.
	ButtonPrimary Buttons = 1 << iota
	// ButtonSecondary is the secondary button, usually the right button for a
	// right-handed user.
	ButtonSecondary
	// ButtonTertiary is the tertiary button, usually the middle button.
	ButtonTertiary
)

// MaxCursor returns the cursor of highest precedence.
func MaxCursor(cursors ...Cursor) Cursor {
	c := CursorDefault
	for _, c2 := range cursors {
		if c2 > c {
			c = c2
		}
	}
	return c
}

func (t Kind) String() string {
	var buf strings.Builder
	for tt := Kind(1); tt > 0 && tt <= Leave; tt <<= 1 {
		if t&tt > 0 {
			if buf.Len() > 0 {
				buf.WriteByte('|')
			}
			buf.WriteString((t & tt).string())
		}
	}
	return buf.String()
}

func (t Kind) string() string {
	switch t {
	case Press:
		return "Press"
	case Release:
		return "Release"
	case Move:
		return "Move"
	case Scroll:
		return "Scroll"
	case Leave:
		return "Leave"
	default:
		panic("unknown Type")
	}
}

// Contain reports whether the set b contains
// all of the buttons.
func (b Buttons) Contain(buttons Buttons) bool {
	return b&buttons == buttons
}

func (b Buttons) String() string {
	var strs []string
	if b.Contain(ButtonPrimary) {
		strs = append(strs, "ButtonPrimary")
	}
	if b.Contain(ButtonSecondary) {
		strs = append(strs, "ButtonSecondary")
	}
	if b.Contain(ButtonTertiary) {
		strs = append(strs, "ButtonTertiary")
	}
	return strings.Join(strs, "|")
}

func (c Cursor) String() string {
	switch c {
	case CursorDefault:
		return "Default"
	case CursorText:
		return "Text"
	case CursorPointer:
		return "Pointer"
	case CursorCrosshair:
		return "Crosshair"
	case CursorGrab:
		return "Grab"
	case CursorGrabbing:
		return "Grabbing"
	case CursorColResize:
		return "ColResize"
	case CursorRowResize:
		return "RowResize"
	case CursorNotAllowed:
		return "NotAllowed"
	case CursorWait:
		return "Wait"
	default:
		panic("unknown Type")
	}
}

func (Event) ImplementsEvent() {}
