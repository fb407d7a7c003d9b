// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"flexui.org/f32"
)

// Cursor is the position of the pointer. The zero Cursor is not over
// the user interface.
type Cursor struct {
	Position  f32.Point
	Available bool
}

// At returns the cursor at p.
func At(p f32.Point) Cursor {
	return Cursor{Position: p, Available: true}
}

// In reports whether the cursor is available and inside r.
func (c Cursor) In(r f32.Rectangle) bool {
	return c.Available && r.Contains(c.Position)
}

// Offset returns the cursor moved by v. Unavailable cursors are
// returned unchanged.
func (c Cursor) Offset(v f32.Point) Cursor {
	if c.Available {
		c.Position = c.Position.Add(v)
	}
	return c
}

func (c Cursor) String() string {
	if !c.Available {
		return "unavailable"
	}
	return c.Position.String()
}
