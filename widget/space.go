// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"flexui.org/f32"
	"flexui.org/layout"
	"flexui.org/op"
	"flexui.org/text"
	"flexui.org/unit"
)

// Space is an empty widget taking space.
type Space struct {
	width, height unit.Length
}

// NewSpace returns a space of the given policies.
func NewSpace(w, h unit.Length) Space {
	return Space{width: w, height: h}
}

// HorizontalSpace returns a space filling the width between
// siblings of a Row.
func HorizontalSpace(w unit.Length) Space {
	return Space{width: w}
}

// VerticalSpace returns a space filling the height between
// siblings of a Column.
func VerticalSpace(h unit.Length) Space {
	return Space{height: h}
}

func (s Space) Width() unit.Length  { return s.width }
func (s Space) Height() unit.Length { return s.height }

func (s Space) Layout(m text.Measurer, l layout.Limits) layout.Node {
	return layout.NewNode(l.Resolve(s.width, s.height, f32.Size{}))
}

func (s Space) Draw(t *Tree, r op.Renderer, th *Theme, l layout.Layout, c Cursor, viewport f32.Rectangle) {}
