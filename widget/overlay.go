// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"flexui.org/f32"
	"flexui.org/io/event"
	"flexui.org/io/pointer"
	"flexui.org/layout"
	"flexui.org/op"
	"flexui.org/text"
)

// Overlay is content drawn above the widget tree, such as a tooltip
// or a menu. Overlays are laid out in absolute coordinates and
// receive events before the tree.
type Overlay interface {
	// Layout returns the node of the overlay, positioned absolutely
	// within a window of the given size.
	Layout(m text.Measurer, bounds f32.Size) layout.Node
	Draw(r op.Renderer, th *Theme, l layout.Layout, c Cursor)
	Event(e event.Event, l layout.Layout, c Cursor, m text.Measurer, sh *Shell) event.Status
	Hint(l layout.Layout, c Cursor, viewport f32.Rectangle, m text.Measurer) pointer.Cursor
}

// OverlayFromChildren returns the overlay of the last child
// producing one, in child order. Later children are drawn above
// earlier ones, so their overlay takes precedence.
func OverlayFromChildren(children []Widget, t *Tree, l layout.Layout, m text.Measurer) Overlay {
	var o Overlay
	for i, c := range children {
		if co := OverlayOf(c, &t.Children[i], l.Child(i), m); co != nil {
			o = co
		}
	}
	return o
}

// translated moves an overlay by an offset, for overlays of
// content drawn translated, such as scrolled content.
type translated struct {
	o      Overlay
	offset f32.Point
}

func (t translated) Layout(m text.Measurer, bounds f32.Size) layout.Node {
	n := t.o.Layout(m, bounds)
	return n.Moved(n.Bounds().Min.Add(t.offset))
}

func (t translated) Draw(r op.Renderer, th *Theme, l layout.Layout, c Cursor) {
	t.o.Draw(r, th, l, c)
}

func (t translated) Event(e event.Event, l layout.Layout, c Cursor, m text.Measurer, sh *Shell) event.Status {
	return t.o.Event(e, l, c, m, sh)
}

func (t translated) Hint(l layout.Layout, c Cursor, viewport f32.Rectangle, m text.Measurer) pointer.Cursor {
	return t.o.Hint(l, c, viewport, m)
}
