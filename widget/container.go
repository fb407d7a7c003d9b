// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"flexui.org/f32"
	"flexui.org/io/event"
	"flexui.org/io/pointer"
	"flexui.org/layout"
	"flexui.org/op"
	"flexui.org/op/paint"
	"flexui.org/text"
	"flexui.org/unit"
)

// Container aligns a single child within its bounds and optionally
// fills them with a background.
type Container struct {
	child      Widget
	padding    layout.Inset
	width      unit.Length
	height     unit.Length
	maxWidth   float32
	maxHeight  float32
	alignX     layout.Alignment
	alignY     layout.Alignment
	background *color.NRGBA
	radius     float32
}

// NewContainer returns a container shrinking to child.
func NewContainer(child Widget) Container {
	return Container{child: child, maxWidth: f32.Inf, maxHeight: f32.Inf}
}

// WithPadding sets the padding around the child.
func (c Container) WithPadding(in layout.Inset) Container {
	c.padding = in
	return c
}

// WithWidth sets the width policy.
func (c Container) WithWidth(w unit.Length) Container {
	c.width = w
	return c
}

// WithHeight sets the height policy.
func (c Container) WithHeight(h unit.Length) Container {
	c.height = h
	return c
}

// WithMaxWidth sets the maximum width.
func (c Container) WithMaxWidth(v float32) Container {
	c.maxWidth = v
	return c
}

// WithMaxHeight sets the maximum height.
func (c Container) WithMaxHeight(v float32) Container {
	c.maxHeight = v
	return c
}

// WithAlignX sets the horizontal alignment of the child.
func (c Container) WithAlignX(a layout.Alignment) Container {
	c.alignX = a
	return c
}

// WithAlignY sets the vertical alignment of the child.
func (c Container) WithAlignY(a layout.Alignment) Container {
	c.alignY = a
	return c
}

// CenterX centers the child horizontally.
func (c Container) CenterX() Container {
	return c.WithAlignX(layout.Middle)
}

// CenterY centers the child vertically.
func (c Container) CenterY() Container {
	return c.WithAlignY(layout.Middle)
}

// WithBackground fills the container with col, with corners
// rounded by radius.
func (c Container) WithBackground(col color.NRGBA, radius float32) Container {
	c.background = &col
	c.radius = radius
	return c
}

func (c Container) Width() unit.Length  { return c.width }
func (c Container) Height() unit.Length { return c.height }

func (c Container) Layout(m text.Measurer, l layout.Limits) layout.Node {
	return c.resolve(m, l, layout.PerformLayout)
}

func (c Container) Measure(m text.Measurer, l layout.Limits) f32.Size {
	return c.resolve(m, l, layout.MeasureSize).Size()
}

func (c Container) resolve(m text.Measurer, l layout.Limits, mode layout.Mode) layout.Node {
	l = l.MaxWidth(c.maxWidth).MaxHeight(c.maxHeight).Width(c.width).Height(c.height)
	s := layout.Stack{AlignX: c.alignX, AlignY: c.alignY, Padding: c.padding}
	return s.Resolve(l, items{m: m, ws: []Widget{c.child}}, mode)
}

func (c Container) Children() []Widget {
	return []Widget{c.child}
}

func (c Container) Operate(t *Tree, l layout.Layout, m text.Measurer, o Operation) {
	o.Container("", func(o Operation) {
		Operate(c.child, &t.Children[0], l.Child(0), m, o)
	})
}

func (c Container) Event(t *Tree, e event.Event, l layout.Layout, cur Cursor, m text.Measurer, sh *Shell) event.Status {
	return Event(c.child, &t.Children[0], e, l.Child(0), cur, m, sh)
}

func (c Container) Hint(t *Tree, l layout.Layout, cur Cursor, viewport f32.Rectangle, m text.Measurer) pointer.Cursor {
	return Hint(c.child, &t.Children[0], l.Child(0), cur, viewport, m)
}

func (c Container) Draw(t *Tree, r op.Renderer, th *Theme, l layout.Layout, cur Cursor, viewport f32.Rectangle) {
	if c.background != nil {
		r.DrawPrimitive(paint.Quad{Rect: l.Bounds(), Color: *c.background, Radius: c.radius})
	}
	c.child.Draw(&t.Children[0], r, th, l.Child(0), cur, viewport)
}

func (c Container) Overlay(t *Tree, l layout.Layout, m text.Measurer) Overlay {
	return OverlayOf(c.child, &t.Children[0], l.Child(0), m)
}
