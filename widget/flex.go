// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"golang.org/x/exp/slices"

	"flexui.org/f32"
	"flexui.org/io/event"
	"flexui.org/io/pointer"
	"flexui.org/layout"
	"flexui.org/op"
	"flexui.org/text"
	"flexui.org/unit"
)

// box holds the configuration and behavior shared by Column and Row.
type box struct {
	spacing   float32
	padding   layout.Inset
	width     unit.Length
	height    unit.Length
	max       float32
	alignment layout.Alignment
	children  []Widget
}

// Column distributes its children vertically.
type Column struct {
	box
}

// Row distributes its children horizontally.
type Row struct {
	box
}

var (
	_ Parent    = Column{}
	_ Operator  = Column{}
	_ Handler   = Column{}
	_ Hinter    = Column{}
	_ Overlayer = Column{}
	_ Measurer  = Column{}
)

func newBox(children []Widget) box {
	return box{max: f32.Inf, children: slices.Clip(children)}
}

// NewColumn returns a column of children, shrinking to its content.
func NewColumn(children ...Widget) Column {
	return Column{newBox(children)}
}

// NewRow returns a row of children, shrinking to its content.
func NewRow(children ...Widget) Row {
	return Row{newBox(children)}
}

// WithSpacing sets the vertical spacing between children.
func (c Column) WithSpacing(v float32) Column {
	c.spacing = v
	return c
}

// WithPadding sets the padding around the children.
func (c Column) WithPadding(in layout.Inset) Column {
	c.padding = in
	return c
}

// WithWidth sets the width policy.
func (c Column) WithWidth(w unit.Length) Column {
	c.width = w
	return c
}

// WithHeight sets the height policy.
func (c Column) WithHeight(h unit.Length) Column {
	c.height = h
	return c
}

// WithMaxWidth sets the maximum width.
func (c Column) WithMaxWidth(v float32) Column {
	c.max = v
	return c
}

// WithAlignment sets the horizontal alignment of the children.
func (c Column) WithAlignment(a layout.Alignment) Column {
	c.alignment = a
	return c
}

// Push adds a child. The column is copied; the receiver is left
// unchanged.
func (c Column) Push(child Widget) Column {
	c.children = append(slices.Clip(c.children), child)
	return c
}

// WithSpacing sets the horizontal spacing between children.
func (r Row) WithSpacing(v float32) Row {
	r.spacing = v
	return r
}

// WithPadding sets the padding around the children.
func (r Row) WithPadding(in layout.Inset) Row {
	r.padding = in
	return r
}

// WithWidth sets the width policy.
func (r Row) WithWidth(w unit.Length) Row {
	r.width = w
	return r
}

// WithHeight sets the height policy.
func (r Row) WithHeight(h unit.Length) Row {
	r.height = h
	return r
}

// WithMaxHeight sets the maximum height.
func (r Row) WithMaxHeight(v float32) Row {
	r.max = v
	return r
}

// WithAlignment sets the vertical alignment of the children.
func (r Row) WithAlignment(a layout.Alignment) Row {
	r.alignment = a
	return r
}

// Push adds a child. The row is copied; the receiver is left
// unchanged.
func (r Row) Push(child Widget) Row {
	r.children = append(slices.Clip(r.children), child)
	return r
}

func (c Column) Layout(m text.Measurer, l layout.Limits) layout.Node {
	return c.resolve(m, l.MaxWidth(c.max), layout.Vertical, layout.PerformLayout)
}

func (c Column) Measure(m text.Measurer, l layout.Limits) f32.Size {
	return c.resolve(m, l.MaxWidth(c.max), layout.Vertical, layout.MeasureSize).Size()
}

func (r Row) Layout(m text.Measurer, l layout.Limits) layout.Node {
	return r.resolve(m, l.MaxHeight(r.max), layout.Horizontal, layout.PerformLayout)
}

func (r Row) Measure(m text.Measurer, l layout.Limits) f32.Size {
	return r.resolve(m, l.MaxHeight(r.max), layout.Horizontal, layout.MeasureSize).Size()
}

func (b box) resolve(m text.Measurer, l layout.Limits, axis layout.Axis, mode layout.Mode) layout.Node {
	l = l.Width(b.width).Height(b.height)
	f := layout.Flex{
		Axis:      axis,
		Spacing:   b.spacing,
		Padding:   b.padding,
		Alignment: b.alignment,
	}
	return f.Resolve(l, items{m: m, ws: b.children}, mode)
}

func (b box) Width() unit.Length  { return b.width }
func (b box) Height() unit.Length { return b.height }

func (b box) Children() []Widget {
	return b.children
}

func (b box) Operate(t *Tree, l layout.Layout, m text.Measurer, o Operation) {
	o.Container("", func(o Operation) {
		for i, c := range b.children {
			Operate(c, &t.Children[i], l.Child(i), m, o)
		}
	})
}

func (b box) Event(t *Tree, e event.Event, l layout.Layout, c Cursor, m text.Measurer, sh *Shell) event.Status {
	status := event.Ignored
	for i, child := range b.children {
		status = status.Merge(Event(child, &t.Children[i], e, l.Child(i), c, m, sh))
	}
	return status
}

func (b box) Hint(t *Tree, l layout.Layout, c Cursor, viewport f32.Rectangle, m text.Measurer) pointer.Cursor {
	cursor := pointer.CursorDefault
	for i, child := range b.children {
		cursor = pointer.MaxCursor(cursor, Hint(child, &t.Children[i], l.Child(i), c, viewport, m))
	}
	return cursor
}

func (b box) Draw(t *Tree, r op.Renderer, th *Theme, l layout.Layout, c Cursor, viewport f32.Rectangle) {
	for i, child := range b.children {
		child.Draw(&t.Children[i], r, th, l.Child(i), c, viewport)
	}
}

func (b box) Overlay(t *Tree, l layout.Layout, m text.Measurer) Overlay {
	return OverlayFromChildren(b.children, t, l, m)
}
