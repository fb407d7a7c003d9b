// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"flexui.org/f32"
	"flexui.org/gesture"
	"flexui.org/io/event"
	"flexui.org/io/pointer"
	"flexui.org/layout"
	"flexui.org/op"
	"flexui.org/op/paint"
	"flexui.org/text"
	"flexui.org/unit"
)

// Tooltip shows a tip below its content while the pointer hovers it.
type Tooltip struct {
	content Widget
	tip     string
	gap     float32
}

type tooltipState struct {
	hover gesture.Hover
}

// tipPadding is the space between the tip text and its frame.
const tipPadding = 4

// NewTooltip returns a tooltip showing tip for content.
func NewTooltip(content Widget, tip string) Tooltip {
	return Tooltip{content: content, tip: tip, gap: 4}
}

// WithGap sets the distance between the content and the tip.
func (tt Tooltip) WithGap(gap float32) Tooltip {
	tt.gap = gap
	return tt
}

func (tt Tooltip) Width() unit.Length  { return tt.content.Width() }
func (tt Tooltip) Height() unit.Length { return tt.content.Height() }

func (tt Tooltip) State() any {
	return new(tooltipState)
}

func (tt Tooltip) Children() []Widget {
	return []Widget{tt.content}
}

func (tt Tooltip) Layout(m text.Measurer, l layout.Limits) layout.Node {
	n := tt.content.Layout(m, l)
	return layout.NewNodeWithChildren(n.Size(), []layout.Node{n})
}

func (tt Tooltip) Event(t *Tree, e event.Event, l layout.Layout, c Cursor, m text.Measurer, sh *Shell) event.Status {
	st := t.State.(*tooltipState)
	status := Event(tt.content, &t.Children[0], e, l.Child(0), c, m, sh)
	if pe, ok := e.(pointer.Event); ok {
		if st.hover.Update(pe, c.In(l.Bounds())) {
			sh.RequestRedraw()
		}
	}
	return status
}

func (tt Tooltip) Hint(t *Tree, l layout.Layout, c Cursor, viewport f32.Rectangle, m text.Measurer) pointer.Cursor {
	return Hint(tt.content, &t.Children[0], l.Child(0), c, viewport, m)
}

func (tt Tooltip) Draw(t *Tree, r op.Renderer, th *Theme, l layout.Layout, c Cursor, viewport f32.Rectangle) {
	tt.content.Draw(&t.Children[0], r, th, l.Child(0), c, viewport)
}

func (tt Tooltip) Operate(t *Tree, l layout.Layout, m text.Measurer, o Operation) {
	o.Container("", func(o Operation) {
		Operate(tt.content, &t.Children[0], l.Child(0), m, o)
	})
}

func (tt Tooltip) Overlay(t *Tree, l layout.Layout, m text.Measurer) Overlay {
	st := t.State.(*tooltipState)
	if st.hover.Hovered() {
		return tipOverlay{text: tt.tip, anchor: l.Bounds(), gap: tt.gap}
	}
	return OverlayOf(tt.content, &t.Children[0], l.Child(0), m)
}

// tipOverlay is the overlay of a hovered Tooltip.
type tipOverlay struct {
	text   string
	anchor f32.Rectangle
	gap    float32
}

func (o tipOverlay) Layout(m text.Measurer, bounds f32.Size) layout.Node {
	pad := layout.UniformInset(tipPadding)
	sz := m.MeasureText(o.text, DefaultTextSize, bounds).Add(pad.Size())
	pos := f32.Pt(o.anchor.Min.X, o.anchor.Max.Y+o.gap)
	// Keep the tip inside the window.
	pos.X = clampf(pos.X, 0, maxf(bounds.Width-sz.Width, 0))
	pos.Y = clampf(pos.Y, 0, maxf(bounds.Height-sz.Height, 0))
	return layout.NewNode(sz).Moved(pos)
}

func (o tipOverlay) Draw(r op.Renderer, th *Theme, l layout.Layout, c Cursor) {
	b := l.Bounds()
	r.DrawPrimitive(paint.Quad{Rect: b, Color: mulAlpha(th.Fg, 0xe0), Radius: 3})
	r.DrawPrimitive(paint.Text{
		Content: o.text,
		Rect: f32.Rectangle{
			Min: b.Min.Add(f32.Pt(tipPadding, tipPadding)),
			Max: b.Max.Sub(f32.Pt(tipPadding, tipPadding)),
		},
		Size:  DefaultTextSize,
		Color: th.Bg,
	})
}

func (o tipOverlay) Event(e event.Event, l layout.Layout, c Cursor, m text.Measurer, sh *Shell) event.Status {
	return event.Ignored
}

func (o tipOverlay) Hint(l layout.Layout, c Cursor, viewport f32.Rectangle, m text.Measurer) pointer.Cursor {
	return pointer.CursorDefault
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
