// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"flexui.org/f32"
	"flexui.org/gesture"
	"flexui.org/io/event"
	"flexui.org/io/key"
	"flexui.org/io/pointer"
	"flexui.org/layout"
	"flexui.org/op"
	"flexui.org/op/paint"
	"flexui.org/text"
	"flexui.org/unit"
)

// Button is a clickable widget wrapping its content. A button
// without a message is disabled.
type Button struct {
	id      ID
	content Widget
	onPress any
	width   unit.Length
	height  unit.Length
	padding layout.Inset
	radius  float32
}

type buttonState struct {
	click   gesture.Click
	focused bool
}

// NewButton returns a disabled button of content.
func NewButton(content Widget) Button {
	return Button{
		content: content,
		padding: layout.SymmetricInset(5, 10),
		radius:  4,
	}
}

// WithOnPress sets the message published when the button is pressed,
// enabling the button.
func (b Button) WithOnPress(msg any) Button {
	b.onPress = msg
	return b
}

// WithID sets the id for operations such as Focus.
func (b Button) WithID(id ID) Button {
	b.id = id
	return b
}

// WithWidth sets the width policy.
func (b Button) WithWidth(w unit.Length) Button {
	b.width = w
	return b
}

// WithHeight sets the height policy.
func (b Button) WithHeight(h unit.Length) Button {
	b.height = h
	return b
}

// WithPadding sets the padding around the content.
func (b Button) WithPadding(in layout.Inset) Button {
	b.padding = in
	return b
}

// Enabled reports whether the button publishes a message.
func (b Button) Enabled() bool {
	return b.onPress != nil
}

func (b Button) Width() unit.Length  { return b.width }
func (b Button) Height() unit.Length { return b.height }

func (b Button) State() any {
	return new(buttonState)
}

func (b Button) Children() []Widget {
	return []Widget{b.content}
}

func (b Button) Layout(m text.Measurer, l layout.Limits) layout.Node {
	return b.resolve(m, l, layout.PerformLayout)
}

func (b Button) Measure(m text.Measurer, l layout.Limits) f32.Size {
	return b.resolve(m, l, layout.MeasureSize).Size()
}

func (b Button) resolve(m text.Measurer, l layout.Limits, mode layout.Mode) layout.Node {
	s := layout.Stack{AlignX: layout.Middle, AlignY: layout.Middle, Padding: b.padding}
	return s.Resolve(l.Width(b.width).Height(b.height), items{m: m, ws: []Widget{b.content}}, mode)
}

func (st *buttonState) IsFocused() bool { return st.focused }
func (st *buttonState) Focus()          { st.focused = true }
func (st *buttonState) Unfocus()        { st.focused = false }

func (b Button) Event(t *Tree, e event.Event, l layout.Layout, c Cursor, m text.Measurer, sh *Shell) event.Status {
	if Event(b.content, &t.Children[0], e, l.Child(0), c, m, sh) == event.Captured {
		return event.Captured
	}
	if !b.Enabled() {
		return event.Ignored
	}
	st := t.State.(*buttonState)
	switch e := e.(type) {
	case pointer.Event:
		before := st.click.State()
		ce, ok := st.click.Update(e, c.In(l.Bounds()))
		if st.click.State() != before {
			sh.RequestRedraw()
		}
		if !ok {
			break
		}
		switch ce.Type {
		case gesture.TypePress:
			return event.Captured
		case gesture.TypeClick:
			sh.Publish(b.onPress)
			return event.Captured
		}
	case key.Event:
		if !st.focused || e.State != key.Press {
			break
		}
		if e.Name == key.NameReturn || e.Name == key.NameSpace {
			sh.Publish(b.onPress)
			return event.Captured
		}
	}
	return event.Ignored
}

func (b Button) Hint(t *Tree, l layout.Layout, c Cursor, viewport f32.Rectangle, m text.Measurer) pointer.Cursor {
	if b.Enabled() && c.In(l.Bounds()) {
		return pointer.CursorPointer
	}
	return Hint(b.content, &t.Children[0], l.Child(0), c, viewport, m)
}

func (b Button) Draw(t *Tree, r op.Renderer, th *Theme, l layout.Layout, c Cursor, viewport f32.Rectangle) {
	st := t.State.(*buttonState)
	bounds := l.Bounds()
	bg := th.ContrastBg
	switch {
	case !b.Enabled():
		bg = mulAlpha(bg, 0x60)
	case st.click.Pressed():
		bg = mix(bg, color.NRGBA{A: 0xff}, 0.2)
	case c.In(bounds):
		bg = mix(bg, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, 0.15)
	}
	q := paint.Quad{Rect: bounds, Color: bg, Radius: b.radius}
	if st.focused {
		q.BorderWidth = 2
		q.BorderColor = th.Fg
	}
	r.DrawPrimitive(q)
	b.content.Draw(&t.Children[0], r, th.Contrast(), l.Child(0), c, viewport)
}

func (b Button) Operate(t *Tree, l layout.Layout, m text.Measurer, o Operation) {
	o.Focusable(t.State.(*buttonState), b.id)
	o.Container(b.id, func(o Operation) {
		Operate(b.content, &t.Children[0], l.Child(0), m, o)
	})
}

func (b Button) Overlay(t *Tree, l layout.Layout, m text.Measurer) Overlay {
	return OverlayOf(b.content, &t.Children[0], l.Child(0), m)
}
