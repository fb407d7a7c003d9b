// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"flexui.org/f32"
	"flexui.org/layout"
	"flexui.org/op"
	"flexui.org/op/paint"
	"flexui.org/text"
	"flexui.org/unit"
)

// Text is a leaf widget displaying a string.
type Text struct {
	content string
	size    float32
	width   unit.Length
	height  unit.Length
	color   *color.NRGBA
}

// NewText returns a text widget of content, shrinking to fit it.
func NewText(content string) Text {
	return Text{content: content}
}

// WithSize sets the text size in pixels.
func (t Text) WithSize(size float32) Text {
	t.size = size
	return t
}

// WithWidth sets the width policy.
func (t Text) WithWidth(w unit.Length) Text {
	t.width = w
	return t
}

// WithHeight sets the height policy.
func (t Text) WithHeight(h unit.Length) Text {
	t.height = h
	return t
}

// WithColor sets the text color. Text without a color uses the
// foreground of the theme.
func (t Text) WithColor(c color.NRGBA) Text {
	t.color = &c
	return t
}

// Content returns the text.
func (t Text) Content() string {
	return t.content
}

func (t Text) Width() unit.Length  { return t.width }
func (t Text) Height() unit.Length { return t.height }

func (t Text) Layout(m text.Measurer, l layout.Limits) layout.Node {
	l = l.Width(t.width).Height(t.height)
	sz := m.MeasureText(t.content, t.textSize(), l.Max)
	return layout.NewNode(l.Constrain(sz))
}

func (t Text) Draw(tr *Tree, r op.Renderer, th *Theme, l layout.Layout, c Cursor, viewport f32.Rectangle) {
	col := th.Fg
	if t.color != nil {
		col = *t.color
	}
	r.DrawPrimitive(paint.Text{
		Content: t.content,
		Rect:    l.Bounds(),
		Size:    t.textSize(),
		Color:   col,
	})
}

func (t Text) textSize() float32 {
	if t.size == 0 {
		return DefaultTextSize
	}
	return t.size
}
