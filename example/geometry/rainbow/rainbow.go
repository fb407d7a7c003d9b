// SPDX-License-Identifier: Unlicense OR MIT

// Package rainbow implements a widget drawing custom geometry: a
// square of eight colored triangles around a center vertex that
// follows the pointer.
package rainbow

import (
	"image/color"

	"flexui.org/f32"
	"flexui.org/layout"
	"flexui.org/op"
	"flexui.org/op/paint"
	"flexui.org/text"
	"flexui.org/unit"
	"flexui.org/widget"
)

// Rainbow fills the available width and is as high as it is wide.
type Rainbow struct{}

// New returns a Rainbow.
func New() Rainbow {
	return Rainbow{}
}

var (
	white   = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	red     = color.NRGBA{R: 0xff, A: 0xff}
	orange  = color.NRGBA{R: 0xff, G: 0x80, A: 0xff}
	yellow  = color.NRGBA{R: 0xff, G: 0xff, A: 0xff}
	green   = color.NRGBA{G: 0xff, A: 0xff}
	teal    = color.NRGBA{G: 0xff, B: 0x80, A: 0xff}
	blue    = color.NRGBA{G: 0x33, B: 0xff, A: 0xff}
	indigo  = color.NRGBA{R: 0x80, B: 0xff, A: 0xff}
	violet  = color.NRGBA{R: 0xbf, B: 0x80, A: 0xff}
	indices = []uint32{
		0, 1, 2, // top left
		0, 2, 3, // top
		0, 3, 4, // top right
		0, 4, 5, // right
		0, 5, 6, // bottom right
		0, 6, 7, // bottom
		0, 7, 8, // bottom left
		0, 8, 1, // left
	}
)

func (Rainbow) Width() unit.Length  { return unit.Fill }
func (Rainbow) Height() unit.Length { return unit.Shrink }

func (Rainbow) Layout(m text.Measurer, l layout.Limits) layout.Node {
	sz := l.Resolve(unit.Fill, unit.Shrink, f32.Size{})
	return layout.NewNode(f32.Sz(sz.Width, sz.Width))
}

func (Rainbow) Draw(t *widget.Tree, r op.Renderer, th *widget.Theme, l layout.Layout, c widget.Cursor, viewport f32.Rectangle) {
	b := l.Bounds()
	w, h := b.Dx(), b.Dy()
	center := f32.Pt(w/2, h/2)
	if c.In(b) {
		center = c.Position.Sub(b.Min)
	}
	mesh := paint.Mesh{
		Vertices: []paint.Vertex{
			{Position: center, Color: white},
			{Position: f32.Pt(0, 0), Color: red},
			{Position: f32.Pt(w/2, 0), Color: orange},
			{Position: f32.Pt(w, 0), Color: yellow},
			{Position: f32.Pt(w, h/2), Color: green},
			{Position: f32.Pt(w, h), Color: teal},
			{Position: f32.Pt(w/2, h), Color: blue},
			{Position: f32.Pt(0, h), Color: indigo},
			{Position: f32.Pt(0, h/2), Color: violet},
		},
		Indices: indices,
	}
	r.WithTranslation(b.Min, func() {
		r.DrawPrimitive(mesh)
	})
}
