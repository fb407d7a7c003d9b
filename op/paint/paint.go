// SPDX-License-Identifier: Unlicense OR MIT

package paint

import (
	"fmt"
	"image/color"

	"flexui.org/f32"
	"flexui.org/op"
)

// Quad fills a rectangle with a color.
type Quad struct {
	Rect  f32.Rectangle
	Color color.NRGBA
	// Radius is the corner radius.
	Radius float32
	// BorderWidth is the width of the border drawn inside Rect.
	BorderWidth float32
	BorderColor color.NRGBA
}

// Vertex is a corner of a Mesh triangle.
type Vertex struct {
	Position f32.Point
	Color    color.NRGBA
}

// Mesh draws triangles with colors interpolated between
// their vertices.
type Mesh struct {
	// Origin is added to every vertex position.
	Origin   f32.Point
	Vertices []Vertex
	// Indices lists the vertices of each triangle, three
	// by three.
	Indices []uint32
}

// Text draws Content inside Rect.
type Text struct {
	Content string
	Rect    f32.Rectangle
	// Size is the text size in pixels.
	Size  float32
	Color color.NRGBA
}

// Fill returns a Quad filling r with c.
func Fill(r f32.Rectangle, c color.NRGBA) Quad {
	return Quad{Rect: r, Color: c}
}

func (q Quad) Offset(o f32.Point) op.Primitive {
	q.Rect = q.Rect.Add(o)
	return q
}

func (m Mesh) Offset(o f32.Point) op.Primitive {
	m.Origin = m.Origin.Add(o)
	return m
}

func (t Text) Offset(o f32.Point) op.Primitive {
	t.Rect = t.Rect.Add(o)
	return t
}

// Bounds returns the smallest rectangle enclosing every triangle.
func (m Mesh) Bounds() f32.Rectangle {
	var b f32.Rectangle
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			continue
		}
		p := m.Vertices[idx].Position.Add(m.Origin)
		r := f32.Rectangle{Min: p, Max: p}
		if i == 0 {
			b = r
			continue
		}
		b.Min.X, b.Min.Y = minf(b.Min.X, p.X), minf(b.Min.Y, p.Y)
		b.Max.X, b.Max.Y = maxf(b.Max.X, p.X), maxf(b.Max.Y, p.Y)
	}
	return b
}

// Triangles returns the number of complete triangles.
func (m Mesh) Triangles() int {
	return len(m.Indices) / 3
}

func (q Quad) String() string {
	s := fmt.Sprintf("quad %v %s", q.Rect, hex(q.Color))
	if q.Radius > 0 {
		s += fmt.Sprintf(" radius %g", q.Radius)
	}
	if q.BorderWidth > 0 {
		s += fmt.Sprintf(" border %g %s", q.BorderWidth, hex(q.BorderColor))
	}
	return s
}

func (m Mesh) String() string {
	return fmt.Sprintf("mesh %v %d vertices %d triangles", m.Bounds(), len(m.Vertices), m.Triangles())
}

func (t Text) String() string {
	return fmt.Sprintf("text %v %q size %g %s", t.Rect, t.Content, t.Size, hex(t.Color))
}

func hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
