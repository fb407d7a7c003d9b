// SPDX-License-Identifier: Unlicense OR MIT

/*
Package raster implements a software renderer for primitive lists.

A Rasterizer draws the quads, meshes and text runs of an op.Ops into
an *image.RGBA. Clip groups are drawn into a sub-image of the
destination. Text is set with the font of a text.Shaper, which also
breaks it into lines the same way it was measured for layout.

Note: the implementation is incomplete. Mesh colors are interpolated
per pixel; quad borders are not anti-aliased against rounded
corners of a different radius.
*/
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"flexui.org/f32"
	"flexui.org/op"
	"flexui.org/op/paint"
	"flexui.org/text"
)

// Rasterizer draws primitives into images.
type Rasterizer struct {
	shaper *text.Shaper
	faces  map[float32]font.Face

	scratch struct {
		mask *image.Alpha
		grad *image.NRGBA
	}
}

// New returns a Rasterizer drawing text with the font of shaper. A
// nil shaper skips text primitives.
func New(shaper *text.Shaper) *Rasterizer {
	return &Rasterizer{shaper: shaper, faces: make(map[float32]font.Face)}
}

// Frame draws the primitives of frame over frameBuf.
func (r *Rasterizer) Frame(frame *op.Ops, frameBuf *image.RGBA) {
	if frame == nil {
		return
	}
	r.draw(frame, frameBuf)
}

func (r *Rasterizer) draw(ops *op.Ops, dst *image.RGBA) {
	for _, p := range ops.List() {
		switch p := p.(type) {
		case op.ClipOp:
			clip := bounds(p.Rect).Intersect(dst.Bounds())
			if clip.Empty() {
				break
			}
			r.draw(p.Ops, dst.SubImage(clip).(*image.RGBA))
		case paint.Quad:
			r.quad(dst, p)
		case paint.Mesh:
			r.mesh(dst, p)
		case paint.Text:
			r.text(dst, p)
		}
	}
}

func (r *Rasterizer) quad(dst *image.RGBA, q paint.Quad) {
	b := bounds(q.Rect).Intersect(dst.Bounds())
	if b.Empty() {
		return
	}
	off := f32.Pt(-float32(b.Min.X), -float32(b.Min.Y))
	outer := q.Rect.Add(off)
	bw := q.BorderWidth
	if bw <= 0 {
		vr := vector.NewRasterizer(b.Dx(), b.Dy())
		vr.DrawOp = draw.Over
		roundRect(vr, outer, q.Radius, false)
		vr.Draw(dst, b, image.NewUniform(q.Color), image.Point{})
		return
	}
	inner := f32.Rectangle{
		Min: outer.Min.Add(f32.Pt(bw, bw)),
		Max: outer.Max.Sub(f32.Pt(bw, bw)),
	}
	innerRadius := float32(math.Max(float64(q.Radius-bw), 0))
	if !inner.Empty() {
		vr := vector.NewRasterizer(b.Dx(), b.Dy())
		vr.DrawOp = draw.Over
		roundRect(vr, inner, innerRadius, false)
		vr.Draw(dst, b, image.NewUniform(q.Color), image.Point{})
	}
	// The border is the outer shape minus the reversed inner shape.
	vr := vector.NewRasterizer(b.Dx(), b.Dy())
	vr.DrawOp = draw.Over
	roundRect(vr, outer, q.Radius, false)
	if !inner.Empty() {
		roundRect(vr, inner, innerRadius, true)
	}
	vr.Draw(dst, b, image.NewUniform(q.BorderColor), image.Point{})
}

// roundRect adds the path of a rectangle with rounded corners,
// clockwise or counter-clockwise if reverse is set.
func roundRect(vr *vector.Rasterizer, rect f32.Rectangle, radius float32, reverse bool) {
	rr := radius
	if h := min3(rect.Dx(), rect.Dy(), rr*2) / 2; h < rr {
		rr = h
	}
	if rr < 0 {
		rr = 0
	}
	x0, y0, x1, y1 := rect.Min.X, rect.Min.Y, rect.Max.X, rect.Max.Y
	if !reverse {
		vr.MoveTo(x0+rr, y0)
		vr.LineTo(x1-rr, y0)
		vr.QuadTo(x1, y0, x1, y0+rr)
		vr.LineTo(x1, y1-rr)
		vr.QuadTo(x1, y1, x1-rr, y1)
		vr.LineTo(x0+rr, y1)
		vr.QuadTo(x0, y1, x0, y1-rr)
		vr.LineTo(x0, y0+rr)
		vr.QuadTo(x0, y0, x0+rr, y0)
	} else {
		vr.MoveTo(x0+rr, y0)
		vr.QuadTo(x0, y0, x0, y0+rr)
		vr.LineTo(x0, y1-rr)
		vr.QuadTo(x0, y1, x0+rr, y1)
		vr.LineTo(x1-rr, y1)
		vr.QuadTo(x1, y1, x1, y1-rr)
		vr.LineTo(x1, y0+rr)
		vr.QuadTo(x1, y0, x1-rr, y0)
	}
	vr.ClosePath()
}

// mesh draws every triangle of m, interpolating the vertex colors.
func (r *Rasterizer) mesh(dst *image.RGBA, m paint.Mesh) {
	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0, i1, i2 := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		n := uint32(len(m.Vertices))
		if i0 >= n || i1 >= n || i2 >= n {
			continue
		}
		r.triangle(dst, m.Origin, m.Vertices[i0], m.Vertices[i1], m.Vertices[i2])
	}
}

func (r *Rasterizer) triangle(dst *image.RGBA, origin f32.Point, v0, v1, v2 paint.Vertex) {
	p0, p1, p2 := v0.Position.Add(origin), v1.Position.Add(origin), v2.Position.Add(origin)
	tb := f32.Rectangle{
		Min: f32.Pt(min3(p0.X, p1.X, p2.X), min3(p0.Y, p1.Y, p2.Y)),
		Max: f32.Pt(max3(p0.X, p1.X, p2.X), max3(p0.Y, p1.Y, p2.Y)),
	}
	b := bounds(tb).Intersect(dst.Bounds())
	if b.Empty() {
		return
	}
	area := cross(p1.Sub(p0), p2.Sub(p0))
	if area == 0 {
		return
	}
	mask := r.maskImage(b)
	vr := vector.NewRasterizer(b.Dx(), b.Dy())
	off := f32.Pt(-float32(b.Min.X), -float32(b.Min.Y))
	q0, q1, q2 := p0.Add(off), p1.Add(off), p2.Add(off)
	vr.MoveTo(q0.X, q0.Y)
	vr.LineTo(q1.X, q1.Y)
	vr.LineTo(q2.X, q2.Y)
	vr.ClosePath()
	vr.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	grad := r.gradImage(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := f32.Pt(float32(x)+.5, float32(y)+.5)
			w0 := cross(p1.Sub(c), p2.Sub(c)) / area
			w1 := cross(p2.Sub(c), p0.Sub(c)) / area
			w2 := 1 - w0 - w1
			grad.SetNRGBA(x, y, interpolate(v0.Color, v1.Color, v2.Color, w0, w1, w2))
		}
	}
	draw.DrawMask(dst, b, grad, b.Min, mask, image.Point{}, draw.Over)
}

func (r *Rasterizer) maskImage(b image.Rectangle) *image.Alpha {
	sz := image.Rect(0, 0, b.Dx(), b.Dy())
	m := r.scratch.mask
	if m == nil || len(m.Pix) < sz.Dx()*sz.Dy() {
		m = image.NewAlpha(sz)
		r.scratch.mask = m
	}
	m = &image.Alpha{Pix: m.Pix[:sz.Dx()*sz.Dy()], Stride: sz.Dx(), Rect: sz}
	for i := range m.Pix {
		m.Pix[i] = 0
	}
	return m
}

func (r *Rasterizer) gradImage(b image.Rectangle) *image.NRGBA {
	g := r.scratch.grad
	if g == nil || len(g.Pix) < 4*b.Dx()*b.Dy() {
		g = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		r.scratch.grad = g
	}
	return &image.NRGBA{Pix: g.Pix[:4*b.Dx()*b.Dy()], Stride: 4 * b.Dx(), Rect: b}
}

func interpolate(c0, c1, c2 color.NRGBA, w0, w1, w2 float32) color.NRGBA {
	ch := func(a, b, c uint8) uint8 {
		v := float32(a)*w0 + float32(b)*w1 + float32(c)*w2
		switch {
		case v <= 0:
			return 0
		case v >= 255:
			return 255
		}
		return uint8(v + .5)
	}
	return color.NRGBA{
		R: ch(c0.R, c1.R, c2.R),
		G: ch(c0.G, c1.G, c2.G),
		B: ch(c0.B, c1.B, c2.B),
		A: ch(c0.A, c1.A, c2.A),
	}
}

func min3(a, b, c float32) float32 {
	return float32(math.Min(float64(a), math.Min(float64(b), float64(c))))
}

func max3(a, b, c float32) float32 {
	return float32(math.Max(float64(a), math.Max(float64(b), float64(c))))
}

func cross(a, b f32.Point) float32 {
	return a.X*b.Y - a.Y*b.X
}

func (r *Rasterizer) text(dst *image.RGBA, t paint.Text) {
	if r.shaper == nil || t.Size <= 0 {
		return
	}
	b := bounds(t.Rect).Intersect(dst.Bounds())
	if b.Empty() {
		return
	}
	face, err := r.face(t.Size)
	if err != nil {
		return
	}
	// Text overflowing its rectangle is clipped to it.
	clip := dst.SubImage(b).(*image.RGBA)
	d := font.Drawer{Dst: clip, Src: image.NewUniform(t.Color), Face: face}
	lh := r.shaper.LineHeight(t.Size)
	ascent := r.shaper.Ascent(t.Size)
	for i, l := range r.shaper.Layout(t.Content, t.Size, t.Rect.Dx()) {
		y := t.Rect.Min.Y + float32(i)*lh + ascent
		d.Dot = fixed.Point26_6{X: toFixed(t.Rect.Min.X), Y: toFixed(y)}
		d.DrawString(l.Text)
	}
}

func (r *Rasterizer) face(size float32) (font.Face, error) {
	if f, ok := r.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(r.shaper.Font(), &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	r.faces[size] = f
	return f, nil
}

func toFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(float64(v) * 64))
}

// bounds returns the smallest integer rectangle containing r.
func bounds(r f32.Rectangle) image.Rectangle {
	clampInt := func(v float64) int {
		switch {
		case v > math.MaxInt32:
			return math.MaxInt32
		case v < math.MinInt32:
			return math.MinInt32
		}
		return int(v)
	}
	return image.Rectangle{
		Min: image.Pt(clampInt(math.Floor(float64(r.Min.X))), clampInt(math.Floor(float64(r.Min.Y)))),
		Max: image.Pt(clampInt(math.Ceil(float64(r.Max.X))), clampInt(math.Ceil(float64(r.Max.Y)))),
	}
}
