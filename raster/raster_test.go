// SPDX-License-Identifier: Unlicense OR MIT

package raster

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"flexui.org/f32"
	"flexui.org/font/gofont"
	"flexui.org/op"
	"flexui.org/op/paint"
	"flexui.org/text"
)

var (
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	red   = color.NRGBA{R: 0xff, A: 0xff}
	blue  = color.NRGBA{B: 0xff, A: 0xff}
)

func newFrame(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(white), image.Point{}, draw.Src)
	return img
}

func rgba(c color.NRGBA) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func TestQuad(t *testing.T) {
	var ops op.Ops
	r := op.NewRecorder(&ops)
	r.WithTranslation(f32.Pt(5, 5), func() {
		r.DrawPrimitive(paint.Fill(f32.Rect(0, 0, 10, 10), red))
	})
	img := newFrame(20, 20)
	New(nil).Frame(&ops, img)
	if got := img.RGBAAt(7, 7); got != rgba(red) {
		t.Errorf("inside the quad got %v", got)
	}
	if got := img.RGBAAt(2, 2); got != white {
		t.Errorf("outside the quad got %v", got)
	}
	if got := img.RGBAAt(15, 15); got != white {
		t.Errorf("beyond the quad got %v", got)
	}
}

func TestQuadBorder(t *testing.T) {
	var ops op.Ops
	ops.Add(paint.Quad{Rect: f32.Rect(0, 0, 20, 20), Color: red, BorderWidth: 4, BorderColor: blue})
	img := newFrame(20, 20)
	New(nil).Frame(&ops, img)
	if got := img.RGBAAt(1, 10); got != rgba(blue) {
		t.Errorf("border got %v", got)
	}
	if got := img.RGBAAt(10, 10); got != rgba(red) {
		t.Errorf("fill got %v", got)
	}
}

func TestRoundedCorner(t *testing.T) {
	var ops op.Ops
	ops.Add(paint.Quad{Rect: f32.Rect(0, 0, 20, 20), Color: red, Radius: 10})
	img := newFrame(20, 20)
	New(nil).Frame(&ops, img)
	if got := img.RGBAAt(0, 0); got != white {
		t.Errorf("corner got %v", got)
	}
	if got := img.RGBAAt(10, 10); got != rgba(red) {
		t.Errorf("center got %v", got)
	}
}

func TestClip(t *testing.T) {
	var ops op.Ops
	r := op.NewRecorder(&ops)
	r.WithClip(f32.Rect(0, 0, 10, 10), func() {
		r.DrawPrimitive(paint.Fill(f32.Rect(0, 0, 20, 20), blue))
	})
	img := newFrame(20, 20)
	New(nil).Frame(&ops, img)
	if got := img.RGBAAt(5, 5); got != rgba(blue) {
		t.Errorf("inside the clip got %v", got)
	}
	if got := img.RGBAAt(15, 15); got != white {
		t.Errorf("outside the clip got %v", got)
	}
}

func TestMesh(t *testing.T) {
	var ops op.Ops
	// A square of two triangles, red on the left and blue on the right.
	ops.Add(paint.Mesh{
		Origin: f32.Pt(10, 10),
		Vertices: []paint.Vertex{
			{Position: f32.Pt(0, 0), Color: red},
			{Position: f32.Pt(100, 0), Color: blue},
			{Position: f32.Pt(100, 100), Color: blue},
			{Position: f32.Pt(0, 100), Color: red},
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	})
	img := newFrame(120, 120)
	New(nil).Frame(&ops, img)
	left, right := img.RGBAAt(12, 60), img.RGBAAt(107, 60)
	if left.R < 0xf0 || left.B > 0x10 {
		t.Errorf("left edge got %v", left)
	}
	if right.B < 0xf0 || right.R > 0x10 {
		t.Errorf("right edge got %v", right)
	}
	if mid := img.RGBAAt(60, 30); mid.R < 0x70 || mid.R > 0x90 {
		t.Errorf("middle got %v", mid)
	}
	if got := img.RGBAAt(5, 5); got != white {
		t.Errorf("outside the mesh got %v", got)
	}
}

func TestText(t *testing.T) {
	var ops op.Ops
	ops.Add(paint.Text{Content: "HHHH", Rect: f32.Rect(10, 10, 60, 30), Size: 20, Color: color.NRGBA{A: 0xff}})
	img := newFrame(100, 60)
	New(text.NewShaper(gofont.Regular().Face)).Frame(&ops, img)
	inked := 0
	for y := 0; y < 60; y++ {
		for x := 0; x < 100; x++ {
			if img.RGBAAt(x, y) == white {
				continue
			}
			if !image.Pt(x, y).In(image.Rect(10, 10, 70, 40)) {
				t.Fatalf("ink at (%d,%d) outside the text rectangle", x, y)
			}
			inked++
		}
	}
	if inked == 0 {
		t.Error("no text drawn")
	}
}
