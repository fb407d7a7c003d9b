// SPDX-License-Identifier: Unlicense OR MIT

package paint_test

import (
	"fmt"
	"image/color"

	"flexui.org/f32"
	"flexui.org/op"
	"flexui.org/op/paint"
)

func ExampleQuad() {
	var ops op.Ops
	r := op.NewRecorder(&ops)
	red := color.NRGBA{R: 0xff, A: 0xff}
	r.WithTranslation(f32.Pt(10, 10), func() {
		r.DrawPrimitive(paint.Quad{Rect: f32.Rect(0, 0, 20, 20), Color: red, Radius: 4})
		r.DrawPrimitive(paint.Text{Content: "hi", Rect: f32.Rect(2, 2, 16, 16), Size: 16, Color: red})
	})
	for _, p := range ops.List() {
		fmt.Println(p)
	}

	// Output:
	// quad (10,10)-(30,30) #ff0000ff radius 4
	// text (12,12)-(28,28) "hi" size 16 #ff0000ff
}

func ExampleMesh() {
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	m := paint.Mesh{
		Vertices: []paint.Vertex{
			{Position: f32.Pt(0, 0), Color: white},
			{Position: f32.Pt(10, 0), Color: white},
			{Position: f32.Pt(0, 10), Color: white},
		},
		Indices: []uint32{0, 1, 2},
	}
	fmt.Println(m.Offset(f32.Pt(5, 5)))

	// Output:
	// mesh (5,5)-(15,15) 3 vertices 1 triangles
}
