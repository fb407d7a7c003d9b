// SPDX-License-Identifier: Unlicense OR MIT

package rainbow

import (
	"fmt"
	"testing"

	"flexui.org/f32"
	"flexui.org/layout"
	"flexui.org/op"
	"flexui.org/op/paint"
	"flexui.org/text"
	"flexui.org/unit"
	"flexui.org/widget"
)

func draw(c widget.Cursor) paint.Mesh {
	col := widget.NewColumn(widget.NewSpace(unit.Shrink, unit.Px(20)), New())
	n := col.Layout(new(text.Monospace), layout.NewLimits(f32.Size{}, f32.Sz(100, 500)))
	tree := widget.NewTree(col)
	var ops op.Ops
	col.Draw(&tree, op.NewRecorder(&ops), widget.NewTheme(), layout.NewLayout(&n), c, f32.Rect(0, 0, 100, 500))
	return ops.List()[0].(paint.Mesh)
}

func TestSquare(t *testing.T) {
	n := New().Layout(nil, layout.NewLimits(f32.Size{}, f32.Sz(120, 500)))
	if got, want := n.Size(), f32.Sz(120, 120); got != want {
		t.Errorf("got size %v, want %v", got, want)
	}
	if len(n.Children()) != 0 {
		t.Error("rainbow nodes have no children")
	}
}

func TestCenterFollowsCursor(t *testing.T) {
	m := draw(widget.Cursor{})
	if got, want := m.Vertices[0].Position, f32.Pt(50, 50); got != want {
		t.Errorf("center without cursor %v, want %v", got, want)
	}
	if got, want := m.Origin, f32.Pt(0, 20); got != want {
		t.Errorf("origin %v, want %v", got, want)
	}
	m = draw(widget.At(f32.Pt(10, 30)))
	if got, want := m.Vertices[0].Position, f32.Pt(10, 10); got != want {
		t.Errorf("center under cursor %v, want %v", got, want)
	}
	m = draw(widget.At(f32.Pt(10, 300)))
	if got, want := m.Vertices[0].Position, f32.Pt(50, 50); got != want {
		t.Errorf("center with cursor outside %v, want %v", got, want)
	}
}

func ExampleRainbow() {
	n := New().Layout(nil, layout.NewLimits(f32.Size{}, f32.Sz(200, 200)))
	var ops op.Ops
	r := op.NewRecorder(&ops)
	New().Draw(nil, r, widget.NewTheme(), layout.NewLayout(&n), widget.Cursor{}, f32.Rect(0, 0, 200, 200))
	fmt.Println(ops.List()[0])
	// Output:
	// mesh (0,0)-(200,200) 9 vertices 8 triangles
}
