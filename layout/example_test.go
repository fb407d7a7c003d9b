// SPDX-License-Identifier: Unlicense OR MIT

package layout_test

import (
	"fmt"

	"flexui.org/f32"
	"flexui.org/layout"
	"flexui.org/unit"
)

// boxes is a list of fixed size children.
type boxes []struct {
	w, h unit.Length
	size f32.Size
}

func (b boxes) Len() int                  { return len(b) }
func (b boxes) Width(i int) unit.Length  { return b[i].w }
func (b boxes) Height(i int) unit.Length { return b[i].h }

func (b boxes) Measure(i int, l layout.Limits) f32.Size {
	return l.Resolve(b[i].w, b[i].h, b[i].size)
}

func (b boxes) Layout(i int, l layout.Limits) layout.Node {
	return layout.NewNode(b.Measure(i, l))
}

func ExampleFlex() {
	children := boxes{
		{size: f32.Sz(10, 10)},
		{h: unit.Fill, size: f32.Sz(20, 0)},
		{h: unit.Px(15), size: f32.Sz(5, 0)},
	}
	col := layout.Flex{Axis: layout.Vertical, Spacing: 5, Alignment: layout.Middle}
	n := col.Resolve(layout.NewLimits(f32.Size{}, f32.Sz(100, 100)), children, layout.PerformLayout)
	fmt.Print(layout.Format(n))

	// Output:
	// (0,0)-(20,100)
	//   (5,0)-(15,10)
	//   (0,15)-(20,80)
	//   (7.5,85)-(12.5,100)
}

func ExampleLimits_Resolve() {
	l := layout.NewLimits(f32.Sz(0, 0), f32.Sz(200, 100))
	fmt.Println(l.Resolve(unit.Fill, unit.Shrink, f32.Sz(30, 40)))
	fmt.Println(l.Resolve(unit.Px(50), unit.FillMax(60), f32.Sz(30, 40)))
	fmt.Println(l.Resolve(unit.Shrink, unit.Shrink, f32.Sz(300, 40)))

	// Output:
	// (200,40)
	// (50,60)
	// (200,40)
}
