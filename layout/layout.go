// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"flexui.org/f32"
)

// Axis is the Horizontal or Vertical direction.
type Axis uint8

// Alignment is the placement of a child along the cross axis
// of its container.
type Alignment uint8

// Inset is the space between the edges of a container and its
// content, in pixels.
type Inset struct {
	Top, Right, Bottom, Left float32
}

const (
	Start Alignment = iota
	End
	Middle
	// Fill stretches children to the cross extent of
	// the container.
	Fill
)

const (
	Horizontal Axis = iota
	Vertical
)

// UniformInset returns an Inset with a single inset applied to all
// edges.
func UniformInset(v float32) Inset {
	return Inset{Top: v, Right: v, Bottom: v, Left: v}
}

// SymmetricInset returns an Inset with v applied to the top and
// bottom edges and h to the left and right edges.
func SymmetricInset(v, h float32) Inset {
	return Inset{Top: v, Right: h, Bottom: v, Left: h}
}

// Horizontal returns the sum of the left and right insets.
func (in Inset) Horizontal() float32 {
	return in.Left + in.Right
}

// Vertical returns the sum of the top and bottom insets.
func (in Inset) Vertical() float32 {
	return in.Top + in.Bottom
}

// Size returns the total space taken by the inset.
func (in Inset) Size() f32.Size {
	return f32.Size{Width: in.Horizontal(), Height: in.Vertical()}
}

// Offset returns the position of content inside the inset.
func (in Inset) Offset() f32.Point {
	return f32.Point{X: in.Left, Y: in.Top}
}

// Main returns the main axis component of sz.
func (a Axis) Main(sz f32.Size) float32 {
	if a == Horizontal {
		return sz.Width
	}
	return sz.Height
}

// Cross returns the cross axis component of sz.
func (a Axis) Cross(sz f32.Size) float32 {
	if a == Horizontal {
		return sz.Height
	}
	return sz.Width
}

// Size returns the size with the given main and cross extents.
func (a Axis) Size(main, cross float32) f32.Size {
	if a == Horizontal {
		return f32.Size{Width: main, Height: cross}
	}
	return f32.Size{Width: cross, Height: main}
}

// Point returns the point with the given main and cross coordinates.
func (a Axis) Point(main, cross float32) f32.Point {
	if a == Horizontal {
		return f32.Point{X: main, Y: cross}
	}
	return f32.Point{X: cross, Y: main}
}

func axisLimits(a Axis, mainMin, mainMax, crossMin, crossMax float32) Limits {
	return Limits{
		Min: a.Size(mainMin, crossMin),
		Max: a.Size(mainMax, crossMax),
	}
}

func (a Alignment) String() string {
	switch a {
	case Start:
		return "Start"
	case End:
		return "End"
	case Middle:
		return "Middle"
	case Fill:
		return "Fill"
	default:
		panic("unreachable")
	}
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}
