// SPDX-License-Identifier: Unlicense OR MIT

/*
Package f32 is a float32 implementation of the geometry used by the
layout engine: points, sizes and rectangles.

The coordinate space has the origin in the top left
corner with the axes extending right and down.

A Point doubles as a vector when it describes an offset.
*/
package f32

import (
	"fmt"
	"math"
)

// A Point is a two dimensional point.
type Point struct {
	X, Y float32
}

// Size is the extent of an area. Both dimensions are
// non-negative for any size produced by layout.
type Size struct {
	Width, Height float32
}

// A Rectangle contains the points (X, Y) where Min.X <= X < Max.X,
// Min.Y <= Y < Max.Y.
type Rectangle struct {
	Min, Max Point
}

// Inf is the positive infinity used for unbounded limits.
var Inf = float32(math.Inf(1))

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h float32) Size {
	return Size{Width: w, Height: h}
}

// Rect returns the rectangle at (x, y) with the given width and height.
func Rect(x, y, w, h float32) Rectangle {
	return Rectangle{Min: Point{X: x, Y: y}, Max: Point{X: x + w, Y: y + h}}
}

// Add return the point p+p2.
func (p Point) Add(p2 Point) Point {
	return Point{X: p.X + p2.X, Y: p.Y + p2.Y}
}

// Sub returns the vector p-p2.
func (p Point) Sub(p2 Point) Point {
	return Point{X: p.X - p2.X, Y: p.Y - p2.Y}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Add returns the size grown by s2 in both dimensions.
func (s Size) Add(s2 Size) Size {
	return Size{Width: s.Width + s2.Width, Height: s.Height + s2.Height}
}

// Max returns the component-wise maximum of s and s2.
func (s Size) Max(s2 Size) Size {
	if s2.Width > s.Width {
		s.Width = s2.Width
	}
	if s2.Height > s.Height {
		s.Height = s2.Height
	}
	return s
}

// Min returns the component-wise minimum of s and s2.
func (s Size) Min(s2 Size) Size {
	if s2.Width < s.Width {
		s.Width = s2.Width
	}
	if s2.Height < s.Height {
		s.Height = s2.Height
	}
	return s
}

// Point converts the size to the point (Width, Height).
func (s Size) Point() Point {
	return Point{X: s.Width, Y: s.Height}
}

func (s Size) String() string {
	return fmt.Sprintf("(%g,%g)", s.Width, s.Height)
}

// Size returns r's width and height.
func (r Rectangle) Size() Size {
	return Size{Width: r.Dx(), Height: r.Dy()}
}

// Dx returns r's width.
func (r Rectangle) Dx() float32 {
	return r.Max.X - r.Min.X
}

// Dy returns r's Height.
func (r Rectangle) Dy() float32 {
	return r.Max.Y - r.Min.Y
}

// Center returns the center point of r.
func (r Rectangle) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Contains reports whether p lies in r.
func (r Rectangle) Contains(p Point) bool {
	return r.Min.X <= p.X && p.X < r.Max.X &&
		r.Min.Y <= p.Y && p.Y < r.Max.Y
}

// Intersect returns the intersection of r and s.
func (r Rectangle) Intersect(s Rectangle) Rectangle {
	if r.Min.X < s.Min.X {
		r.Min.X = s.Min.X
	}
	if r.Min.Y < s.Min.Y {
		r.Min.Y = s.Min.Y
	}
	if r.Max.X > s.Max.X {
		r.Max.X = s.Max.X
	}
	if r.Max.Y > s.Max.Y {
		r.Max.Y = s.Max.Y
	}
	if r.Empty() {
		return Rectangle{}
	}
	return r
}

// Union returns the union of r and s.
func (r Rectangle) Union(s Rectangle) Rectangle {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	if r.Min.X > s.Min.X {
		r.Min.X = s.Min.X
	}
	if r.Min.Y > s.Min.Y {
		r.Min.Y = s.Min.Y
	}
	if r.Max.X < s.Max.X {
		r.Max.X = s.Max.X
	}
	if r.Max.Y < s.Max.Y {
		r.Max.Y = s.Max.Y
	}
	return r
}

// Canon returns the canonical version of r, where Min is to
// the upper left of Max.
func (r Rectangle) Canon() Rectangle {
	if r.Max.X < r.Min.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// Empty reports whether r represents the empty area.
func (r Rectangle) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Add offsets r with the vector p.
func (r Rectangle) Add(p Point) Rectangle {
	return Rectangle{
		Point{r.Min.X + p.X, r.Min.Y + p.Y},
		Point{r.Max.X + p.X, r.Max.Y + p.Y},
	}
}

// Sub offsets r with the vector -p.
func (r Rectangle) Sub(p Point) Rectangle {
	return Rectangle{
		Point{r.Min.X - p.X, r.Min.Y - p.Y},
		Point{r.Max.X - p.X, r.Max.Y - p.Y},
	}
}

func (r Rectangle) String() string {
	return fmt.Sprintf("%v-%v", r.Min, r.Max)
}

// IsInf reports whether v is positive infinity.
func IsInf(v float32) bool {
	return math.IsInf(float64(v), 1)
}
