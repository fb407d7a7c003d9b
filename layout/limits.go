// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"

	"flexui.org/f32"
	"flexui.org/unit"
)

// Limits represent the range of acceptable sizes for a widget,
// passed from a container to its children. Min must not exceed
// Max in either dimension; Max may be infinite.
type Limits struct {
	Min, Max f32.Size
}

// NewLimits returns the limits between min and max.
func NewLimits(min, max f32.Size) Limits {
	return Limits{Min: min, Max: max}
}

// Exact returns the limits that can only be satisfied by
// the given size.
func Exact(size f32.Size) Limits {
	return Limits{Min: size, Max: size}
}

// Unbounded returns the limits allowing any size.
func Unbounded() Limits {
	return Limits{Max: f32.Size{Width: f32.Inf, Height: f32.Inf}}
}

// Loose returns the limits with the minimum removed.
func (l Limits) Loose() Limits {
	l.Min = f32.Size{}
	return l
}

// Width narrows the horizontal range according to a length policy.
func (l Limits) Width(w unit.Length) Limits {
	l.Min.Width, l.Max.Width = narrow(w, l.Min.Width, l.Max.Width)
	return l
}

// Height narrows the vertical range according to a length policy.
func (l Limits) Height(h unit.Length) Limits {
	l.Min.Height, l.Max.Height = narrow(h, l.Min.Height, l.Max.Height)
	return l
}

// MaxWidth lowers the maximum width to v, never below the minimum.
func (l Limits) MaxWidth(v float32) Limits {
	if v < l.Max.Width {
		l.Max.Width = maxf(v, l.Min.Width)
	}
	return l
}

// MaxHeight lowers the maximum height to v, never below the minimum.
func (l Limits) MaxHeight(v float32) Limits {
	if v < l.Max.Height {
		l.Max.Height = maxf(v, l.Min.Height)
	}
	return l
}

// MinWidth raises the minimum width to v, never above the maximum.
func (l Limits) MinWidth(v float32) Limits {
	if v > l.Min.Width {
		l.Min.Width = minf(v, l.Max.Width)
	}
	return l
}

// MinHeight raises the minimum height to v, never above the maximum.
func (l Limits) MinHeight(v float32) Limits {
	if v > l.Min.Height {
		l.Min.Height = minf(v, l.Max.Height)
	}
	return l
}

// Pad shrinks the limits by the space taken by in.
func (l Limits) Pad(in Inset) Limits {
	return l.Shrink(in.Size())
}

// Shrink subtracts sz from both the minimum and the maximum,
// stopping at zero.
func (l Limits) Shrink(sz f32.Size) Limits {
	l.Min.Width = maxf(l.Min.Width-sz.Width, 0)
	l.Min.Height = maxf(l.Min.Height-sz.Height, 0)
	l.Max.Width = maxf(l.Max.Width-sz.Width, 0)
	l.Max.Height = maxf(l.Max.Height-sz.Height, 0)
	return l
}

// Constrain a size to the Min and Max ranges.
func (l Limits) Constrain(sz f32.Size) f32.Size {
	return f32.Size{
		Width:  clamp(sz.Width, l.Min.Width, l.Max.Width),
		Height: clamp(sz.Height, l.Min.Height, l.Max.Height),
	}
}

// Resolve narrows the limits by the width and height policies and
// returns the concrete size for content of the given intrinsic
// size. Fill policies resolve to the maximum when it is finite;
// Shrink resolves to the intrinsic size clamped to the limits.
func (l Limits) Resolve(w, h unit.Length, intrinsic f32.Size) f32.Size {
	return l.Width(w).Height(h).Constrain(intrinsic)
}

func (l Limits) String() string {
	return fmt.Sprintf("{%v %v}", l.Min, l.Max)
}

func narrow(length unit.Length, min, max float32) (float32, float32) {
	switch length.U {
	case unit.UnitPx:
		v := clamp(length.V, min, max)
		return v, v
	case unit.UnitFillMax:
		if length.V < max {
			max = maxf(length.V, min)
		}
		fallthrough
	case unit.UnitPortion:
		if !f32.IsInf(max) {
			min = max
		}
	}
	return min, max
}

func clamp(v, min, max float32) float32 {
	if v > max {
		v = max
	}
	if v < min {
		v = min
	}
	return v
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
