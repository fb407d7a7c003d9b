// SPDX-License-Identifier: Unlicense OR MIT

/*
Package unit implements length policies and device independent units.

A Length is a value with a Unit attached that describes how a widget
wants to occupy space along one axis:

	unit.Shrink          // as small as the content allows
	unit.Px(120)         // exactly 120 pixels, bounded by the limits
	unit.Fill            // all the available space
	unit.Portion(2)      // a weighted share of the space left by siblings
	unit.FillMax(300)    // all the available space, but at most 300 pixels

The zero Length is Shrink.

Device independent pixel, or dp, is the unit for sizes independent of
the underlying display device. A Metric converts dps to pixels; the
layout engine itself only ever sees pixels.
*/
package unit

import (
	"fmt"
	"math"
)

// Length is a sizing policy for one axis.
type Length struct {
	V float32
	U Unit
}

// Unit represents the interpretation of a Length value.
type Unit uint8

// Metric converts device independent pixels to pixels.
type Metric struct {
	// PxPerDp is the device pixels per dp. The zero value
	// is treated as 1.
	PxPerDp float32
}

const (
	// UnitShrink sizes to the content. V is ignored.
	UnitShrink Unit = iota
	// UnitPx is a fixed number of pixels.
	UnitPx
	// UnitPortion fills the available space, sharing it with
	// other portions proportionally to V.
	UnitPortion
	// UnitFillMax fills the available space up to V pixels.
	UnitFillMax
)

var (
	// Shrink sizes to the content.
	Shrink = Length{U: UnitShrink}
	// Fill takes all the available space. It is equivalent
	// to Portion(1).
	Fill = Portion(1)
)

// Px returns the fixed Length of v pixels.
func Px(v float32) Length {
	return Length{V: v, U: UnitPx}
}

// Portion returns the Length filling a share of the remaining
// space proportional to weight.
func Portion(weight uint16) Length {
	return Length{V: float32(weight), U: UnitPortion}
}

// FillMax returns the Length that fills the available space
// up to v pixels.
func FillMax(v float32) Length {
	return Length{V: v, U: UnitFillMax}
}

// FillFactor returns the portion weight of l, or 0 when l does not
// take part in the distribution of remaining space.
func (l Length) FillFactor() uint16 {
	if l.U != UnitPortion {
		return 0
	}
	return uint16(l.V)
}

// IsFill reports whether l wants to expand into the available space.
func (l Length) IsFill() bool {
	return l.U == UnitPortion || l.U == UnitFillMax
}

func (l Length) String() string {
	switch l.U {
	case UnitShrink:
		return "shrink"
	case UnitPx:
		return fmt.Sprintf("%gpx", l.V)
	case UnitPortion:
		if l.V == 1 {
			return "fill"
		}
		return fmt.Sprintf("portion(%g)", l.V)
	case UnitFillMax:
		return fmt.Sprintf("fill(max %gpx)", l.V)
	default:
		panic("unknown unit")
	}
}

func (u Unit) String() string {
	switch u {
	case UnitShrink:
		return "shrink"
	case UnitPx:
		return "px"
	case UnitPortion:
		return "portion"
	case UnitFillMax:
		return "fillmax"
	default:
		panic("unknown unit")
	}
}

// Dp converts v device independent pixels to pixels.
func (m Metric) Dp(v float32) float32 {
	if m.PxPerDp == 0 {
		return v
	}
	return v * m.PxPerDp
}

// Length scales the pixel values of Fixed and FillMax lengths
// from dps to pixels.
func (m Metric) Length(l Length) Length {
	switch l.U {
	case UnitPx, UnitFillMax:
		if !math.IsInf(float64(l.V), 1) {
			l.V = m.Dp(l.V)
		}
	}
	return l
}
