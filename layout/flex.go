// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"math"

	"flexui.org/f32"
	"flexui.org/unit"
)

// Flex lays out child elements along an axis, according to
// their length policies, the spacing between them and the
// alignment in the cross axis.
type Flex struct {
	// Axis is the main axis, either Horizontal or Vertical.
	Axis Axis
	// Spacing is the gap between consecutive children.
	Spacing float32
	// Padding is the space around the children.
	Padding Inset
	// Alignment is the alignment in the cross axis.
	Alignment Alignment
}

// Items gives a Flex access to the children it lays out.
type Items interface {
	// Len returns the number of children.
	Len() int
	// Width returns the horizontal length policy of child i.
	Width(i int) unit.Length
	// Height returns the vertical length policy of child i.
	Height(i int) unit.Length
	// Measure returns the size child i takes within the limits,
	// without laying it out.
	Measure(i int, l Limits) f32.Size
	// Layout lays out child i within the limits.
	Layout(i int, l Limits) Node
}

// Mode selects whether Resolve produces positioned child nodes
// or only the aggregate size.
type Mode uint8

const (
	// PerformLayout lays out and positions every child.
	PerformLayout Mode = iota
	// MeasureSize measures the children and returns a childless
	// node of the aggregate size.
	MeasureSize
)

// Resolve lays out the items within l.
//
// Children are sized in order, except that Portion children are
// sized after all the others have taken their space. The space left
// is split by weight; every share is rounded down to whole pixels
// and the last weighted child takes what remains, so the shares sum
// to the remaining space exactly. Children are not shrunk to fit: a
// child larger than its share overflows the container.
func (f Flex) Resolve(l Limits, items Items, mode Mode) Node {
	n := items.Len()
	inner := l.Pad(f.Padding)
	var gaps float32
	if n > 1 {
		gaps = f.Spacing * float32(n-1)
	}
	available := maxf(f.Axis.Main(inner.Max)-gaps, 0)
	crossMax := f.Axis.Cross(inner.Max)
	cross := f.Axis.Cross(inner.Min)
	fill := f.Alignment == Fill

	sizes := make([]f32.Size, n)
	var nodes []Node
	if mode == PerformLayout {
		nodes = make([]Node, n)
	}
	run := func(i int, cs Limits) f32.Size {
		if mode == MeasureSize {
			sizes[i] = items.Measure(i, cs)
		} else {
			nodes[i] = items.Layout(i, cs)
			sizes[i] = nodes[i].Size()
		}
		return sizes[i]
	}

	if fill {
		// Children stretched along the cross axis share the extent
		// of the largest child that doesn't fill it by itself.
		for i := 0; i < n; i++ {
			if f.crossLength(items, i).IsFill() {
				continue
			}
			sz := items.Measure(i, axisLimits(f.Axis, 0, available, 0, crossMax))
			cross = maxf(cross, f.Axis.Cross(sz))
		}
	}

	var (
		consumed float32
		fillSum  uint32
		last     = -1
	)
	// Lay out children outside the distribution of remaining space.
	for i := 0; i < n; i++ {
		main := f.mainLength(items, i)
		if main.U == unit.UnitPortion {
			if w := main.FillFactor(); w > 0 {
				fillSum += uint32(w)
				last = i
			}
			continue
		}
		space := maxf(available-consumed, 0)
		cs := axisLimits(f.Axis, 0, space, 0, crossMax)
		if fill {
			cs = axisLimits(f.Axis, 0, space, cross, cross)
		}
		sz := run(i, cs)
		consumed += f.Axis.Main(sz)
		if !fill {
			cross = maxf(cross, f.Axis.Cross(sz))
		}
	}

	remaining := maxf(available-consumed, 0)
	var allotted float32
	// Lay out Portion children with their share of the remaining space.
	for i := 0; i < n; i++ {
		main := f.mainLength(items, i)
		if main.U != unit.UnitPortion {
			continue
		}
		var mainMin, mainMax float32
		w := main.FillFactor()
		switch {
		case w == 0:
		case f32.IsInf(remaining):
			mainMin, mainMax = 0, f32.Inf
		case i == last:
			mainMax = maxf(remaining-allotted, 0)
			mainMin = mainMax
		default:
			share := math.Floor(float64(remaining) * float64(w) / float64(fillSum))
			mainMax = float32(share)
			mainMin = mainMax
			allotted += mainMax
		}
		cs := axisLimits(f.Axis, mainMin, mainMax, f.Axis.Cross(inner.Min), crossMax)
		if fill {
			cs = axisLimits(f.Axis, mainMin, mainMax, cross, cross)
		}
		sz := run(i, cs)
		if !fill {
			cross = maxf(cross, f.Axis.Cross(sz))
		}
	}

	var main float32
	for i, sz := range sizes {
		if i > 0 {
			main += f.Spacing
		}
		if mode == PerformLayout {
			nodes[i] = f.place(nodes[i], main, cross)
		}
		main += f.Axis.Main(sz)
	}
	size := l.Constrain(f.Axis.Size(main, cross).Add(f.Padding.Size()))
	if mode == MeasureSize {
		return NewNode(size)
	}
	return NewNodeWithChildren(size, nodes)
}

// place positions a child node at main along the main axis and aligns
// it within the cross extent.
func (f Flex) place(n Node, main, cross float32) Node {
	pos := f.Padding.Offset().Add(f.Axis.Point(main, 0))
	n = n.Moved(pos)
	if f.Axis == Horizontal {
		return n.Aligned(Start, f.Alignment, f32.Size{Height: cross})
	}
	return n.Aligned(f.Alignment, Start, f32.Size{Width: cross})
}

func (f Flex) mainLength(items Items, i int) unit.Length {
	if f.Axis == Horizontal {
		return items.Width(i)
	}
	return items.Height(i)
}

func (f Flex) crossLength(items Items, i int) unit.Length {
	if f.Axis == Horizontal {
		return items.Height(i)
	}
	return items.Width(i)
}

func (m Mode) String() string {
	switch m {
	case PerformLayout:
		return "PerformLayout"
	case MeasureSize:
		return "MeasureSize"
	default:
		panic("unreachable")
	}
}
