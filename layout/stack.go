// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"flexui.org/f32"
)

// Stack lays out child elements on top of each other,
// aligned within the space left by the padding.
type Stack struct {
	// AlignX and AlignY align children smaller than the
	// available space.
	AlignX, AlignY Alignment
	// Padding is the space around the children.
	Padding Inset
}

// Resolve lays out the items within l. Children with a fill policy
// on either axis are laid out last, with a minimum size equal to the
// largest of the other children.
func (s Stack) Resolve(l Limits, items Items, mode Mode) Node {
	n := items.Len()
	inner := l.Pad(s.Padding).Loose()
	if s.AlignX == Fill && !f32.IsInf(inner.Max.Width) {
		inner.Min.Width = inner.Max.Width
	}
	if s.AlignY == Fill && !f32.IsInf(inner.Max.Height) {
		inner.Min.Height = inner.Max.Height
	}
	sizes := make([]f32.Size, n)
	var nodes []Node
	if mode == PerformLayout {
		nodes = make([]Node, n)
	}
	var maxSZ f32.Size
	run := func(i int, cs Limits) {
		if mode == MeasureSize {
			sizes[i] = items.Measure(i, cs)
		} else {
			nodes[i] = items.Layout(i, cs)
			sizes[i] = nodes[i].Size()
		}
		maxSZ = maxSZ.Max(sizes[i])
	}
	expand := func(i int) bool {
		return items.Width(i).IsFill() || items.Height(i).IsFill()
	}
	for i := 0; i < n; i++ {
		if !expand(i) {
			run(i, inner)
		}
	}
	for i := 0; i < n; i++ {
		if expand(i) {
			run(i, inner.MinWidth(maxSZ.Width).MinHeight(maxSZ.Height))
		}
	}
	size := l.Constrain(maxSZ.Add(s.Padding.Size()))
	if mode == MeasureSize {
		return NewNode(size)
	}
	space := f32.Sz(maxf(size.Width-s.Padding.Horizontal(), 0), maxf(size.Height-s.Padding.Vertical(), 0))
	for i := range nodes {
		nodes[i] = nodes[i].Moved(s.Padding.Offset()).Aligned(s.AlignX, s.AlignY, space)
	}
	return NewNodeWithChildren(size, nodes)
}
