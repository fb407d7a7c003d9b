// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"flexui.org/f32"
	"flexui.org/unit"
)

func TestStackCentersChild(t *testing.T) {
	items := column(item{size: f32.Sz(20, 10)})
	l := Exact(f32.Sz(100, 50))
	n := Stack{AlignX: Middle, AlignY: End}.Resolve(l, items, PerformLayout)
	assert.Equal(t, f32.Sz(100, 50), n.Size())
	assert.Equal(t, f32.Rect(40, 40, 20, 10), n.Children()[0].Bounds())
}

func TestStackExpandedChildren(t *testing.T) {
	items := column(
		item{w: unit.Fill, h: unit.Fill},
		item{size: f32.Sz(30, 20)},
		item{size: f32.Sz(10, 40)},
	)
	n := Stack{Padding: UniformInset(2)}.Resolve(NewLimits(f32.Size{}, f32.Sz(f32.Inf, f32.Inf)), items, PerformLayout)
	assert.Equal(t, f32.Sz(34, 44), n.Size())
	assert.Equal(t, f32.Rect(2, 2, 30, 40), n.Children()[0].Bounds())
	assert.Equal(t, f32.Pt(2, 2), n.Children()[1].Bounds().Min)
}

func TestStackMeasureMatchesLayout(t *testing.T) {
	its := []item{{size: f32.Sz(15, 25)}, {w: unit.Px(40), size: f32.Sz(0, 5)}}
	s := Stack{AlignX: Fill, Padding: SymmetricInset(1, 3)}
	l := NewLimits(f32.Size{}, f32.Sz(80, 80))
	m := s.Resolve(l, column(its...), MeasureSize)
	n := s.Resolve(l, column(its...), PerformLayout)
	assert.Equal(t, n.Size(), m.Size())
	assert.Empty(t, m.Children())
}
