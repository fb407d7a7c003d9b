// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"flexui.org/f32"
	"flexui.org/unit"
)

var policies = []unit.Length{
	unit.Shrink,
	unit.Fill,
	unit.Portion(3),
	unit.Portion(0),
	unit.Px(0),
	unit.Px(35),
	unit.Px(1e4),
	unit.Px(-5),
	unit.FillMax(20),
	unit.FillMax(1e4),
}

func TestResolveWithinLimits(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		min := f32.Sz(float32(r.Intn(200)), float32(r.Intn(200)))
		max := min.Add(f32.Sz(float32(r.Intn(200)), float32(r.Intn(200))))
		if i%5 == 0 {
			max.Height = f32.Inf
		}
		l := NewLimits(min, max)
		intrinsic := f32.Sz(float32(r.Intn(600)-100), float32(r.Intn(600)-100))
		for _, w := range policies {
			for _, h := range policies {
				sz := l.Resolve(w, h, intrinsic)
				if sz.Width < min.Width || sz.Width > max.Width ||
					sz.Height < min.Height || sz.Height > max.Height {
					t.Fatalf("%v.Resolve(%v, %v, %v) = %v, outside limits", l, w, h, intrinsic, sz)
				}
			}
		}
	}
}

func TestLimitsNarrowing(t *testing.T) {
	l := NewLimits(f32.Sz(10, 10), f32.Sz(100, 100))
	tests := []struct {
		name string
		w    unit.Length
		want Limits
	}{
		{"shrink", unit.Shrink, l},
		{"fixed", unit.Px(40), NewLimits(f32.Sz(40, 10), f32.Sz(40, 100))},
		{"fixed above max", unit.Px(400), NewLimits(f32.Sz(100, 10), f32.Sz(100, 100))},
		{"fixed below min", unit.Px(2), NewLimits(f32.Sz(10, 10), f32.Sz(10, 100))},
		{"fill", unit.Fill, NewLimits(f32.Sz(100, 10), f32.Sz(100, 100))},
		{"portion", unit.Portion(4), NewLimits(f32.Sz(100, 10), f32.Sz(100, 100))},
		{"fill max", unit.FillMax(60), NewLimits(f32.Sz(60, 10), f32.Sz(60, 100))},
		{"fill max below min", unit.FillMax(5), NewLimits(f32.Sz(10, 10), f32.Sz(10, 100))},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, l.Width(tc.w))
		})
	}
}

func TestResolveFillUnbounded(t *testing.T) {
	l := Unbounded()
	sz := l.Resolve(unit.Fill, unit.Shrink, f32.Sz(30, 20))
	assert.Equal(t, f32.Sz(30, 20), sz, "fill without a bound falls back to the content size")
}

func TestResolveShrinkClamps(t *testing.T) {
	l := NewLimits(f32.Sz(10, 10), f32.Sz(50, 50))
	assert.Equal(t, f32.Sz(10, 50), l.Resolve(unit.Shrink, unit.Shrink, f32.Sz(0, 80)))
	assert.Equal(t, f32.Sz(50, 50), l.Resolve(unit.Fill, unit.Fill, f32.Sz(0, 0)))
}

func TestLimitsPad(t *testing.T) {
	l := NewLimits(f32.Sz(4, 30), f32.Sz(100, f32.Inf))
	got := l.Pad(Inset{Top: 5, Right: 3, Bottom: 5, Left: 3})
	assert.Equal(t, f32.Sz(0, 20), got.Min)
	assert.Equal(t, float32(94), got.Max.Width)
	assert.True(t, f32.IsInf(got.Max.Height))
}

func TestLimitsMaxWidth(t *testing.T) {
	l := NewLimits(f32.Sz(20, 0), f32.Sz(100, 100))
	assert.Equal(t, float32(50), l.MaxWidth(50).Max.Width)
	assert.Equal(t, float32(20), l.MaxWidth(5).Max.Width, "max never drops below min")
	assert.Equal(t, float32(100), l.MaxWidth(f32.Inf).Max.Width)
}
