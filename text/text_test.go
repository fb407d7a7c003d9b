// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"

	"flexui.org/f32"
)

func TestMonospaceSingleLine(t *testing.T) {
	var m Monospace
	sz := m.MeasureText("hello", 10, f32.Sz(f32.Inf, f32.Inf))
	assert.InDelta(t, 30, sz.Width, 1e-4)
	assert.InDelta(t, 12.5, sz.Height, 1e-4)
}

func TestMonospaceWraps(t *testing.T) {
	m := Monospace{Advance: 1}
	lines := m.Layout("aa bb cc", 1, 5)
	require.Len(t, lines, 2)
	assert.Equal(t, "aa bb", lines[0].Text)
	assert.Equal(t, float32(5), lines[0].Width)
	assert.Equal(t, "cc", lines[1].Text)
}

func TestMonospaceNewlines(t *testing.T) {
	m := Monospace{Advance: 1}
	lines := m.Layout("a\n\nbbb", 1, f32.Inf)
	require.Len(t, lines, 3)
	assert.Equal(t, []float32{1, 0, 3}, []float32{lines[0].Width, lines[1].Width, lines[2].Width})
}

func TestMonospaceEmpty(t *testing.T) {
	var m Monospace
	require.NotPanics(t, func() {
		sz := m.MeasureText("", 10, f32.Sz(100, 100))
		assert.Zero(t, sz.Width)
	})
	require.NotPanics(t, func() {
		m.Layout("a\n\n\nb", 10, 100)
	})
}

func TestMonospaceOverflow(t *testing.T) {
	m := Monospace{Advance: 1}
	sz := m.MeasureText("abcdefgh", 1, f32.Sz(4, 100))
	assert.Equal(t, float32(8), sz.Width, "unbreakable words overflow the bounds")
}

func TestCells(t *testing.T) {
	assert.Equal(t, 5, Cells("hello"))
	assert.Equal(t, 4, Cells("日本"))
	assert.Equal(t, 0, Cells(""))
}

func TestShaper(t *testing.T) {
	f, err := sfnt.Parse(goregular.TTF)
	require.NoError(t, err)
	s := NewShaper(f)

	one := s.MeasureText("Hello", 16, f32.Sz(f32.Inf, f32.Inf))
	assert.Greater(t, one.Width, float32(20))
	assert.Less(t, one.Width, float32(80))
	assert.InDelta(t, s.LineHeight(16), one.Height, 1e-4)

	wide := s.MeasureText("Hello Hello", 16, f32.Sz(f32.Inf, f32.Inf))
	assert.Greater(t, wide.Width, 2*one.Width)

	wrapped := s.MeasureText("Hello Hello", 16, f32.Sz(one.Width+1, f32.Inf))
	assert.InDelta(t, one.Width, wrapped.Width, 1e-4)
	assert.InDelta(t, 2*s.LineHeight(16), wrapped.Height, 1e-4)
	assert.Equal(t, 3, s.cache.Len())

	again := s.MeasureText("Hello Hello", 16, f32.Sz(one.Width+1, f32.Inf))
	assert.Equal(t, wrapped, again)
	assert.Equal(t, 3, s.cache.Len(), "layouts are cached")
}
