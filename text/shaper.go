// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"flexui.org/f32"
)

// Shaper measures and breaks text set in an OpenType font.
//
// Line layouts are cached and re-used if possible. A Shaper is
// not safe for concurrent use.
type Shaper struct {
	face    opentype
	buf     sfnt.Buffer
	breaker *breaker
	cache   layoutCache
}

var _ Measurer = (*Shaper)(nil)

// NewShaper returns a Shaper for the font.
func NewShaper(f *sfnt.Font) *Shaper {
	return &Shaper{
		face:    opentype{Font: f, Hinting: font.HintingNone},
		breaker: newBreaker(),
	}
}

// Font returns the font of the Shaper.
func (s *Shaper) Font() *sfnt.Font {
	return s.face.Font
}

// Layout breaks str into lines no wider than maxWidth at the text
// size. An infinite maxWidth only breaks at newlines.
func (s *Shaper) Layout(str string, size, maxWidth float32) []Line {
	ppem := fixedSize(size)
	key := layoutKey{ppem: ppem, maxWidth: fixedWidth(maxWidth), str: str}
	if lines, ok := s.cache.Get(key); ok {
		return lines
	}
	advance := func(str string) float32 {
		return fromFixed(s.face.Advance(&s.buf, ppem, str))
	}
	lines := s.breaker.wrap(str, maxWidth, advance)
	s.cache.Put(key, lines)
	return lines
}

// LineHeight returns the distance between consecutive baselines.
func (s *Shaper) LineHeight(size float32) float32 {
	m := s.face.Metrics(&s.buf, fixedSize(size))
	if m.Height == 0 {
		return size * LineHeight
	}
	return fromFixed(m.Height)
}

// Ascent returns the height above the baseline of a line.
func (s *Shaper) Ascent(size float32) float32 {
	m := s.face.Metrics(&s.buf, fixedSize(size))
	return fromFixed(m.Ascent)
}

// MeasureText implements Measurer.
func (s *Shaper) MeasureText(content string, size float32, bounds f32.Size) f32.Size {
	lines := s.Layout(content, size, bounds.Width)
	return Size(lines, s.LineHeight(size))
}

func fixedSize(size float32) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(float64(size) * 64))
}

// fixedWidth converts a width for use as a cache key. Infinite
// widths map to the largest representable width.
func fixedWidth(w float32) fixed.Int26_6 {
	if f32.IsInf(w) || w > math.MaxInt32/64 {
		return math.MaxInt32
	}
	return fixed.Int26_6(math.Floor(float64(w) * 64))
}

func fromFixed(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
