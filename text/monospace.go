// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"sync"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"

	"flexui.org/f32"
)

// Monospace measures text as if set in a monospace font: every
// grapheme advances by Advance times the text size, and wide East
// Asian graphemes advance by twice that.
//
// The zero value uses an advance of 0.6.
type Monospace struct {
	Advance float32

	once    sync.Once
	breaker *breaker
}

var _ Measurer = (*Monospace)(nil)

var setupGraphemes sync.Once

// Cells returns the number of monospace cells of str.
func Cells(str string) int {
	if str == "" {
		return 0
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	gstr := grapheme.StringFromString(str)
	n := 0
	for i := 0; i < gstr.Len(); i++ {
		n += uax11.Width([]byte(gstr.Nth(i)), uax11.LatinContext)
	}
	return n
}

// Layout breaks str into lines no wider than maxWidth.
func (m *Monospace) Layout(str string, size, maxWidth float32) []Line {
	m.once.Do(func() {
		m.breaker = newBreaker()
	})
	cell := m.cell(size)
	return m.breaker.wrap(str, maxWidth, func(s string) float32 {
		return float32(Cells(s)) * cell
	})
}

// MeasureText implements Measurer.
func (m *Monospace) MeasureText(content string, size float32, bounds f32.Size) f32.Size {
	return Size(m.Layout(content, size, bounds.Width), size*LineHeight)
}

func (m *Monospace) cell(size float32) float32 {
	adv := m.Advance
	if adv == 0 {
		adv = 0.6
	}
	return adv * size
}
