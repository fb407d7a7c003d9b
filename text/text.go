// SPDX-License-Identifier: Unlicense OR MIT

// Package text implements measurement and line breaking of text.
package text

import (
	"flexui.org/f32"
)

// Measurer measures text for layout.
type Measurer interface {
	// MeasureText returns the size of content drawn at the given
	// text size, wrapped to fit the width of bounds. Lines wider
	// than the bounds are not truncated.
	MeasureText(content string, size float32, bounds f32.Size) f32.Size
}

// A Line is a line of text after line breaking.
type Line struct {
	Text string
	// Width is the width of the line, excluding trailing spaces.
	Width float32
}

// LineHeight is the height of a line relative to the text size, used
// by measurers without font metrics.
const LineHeight = 1.25

// Size returns the bounding size of lines of the given height.
func Size(lines []Line, lineHeight float32) f32.Size {
	var sz f32.Size
	for _, l := range lines {
		if l.Width > sz.Width {
			sz.Width = l.Width
		}
	}
	sz.Height = float32(len(lines)) * lineHeight
	return sz
}
