// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"
)

// Palette contains the colors of a Theme.
type Palette struct {
	// Bg is the background color atop which content is drawn.
	Bg color.NRGBA
	// Fg is the color of text and decorations.
	Fg color.NRGBA
	// ContrastBg is the background of emphasized widgets such
	// as buttons.
	ContrastBg color.NRGBA
	// ContrastFg is the color of content atop ContrastBg.
	ContrastFg color.NRGBA
}

// Theme holds the colors and sizes used for drawing widgets.
type Theme struct {
	Palette
	// TextSize is the default text size, in pixels.
	TextSize float32
}

// DefaultTextSize is the text size of widgets without one.
const DefaultTextSize = 16

// NewTheme returns the default theme.
func NewTheme() *Theme {
	return &Theme{
		Palette: Palette{
			Bg:         rgb(0xffffff),
			Fg:         rgb(0x000000),
			ContrastBg: rgb(0x3f51b5),
			ContrastFg: rgb(0xffffff),
		},
		TextSize: DefaultTextSize,
	}
}

// Contrast returns a copy of the theme for content drawn atop
// ContrastBg.
func (th *Theme) Contrast() *Theme {
	c := *th
	c.Bg, c.Fg = th.ContrastBg, th.ContrastFg
	return &c
}

func rgb(c uint32) color.NRGBA {
	return argb(0xff000000 | c)
}

func argb(c uint32) color.NRGBA {
	return color.NRGBA{A: uint8(c >> 24), R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c)}
}

// mulAlpha applies the alpha to the color.
func mulAlpha(c color.NRGBA, alpha uint8) color.NRGBA {
	c.A = uint8(uint32(c.A) * uint32(alpha) / 0xFF)
	return c
}

// mix returns the linear interpolation between a and b, from a at
// t = 0 to b at t = 1.
func mix(a, b color.NRGBA, t float32) color.NRGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t + 0.5)
	}
	return color.NRGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: lerp(a.A, b.A)}
}
