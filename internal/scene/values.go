// SPDX-License-Identifier: Unlicense OR MIT

package scene

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"flexui.org/layout"
	"flexui.org/unit"
)

// ErrInvalidValue is returned for values that can't be decoded.
var ErrInvalidValue = errors.New("invalid value")

// Length is a length policy. It decodes from a number of pixels or
// from one of the strings "shrink", "fill", "portion:N" and "max:PX".
type Length struct {
	unit.Length
}

// UnmarshalTOML implements toml.Unmarshaler.
func (l *Length) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case int64:
		l.Length = unit.Px(float32(v))
	case float64:
		l.Length = unit.Px(float32(v))
	case string:
		return l.parse(v)
	default:
		return fmt.Errorf("length %v: %w", v, ErrInvalidValue)
	}
	return nil
}

func (l *Length) parse(s string) error {
	name, arg, hasArg := strings.Cut(strings.TrimSpace(s), ":")
	switch {
	case name == "shrink" && !hasArg:
		l.Length = unit.Shrink
	case name == "fill" && !hasArg:
		l.Length = unit.Fill
	case name == "portion" && hasArg:
		w, err := strconv.ParseUint(arg, 10, 16)
		if err != nil {
			return fmt.Errorf("length %q: %w", s, ErrInvalidValue)
		}
		l.Length = unit.Portion(uint16(w))
	case name == "max" && hasArg:
		px, err := strconv.ParseFloat(arg, 32)
		if err != nil {
			return fmt.Errorf("length %q: %w", s, ErrInvalidValue)
		}
		l.Length = unit.FillMax(float32(px))
	default:
		px, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return fmt.Errorf("length %q: %w", s, ErrInvalidValue)
		}
		l.Length = unit.Px(float32(px))
	}
	return nil
}

// Color is a color decoded from a CSS color name or a hexadecimal
// "#rrggbb" or "#rrggbbaa" string.
type Color struct {
	color.NRGBA
	// Set reports whether the color was present.
	Set bool
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	col, err := parseColor(string(text))
	if err != nil {
		return err
	}
	c.NRGBA, c.Set = col, true
	return nil
}

// override replaces dst with c if c was present.
func (c Color) override(dst *color.NRGBA) {
	if c.Set {
		*dst = c.NRGBA
	}
}

func parseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		if len(hex) == 6 {
			hex += "ff"
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if len(hex) != 8 || err != nil {
			return color.NRGBA{}, fmt.Errorf("color %q: %w", s, ErrInvalidValue)
		}
		return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
	}
	c, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return color.NRGBA{}, fmt.Errorf("color %q: %w", s, ErrInvalidValue)
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
}

// Alignment decodes from "start", "center", "end" or "fill".
type Alignment struct {
	layout.Alignment
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Alignment) UnmarshalText(text []byte) error {
	switch string(text) {
	case "start", "left", "top":
		a.Alignment = layout.Start
	case "center", "middle":
		a.Alignment = layout.Middle
	case "end", "right", "bottom":
		a.Alignment = layout.End
	case "fill":
		a.Alignment = layout.Fill
	default:
		return fmt.Errorf("alignment %q: %w", text, ErrInvalidValue)
	}
	return nil
}

// Inset decodes from a number for all sides, an array of two numbers
// for the vertical and horizontal sides, or an array of four numbers
// in the order top, right, bottom, left.
type Inset struct {
	layout.Inset
	// Set reports whether the inset was present.
	Set bool
}

// UnmarshalTOML implements toml.Unmarshaler.
func (in *Inset) UnmarshalTOML(v any) error {
	if vs, ok := v.([]any); ok {
		fs := make([]float32, len(vs))
		for i, v := range vs {
			f, ok := number(v)
			if !ok {
				return fmt.Errorf("inset %v: %w", vs, ErrInvalidValue)
			}
			fs[i] = f
		}
		switch len(fs) {
		case 2:
			in.Inset = layout.SymmetricInset(fs[0], fs[1])
		case 4:
			in.Inset = layout.Inset{Top: fs[0], Right: fs[1], Bottom: fs[2], Left: fs[3]}
		default:
			return fmt.Errorf("inset %v: %w", vs, ErrInvalidValue)
		}
		in.Set = true
		return nil
	}
	f, ok := number(v)
	if !ok {
		return fmt.Errorf("inset %v: %w", v, ErrInvalidValue)
	}
	in.Inset, in.Set = layout.UniformInset(f), true
	return nil
}

func number(v any) (float32, bool) {
	switch v := v.(type) {
	case int64:
		return float32(v), true
	case float64:
		return float32(v), true
	}
	return 0, false
}
