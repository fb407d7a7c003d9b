// SPDX-License-Identifier: Unlicense OR MIT

/*
Package font provides type describing font faces attributes.
*/
package font

import (
	"golang.org/x/image/font/sfnt"
)

// A FontFace is a Font and a matching Face.
type FontFace struct {
	Font Font
	Face *sfnt.Font
}

// Style is the font style.
type Style int

// Weight is a font weight, in CSS units subtracted 400 so the zero value
// is normal text weight.
type Weight int

// Font specify a particular typeface variant, style and weight.
type Font struct {
	Typeface Typeface
	Variant  Variant
	Style    Style
	// Weight is the text weight. If zero, Normal is used instead.
	Weight Weight
}

// Typeface identifies a particular typeface design. The empty
// string denotes the default typeface.
type Typeface string

// Variant denotes a typeface variant such as "Mono" or "Smallcaps".
type Variant string

const (
	Regular Style = iota
	Italic
)

const (
	Normal Weight = 0
	Medium Weight = 100
	Bold   Weight = 300
)

// Lookup returns the face in faces matching f. Fields of f left
// empty match any value. Lookup falls back to the first face, and
// returns nil only for an empty collection.
func Lookup(faces []FontFace, f Font) *sfnt.Font {
	if len(faces) == 0 {
		return nil
	}
	for _, ff := range faces {
		if f.Typeface != "" && ff.Font.Typeface != f.Typeface {
			continue
		}
		if ff.Font.Variant != f.Variant || ff.Font.Style != f.Style || ff.Font.Weight != f.Weight {
			continue
		}
		return ff.Face
	}
	return faces[0].Face
}

func (s Style) String() string {
	switch s {
	case Regular:
		return "Regular"
	case Italic:
		return "Italic"
	default:
		panic("invalid Style")
	}
}

func (w Weight) String() string {
	switch w {
	case Normal:
		return "Normal"
	case Medium:
		return "Medium"
	case Bold:
		return "Bold"
	default:
		panic("invalid Weight")
	}
}
