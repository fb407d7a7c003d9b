// SPDX-License-Identifier: Unlicense OR MIT

// Package opentype parses OpenType and TrueType font files.
package opentype

import (
	"fmt"
	"strings"

	"golang.org/x/image/font/sfnt"

	"flexui.org/font"
)

// Parse parses a single font from source bytes.
func Parse(src []byte) (*sfnt.Font, error) {
	f, err := sfnt.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("failed parsing truetype font: %w", err)
	}
	return f, nil
}

// ParseCollection parse an Opentype font file, with support for collections.
// Single font files are supported, returning a slice with length 1.
// The returned fonts are wrapped in a font.FontFace with metadata read
// from the font name table.
func ParseCollection(src []byte) ([]font.FontFace, error) {
	c, err := sfnt.ParseCollection(src)
	if err != nil {
		return nil, fmt.Errorf("failed parsing font collection: %w", err)
	}
	out := make([]font.FontFace, c.NumFonts())
	var buf sfnt.Buffer
	for i := range out {
		f, err := c.Font(i)
		if err != nil {
			return nil, fmt.Errorf("reading font %d of collection: %w", i, err)
		}
		out[i] = font.FontFace{Font: describe(&buf, f), Face: f}
	}
	return out, nil
}

// describe infers the font attributes from its names.
func describe(buf *sfnt.Buffer, f *sfnt.Font) font.Font {
	family, _ := f.Name(buf, sfnt.NameIDFamily)
	sub, _ := f.Name(buf, sfnt.NameIDSubfamily)
	var fnt font.Font
	fnt.Typeface = font.Typeface(family)
	if strings.Contains(family, "Mono") {
		fnt.Variant = "Mono"
	}
	sub = strings.ToLower(sub)
	if strings.Contains(sub, "italic") || strings.Contains(sub, "oblique") {
		fnt.Style = font.Italic
	}
	switch {
	case strings.Contains(sub, "bold"):
		fnt.Weight = font.Bold
	case strings.Contains(sub, "medium"):
		fnt.Weight = font.Medium
	}
	return fnt
}
