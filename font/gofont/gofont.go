// SPDX-License-Identifier: Unlicense OR MIT

// Package gofont exports the Go fonts.
//
// See https://blog.golang.org/go-fonts for a description of the
// fonts, and the golang.org/x/image/font/gofont packages for the
// font data.
package gofont

import (
	"fmt"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"flexui.org/font"
	"flexui.org/font/opentype"
)

var (
	regOnce    sync.Once
	reg        font.FontFace
	once       sync.Once
	collection []font.FontFace
)

func loadRegular() {
	regOnce.Do(func() {
		face, err := opentype.Parse(goregular.TTF)
		if err != nil {
			panic(fmt.Errorf("failed to parse font: %v", err))
		}
		reg = font.FontFace{Font: font.Font{Typeface: "Go"}, Face: face}
	})
}

// Regular returns the Go regular font.
func Regular() font.FontFace {
	loadRegular()
	return reg
}

// Collection returns a collection of the Go font faces,
// starting with the regular face.
func Collection() []font.FontFace {
	loadRegular()
	once.Do(func() {
		collection = append(collection, reg)
		register(font.Font{Style: font.Italic}, goitalic.TTF)
		register(font.Font{Weight: font.Bold}, gobold.TTF)
		register(font.Font{Weight: font.Medium}, gomedium.TTF)
		register(font.Font{Variant: "Mono"}, gomono.TTF)
		// Ensure that any outside appends will not reuse the backing store.
		n := len(collection)
		collection = collection[:n:n]
	})
	return collection
}

func register(fnt font.Font, ttf []byte) {
	face, err := opentype.Parse(ttf)
	if err != nil {
		panic(fmt.Errorf("failed to parse font: %v", err))
	}
	fnt.Typeface = "Go"
	collection = append(collection, font.FontFace{Font: fnt, Face: face})
}
