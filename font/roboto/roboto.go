// SPDX-License-Identifier: Unlicense OR MIT

// Package roboto exports the Roboto regular font.
package roboto

import (
	"fmt"
	"sync"

	"eliasnaur.com/font/roboto/robotoregular"

	"flexui.org/font"
	"flexui.org/font/opentype"
)

var (
	once sync.Once
	reg  font.FontFace
)

// Regular returns the Roboto regular font.
func Regular() font.FontFace {
	once.Do(func() {
		face, err := opentype.Parse(robotoregular.TTF)
		if err != nil {
			panic(fmt.Errorf("failed to parse font: %v", err))
		}
		reg = font.FontFace{Font: font.Font{Typeface: "Roboto"}, Face: face}
	})
	return reg
}
