// SPDX-License-Identifier: Unlicense OR MIT

package pointer

import (
	"testing"
)

func TestTypeString(t *testing.T) {
	for _, tc := range []struct {
		typ Kind
		res string
	}{
		{Press, "Press"},
		{Release, "Release"},
		{Move, "Move"},
		{Leave, "Leave"},
		{Scroll, "Scroll"},
		{Press | Release, "Press|Release"},
		{Move | Scroll, "Move|Scroll"},
		{Press | Leave | Move, "Press|Move|Leave"},
	} {
		t.Run(tc.res, func(t *testing.T) {
			if want, got := tc.res, tc.typ.String(); want != got {
				t.Errorf("got %q; want %q", got, want)
			}
		})
	}
}

func TestMaxCursor(t *testing.T) {
	if got := MaxCursor(); got != CursorDefault {
		t.Errorf("MaxCursor() = %v", got)
	}
	if got := MaxCursor(CursorDefault, CursorPointer, CursorText); got != CursorPointer {
		t.Errorf("MaxCursor = %v, want Pointer", got)
	}
	for c := CursorDefault; c <= CursorWait; c++ {
		if c.String() == "" {
			t.Errorf("cursor %d has no name", c)
		}
	}
}
