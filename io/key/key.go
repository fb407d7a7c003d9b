// SPDX-License-Identifier: Unlicense OR MIT

// Package key implements key events.
package key

import (
	"strings"
)

// An Event is generated when a key is pressed or released.
type Event struct {
	// Name of the key.
	Name Name
	// Modifiers is the set of active modifiers when the key was pressed.
	Modifiers Modifiers
	// State is the state of the key when the event was fired.
	State State
}

// State is the state of a key during an event.
type State uint8

const (
	// Press is the state of a pressed key.
	Press State = iota
	// Release is the state of a key that has been released.
	Release
)

// Modifiers
type Modifiers uint32

const (
	// ModCtrl is the ctrl modifier key.
	ModCtrl Modifiers = 1 << iota
	// ModCommand is the command modifier key
	// found on Apple keyboards.
	ModCommand
	// ModShift is the shift modifier key.
	ModShift
	// ModAlt is the alt modifier key, or the option
	// key on Apple keyboards.
	ModAlt
	// ModSuper is the "logo" modifier key, often
	// represented by a Windows logo.
	ModSuper
)

// Name is the identifier for a keyboard key.
//
// For letters, the upper case form is used.
type Name string

const (
	// Names for special keys.
	NameLeftArrow  Name = "←"
	NameRightArrow Name = "→"
	NameUpArrow    Name = "↑"
	NameDownArrow  Name = "↓"
	NameReturn     Name = "⏎"
	NameEscape     Name = "⎋"
	NameHome       Name = "⇱"
	NameEnd        Name = "⇲"
	NamePageUp     Name = "⇞"
	NamePageDown   Name = "⇟"
	NameTab        Name = "Tab"
	NameSpace      Name = "Space"
	NameCtrl       Name = "Ctrl"
	NameShift      Name = "Shift"
	NameAlt        Name = "Alt"
	NameSuper      Name = "Super"
	NameCommand    Name = "⌘"
)

// Contain reports whether m contains all modifiers
// in m2.
func (m Modifiers) Contain(m2 Modifiers) bool {
	return m&m2 == m2
}

func (Event) ImplementsEvent() {}

func (m Modifiers) String() string {
	var strs []string
	if m.Contain(ModCtrl) {
		strs = append(strs, string(NameCtrl))
	}
	if m.Contain(ModCommand) {
		strs = append(strs, string(NameCommand))
	}
	if m.Contain(ModShift) {
		strs = append(strs, string(NameShift))
	}
	if m.Contain(ModAlt) {
		strs = append(strs, string(NameAlt))
	}
	if m.Contain(ModSuper) {
		strs = append(strs, string(NameSuper))
	}
	return strings.Join(strs, "-")
}

func (s State) String() string {
	switch s {
	case Press:
		return "Press"
	case Release:
		return "Release"
	default:
		panic("invalid State")
	}
}

func (e Event) String() string {
	if e.Modifiers != 0 {
		return e.Modifiers.String() + "-" + string(e.Name) + " " + e.State.String()
	}
	return string(e.Name) + " " + e.State.String()
}

var names = map[string]Name{
	"Left":     NameLeftArrow,
	"Right":    NameRightArrow,
	"Up":       NameUpArrow,
	"Down":     NameDownArrow,
	"Return":   NameReturn,
	"Enter":    NameReturn,
	"Escape":   NameEscape,
	"Home":     NameHome,
	"End":      NameEnd,
	"PageUp":   NamePageUp,
	"PageDown": NamePageDown,
	"Tab":      NameTab,
	"Space":    NameSpace,
}

var modifiers = map[string]Modifiers{
	"Ctrl":  ModCtrl,
	"Cmd":   ModCommand,
	"Shift": ModShift,
	"Alt":   ModAlt,
	"Super": ModSuper,
}

// Parse parses a key combination such as "Shift-Tab" or "Ctrl-A"
// into a key press event. Letters are converted to upper case.
func Parse(s string) (Event, bool) {
	parts := strings.Split(s, "-")
	var e Event
	for _, m := range parts[:len(parts)-1] {
		mod, ok := modifiers[m]
		if !ok {
			return Event{}, false
		}
		e.Modifiers |= mod
	}
	last := parts[len(parts)-1]
	switch n, ok := names[last]; {
	case ok:
		e.Name = n
	case len([]rune(last)) == 1:
		e.Name = Name(strings.ToUpper(last))
	default:
		return Event{}, false
	}
	return e, true
}
