// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture implements common pointer gestures.

Gestures accept low level pointer Events delivered to a widget
and detect higher level actions such as clicks and scrolling.
Gestures are plain values, meant to be stored in widget state and
updated for every event the widget receives.
*/
package gesture

import (
	"flexui.org/f32"
	"flexui.org/io/key"
	"flexui.org/io/pointer"
)

// Click detects click gestures in the form
// of ClickEvents.
type Click struct {
	// state tracks the gesture state.
	state ClickState
}

type ClickState uint8

// ClickEvent represent a click action, either a
// TypePress for the beginning of a click or a
// TypeClick for a completed click.
type ClickEvent struct {
	Type      ClickType
	Position  f32.Point
	Modifiers key.Modifiers
}

type ClickType uint8

// Hover detects the pointer entering and leaving an area.
type Hover struct {
	hovered bool
}

// Scroll reduces mouse wheel movements to scroll distances
// in pixels.
type Scroll struct {
	// Step is the distance of a wheel notch. The zero value
	// means DefaultStep.
	Step float32
}

type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// DefaultStep is the default distance of a wheel notch, in pixels.
const DefaultStep = 40

const (
	// StateNormal is the default click state.
	StateNormal ClickState = iota
	// StateFocused is reported when a pointer
	// is hovering over the handler.
	StateFocused
	// StatePressed is then a pointer is pressed.
	StatePressed
)

const (
	// TypePress is reported for the first pointer
	// press.
	TypePress ClickType = iota
	// TypeClick is reporoted when a click action
	// is complete.
	TypeClick
	// TypeCancel is reported when a press is released
	// outside the area.
	TypeCancel
)

// State reports the click state.
func (c *Click) State() ClickState {
	return c.state
}

// Pressed reports whether a press is in progress.
func (c *Click) Pressed() bool {
	return c.state == StatePressed
}

// Update the gesture with a pointer event. Hit reports whether the
// event position is inside the area of the gesture. The returned
// boolean reports whether a ClickEvent was detected.
func (c *Click) Update(e pointer.Event, hit bool) (ClickEvent, bool) {
	switch e.Kind {
	case pointer.Release:
		wasPressed := c.state == StatePressed
		c.state = StateNormal
		if hit {
			c.state = StateFocused
		}
		if !wasPressed {
			break
		}
		if !hit {
			return ClickEvent{Type: TypeCancel, Position: e.Position, Modifiers: e.Modifiers}, true
		}
		return ClickEvent{Type: TypeClick, Position: e.Position, Modifiers: e.Modifiers}, true
	case pointer.Leave:
		if c.state == StateFocused {
			c.state = StateNormal
		}
	case pointer.Press:
		if c.state == StatePressed || !hit {
			break
		}
		if e.Buttons != 0 && !e.Buttons.Contain(pointer.ButtonPrimary) {
			break
		}
		c.state = StatePressed
		return ClickEvent{Type: TypePress, Position: e.Position, Modifiers: e.Modifiers}, true
	case pointer.Move:
		switch {
		case c.state == StatePressed:
		case hit:
			c.state = StateFocused
		default:
			c.state = StateNormal
		}
	}
	return ClickEvent{}, false
}

// Hovered reports whether the pointer is over the area.
func (h *Hover) Hovered() bool {
	return h.hovered
}

// Update the gesture with a pointer event and report whether the
// hover state changed.
func (h *Hover) Update(e pointer.Event, hit bool) bool {
	was := h.hovered
	switch e.Kind {
	case pointer.Leave:
		h.hovered = false
	default:
		h.hovered = hit
	}
	return was != h.hovered
}

// Update returns the scroll distance along axis of a wheel event
// inside the area. Positive distances scroll towards the end.
func (s *Scroll) Update(e pointer.Event, hit bool, axis Axis) float32 {
	if e.Kind != pointer.Scroll || !hit {
		return 0
	}
	step := s.Step
	if step == 0 {
		step = DefaultStep
	}
	switch axis {
	case Horizontal:
		return e.Scroll.X * step
	default:
		return e.Scroll.Y * step
	}
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("invalid Axis")
	}
}

func (ct ClickType) String() string {
	switch ct {
	case TypePress:
		return "TypePress"
	case TypeClick:
		return "TypeClick"
	case TypeCancel:
		return "TypeCancel"
	default:
		panic("invalid ClickType")
	}
}

func (cs ClickState) String() string {
	switch cs {
	case StateNormal:
		return "StateNormal"
	case StateFocused:
		return "StateFocused"
	case StatePressed:
		return "StatePressed"
	default:
		panic("invalid ClickState")
	}
}
