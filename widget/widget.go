// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"flexui.org/f32"
	"flexui.org/io/event"
	"flexui.org/io/pointer"
	"flexui.org/layout"
	"flexui.org/op"
	"flexui.org/text"
	"flexui.org/unit"
)

// Widget is the interface every node of a widget tree implements.
type Widget interface {
	// Width returns the horizontal length policy.
	Width() unit.Length
	// Height returns the vertical length policy.
	Height() unit.Length
	// Layout computes the layout node of the widget within l.
	// The position of the returned node is chosen by the parent.
	Layout(m text.Measurer, l layout.Limits) layout.Node
	// Draw draws the widget at its layout. Viewport is the visible
	// area, in the coordinates of the layout.
	Draw(t *Tree, r op.Renderer, th *Theme, l layout.Layout, c Cursor, viewport f32.Rectangle)
}

// Measurer is implemented by widgets that compute their size
// cheaper than their full layout.
type Measurer interface {
	Measure(m text.Measurer, l layout.Limits) f32.Size
}

// Stateful is implemented by widgets with persistent state.
type Stateful interface {
	// State returns the initial state, usually a pointer.
	State() any
}

// Parent is implemented by widgets with children.
type Parent interface {
	Children() []Widget
}

// Differ is implemented by widgets that reconcile their state tree
// differently from the child by child default.
type Differ interface {
	Diff(t *Tree)
}

// Operator is implemented by widgets exposing themselves or their
// children to operations.
type Operator interface {
	Operate(t *Tree, l layout.Layout, m text.Measurer, o Operation)
}

// Handler is implemented by widgets processing events.
type Handler interface {
	Event(t *Tree, e event.Event, l layout.Layout, c Cursor, m text.Measurer, sh *Shell) event.Status
}

// Hinter is implemented by widgets hinting a pointer cursor.
type Hinter interface {
	Hint(t *Tree, l layout.Layout, c Cursor, viewport f32.Rectangle, m text.Measurer) pointer.Cursor
}

// Overlayer is implemented by widgets that draw above the rest
// of the tree.
type Overlayer interface {
	// Overlay returns the overlay of the widget, or nil.
	Overlay(t *Tree, l layout.Layout, m text.Measurer) Overlay
}

// Measure returns the size of w within l.
func Measure(w Widget, m text.Measurer, l layout.Limits) f32.Size {
	if w, ok := w.(Measurer); ok {
		return w.Measure(m, l)
	}
	return w.Layout(m, l).Size()
}

// InitialState returns the initial state of w, or nil for stateless
// widgets.
func InitialState(w Widget) any {
	if w, ok := w.(Stateful); ok {
		return w.State()
	}
	return nil
}

// ChildrenOf returns the children of w.
func ChildrenOf(w Widget) []Widget {
	if w, ok := w.(Parent); ok {
		return w.Children()
	}
	return nil
}

// Operate applies o to w.
func Operate(w Widget, t *Tree, l layout.Layout, m text.Measurer, o Operation) {
	if w, ok := w.(Operator); ok {
		w.Operate(t, l, m, o)
	}
}

// Event delivers e to w. Widgets without a Handler ignore events.
func Event(w Widget, t *Tree, e event.Event, l layout.Layout, c Cursor, m text.Measurer, sh *Shell) event.Status {
	if w, ok := w.(Handler); ok {
		return w.Event(t, e, l, c, m, sh)
	}
	return event.Ignored
}

// Hint returns the pointer cursor hinted by w.
func Hint(w Widget, t *Tree, l layout.Layout, c Cursor, viewport f32.Rectangle, m text.Measurer) pointer.Cursor {
	if w, ok := w.(Hinter); ok {
		return w.Hint(t, l, c, viewport, m)
	}
	return pointer.CursorDefault
}

// OverlayOf returns the overlay of w, or nil.
func OverlayOf(w Widget, t *Tree, l layout.Layout, m text.Measurer) Overlay {
	if w, ok := w.(Overlayer); ok {
		return w.Overlay(t, l, m)
	}
	return nil
}

// items adapts a list of widgets for layout.Flex and layout.Stack.
type items struct {
	m  text.Measurer
	ws []Widget
}

func (it items) Len() int                 { return len(it.ws) }
func (it items) Width(i int) unit.Length  { return it.ws[i].Width() }
func (it items) Height(i int) unit.Length { return it.ws[i].Height() }

func (it items) Layout(i int, l layout.Limits) layout.Node {
	return it.ws[i].Layout(it.m, l)
}

func (it items) Measure(i int, l layout.Limits) f32.Size {
	return Measure(it.ws[i], it.m, l)
}
