// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"flexui.org/f32"
	"flexui.org/io/event"
	"flexui.org/io/key"
	"flexui.org/io/pointer"
	"flexui.org/layout"
	"flexui.org/op"
	"flexui.org/op/paint"
	"flexui.org/text"
	"flexui.org/widget"
)

// State reports whether the program must rebuild the widget tree
// after an update.
type State uint8

const (
	// Updated means the widget tree is still current.
	Updated State = iota
	// Outdated means messages were published. The program should
	// process them and build a new widget tree.
	Outdated
)

// UserInterface is a widget tree laid out within bounds, together
// with its state tree.
//
// A UserInterface is used by a single goroutine: every method
// completes a full pass over the tree before returning.
type UserInterface struct {
	root   widget.Widget
	tree   widget.Tree
	node   layout.Node
	bounds f32.Size
	m      text.Measurer
	logger *log.Logger

	messages []any
	redraw   bool
}

// Cache holds the state tree of a UserInterface for the next one.
// The zero Cache is empty.
type Cache struct {
	tree  widget.Tree
	valid bool
}

// Option configures a UserInterface.
type Option func(ui *UserInterface)

var discard = log.New(io.Discard)

// WithLogger makes the user interface log its passes at debug
// level to l.
func WithLogger(l *log.Logger) Option {
	return func(ui *UserInterface) {
		ui.logger = l
	}
}

// Build a user interface for root within bounds. The state tree of
// the cache is reconciled with root, keeping the state of widgets
// at unchanged positions.
func Build(root widget.Widget, bounds f32.Size, cache Cache, m text.Measurer, opts ...Option) *UserInterface {
	ui := &UserInterface{root: root, bounds: bounds, m: m, logger: discard}
	for _, o := range opts {
		o(ui)
	}
	start := time.Now()
	if cache.valid {
		ui.tree = cache.tree
		ui.tree.Diff(root)
	} else {
		ui.tree = widget.NewTree(root)
	}
	ui.logger.Debug("diff", "tag", ui.tree.Tag, "states", ui.tree.Len(), "reused", cache.valid, "elapsed", time.Since(start))
	ui.layout()
	return ui
}

func (ui *UserInterface) layout() {
	start := time.Now()
	ui.node = ui.root.Layout(ui.m, layout.NewLimits(f32.Size{}, ui.bounds))
	ui.logger.Debug("layout", "bounds", ui.bounds, "size", ui.node.Size(), "elapsed", time.Since(start))
}

// Relayout lays out the tree within new bounds.
func (ui *UserInterface) Relayout(bounds f32.Size, m text.Measurer) {
	ui.bounds, ui.m = bounds, m
	ui.layout()
}

// Node returns the layout of the root widget.
func (ui *UserInterface) Node() layout.Node {
	return ui.node
}

// Bounds returns the size the tree is laid out in.
func (ui *UserInterface) Bounds() f32.Size {
	return ui.bounds
}

// overlay returns the overlay of the tree and its layout, if any.
func (ui *UserInterface) overlay() (widget.Overlay, *layout.Node) {
	o := widget.OverlayOf(ui.root, &ui.tree, layout.NewLayout(&ui.node), ui.m)
	if o == nil {
		return nil, nil
	}
	n := o.Layout(ui.m, ui.bounds)
	return o, &n
}

// Update delivers events in order, first to the overlay, if any, and
// then to the widget tree. The tree doesn't see the cursor while it
// is over the overlay. The returned statuses are the merged statuses
// of each event.
func (ui *UserInterface) Update(events []event.Event, cursor widget.Cursor, m text.Measurer) (State, []event.Status) {
	ui.m = m
	statuses := make([]event.Status, len(events))
	var sh widget.Shell
	for i, e := range events {
		status := event.Ignored
		base := cursor
		if o, n := ui.overlay(); o != nil {
			status = o.Event(e, layout.NewLayout(n), cursor, m, &sh)
			if cursor.In(n.Bounds()) {
				base = widget.Cursor{}
			}
		}
		status = status.Merge(widget.Event(ui.root, &ui.tree, e, layout.NewLayout(&ui.node), base, m, &sh))
		if status == event.Ignored && ui.moveFocus(e, m) {
			status = event.Captured
			sh.RequestRedraw()
		}
		statuses[i] = status
		ui.logger.Debug("event", "event", e, "cursor", cursor, "status", status)
		if sh.LayoutInvalidated() {
			ui.layout()
			sh.RevalidateLayout()
		}
	}
	ui.messages = append(ui.messages, sh.Messages()...)
	if sh.RedrawRequested() {
		ui.redraw = true
	}
	if len(sh.Messages()) > 0 {
		return Outdated, statuses
	}
	return Updated, statuses
}

// moveFocus moves the focus forward on Tab and backward on
// Shift-Tab, and reports whether e was such a key press.
func (ui *UserInterface) moveFocus(e event.Event, m text.Measurer) bool {
	ke, ok := e.(key.Event)
	if !ok || ke.State != key.Press || ke.Name != key.NameTab {
		return false
	}
	switch ke.Modifiers {
	case 0:
		ui.Operate(m, widget.FocusNext())
	case key.ModShift:
		ui.Operate(m, widget.FocusPrevious())
	default:
		return false
	}
	ui.logger.Debug("focus", "key", ke)
	return true
}

// Messages returns the messages published since the last call.
func (ui *UserInterface) Messages() []any {
	msgs := ui.messages
	ui.messages = nil
	return msgs
}

// RedrawRequested reports whether a widget requested a redraw since
// the last Draw.
func (ui *UserInterface) RedrawRequested() bool {
	return ui.redraw
}

// Draw the background, the tree and the overlay, and return the
// pointer cursor hinted at cursor.
func (ui *UserInterface) Draw(r op.Renderer, th *widget.Theme, cursor widget.Cursor) pointer.Cursor {
	start := time.Now()
	viewport := f32.Rectangle{Max: ui.bounds.Point()}
	l := layout.NewLayout(&ui.node)
	o, on := ui.overlay()
	base := cursor
	if o != nil && cursor.In(on.Bounds()) {
		base = widget.Cursor{}
	}
	r.DrawPrimitive(paint.Fill(viewport, th.Bg))
	ui.root.Draw(&ui.tree, r, th, l, base, viewport)
	hint := widget.Hint(ui.root, &ui.tree, l, base, viewport, ui.m)
	if o != nil {
		ol := layout.NewLayout(on)
		o.Draw(r, th, ol, cursor)
		if cursor.In(on.Bounds()) {
			hint = o.Hint(ol, cursor, viewport, ui.m)
		}
	}
	ui.redraw = false
	ui.logger.Debug("draw", "cursor", hint, "overlay", o != nil, "elapsed", time.Since(start))
	return hint
}

// Operate applies o to the tree, followed by the operations it
// finishes with.
func (ui *UserInterface) Operate(m text.Measurer, o widget.Operation) {
	ui.m = m
	for o != nil {
		widget.Operate(ui.root, &ui.tree, layout.NewLayout(&ui.node), m, o)
		f, ok := o.(widget.Finisher)
		if !ok {
			return
		}
		o = f.Finish()
	}
}

// Cache returns the state for building the next user interface. The
// user interface must not be used afterwards.
func (ui *UserInterface) Cache() Cache {
	return Cache{tree: ui.tree, valid: true}
}

func (s State) String() string {
	switch s {
	case Updated:
		return "Updated"
	case Outdated:
		return "Outdated"
	default:
		panic("unknown state")
	}
}
