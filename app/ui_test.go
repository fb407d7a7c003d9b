// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flexui.org/f32"
	"flexui.org/io/event"
	"flexui.org/io/key"
	"flexui.org/io/pointer"
	"flexui.org/layout"
	"flexui.org/op"
	"flexui.org/op/paint"
	"flexui.org/text"
	"flexui.org/unit"
	"flexui.org/widget"
)

// measurer sizes text as size/2 pixels per byte on a single line.
type measurer struct{}

func (measurer) MeasureText(content string, size float32, bounds f32.Size) f32.Size {
	return f32.Sz(float32(len(content))*size/2, size)
}

var m text.Measurer = measurer{}

var window = f32.Sz(200, 200)

type pressed string

func pointerAt(kind pointer.Kind, x, y float32) ([]event.Event, widget.Cursor) {
	p := f32.Pt(x, y)
	return []event.Event{pointer.Event{Kind: kind, Position: p, Buttons: pointer.ButtonPrimary}}, widget.At(p)
}

func view() widget.Widget {
	return widget.NewColumn(
		widget.NewButton(widget.NewText("a")).WithOnPress(pressed("a")),
		widget.NewButton(widget.NewText("b")).WithOnPress(pressed("b")),
	)
}

func TestUpdatePublishes(t *testing.T) {
	ui := Build(view(), window, Cache{}, m)
	evs, c := pointerAt(pointer.Press, 5, 5)
	st, statuses := ui.Update(evs, c, m)
	assert.Equal(t, Updated, st)
	assert.Equal(t, []event.Status{event.Captured}, statuses)

	evs, c = pointerAt(pointer.Release, 5, 5)
	st, _ = ui.Update(evs, c, m)
	assert.Equal(t, Outdated, st)
	assert.Equal(t, []any{pressed("a")}, ui.Messages())
	assert.Empty(t, ui.Messages(), "messages are returned once")
	assert.True(t, ui.RedrawRequested())

	ui.Draw(op.NewRecorder(new(op.Ops)), widget.NewTheme(), c)
	assert.False(t, ui.RedrawRequested())
}

func TestCacheKeepsState(t *testing.T) {
	ui := Build(view(), window, Cache{}, m)
	ui.Operate(m, widget.FocusNext())
	ui.Operate(m, widget.FocusNext())

	ui = Build(view(), window, ui.Cache(), m)
	var cnt widget.Count
	ui.Operate(m, widget.CountFocusable(&cnt))
	assert.Equal(t, widget.Count{Total: 2, Focused: 1}, cnt)

	ui = Build(view(), window, Cache{}, m)
	ui.Operate(m, widget.CountFocusable(&cnt))
	assert.Equal(t, -1, cnt.Focused, "an empty cache starts afresh")
}

func TestOverlayHidesCursor(t *testing.T) {
	root := widget.NewColumn(
		widget.NewTooltip(widget.NewText("hi"), "hint"),
		widget.NewButton(widget.NewText("ok")).WithOnPress(pressed("ok")),
	)
	// The tip of the tooltip covers the top of the button.
	click := func(ui *UserInterface) []any {
		for _, k := range []pointer.Kind{pointer.Press, pointer.Release} {
			evs, c := pointerAt(k, 5, 30)
			ui.Update(evs, c, m)
		}
		return ui.Messages()
	}

	ui := Build(root, window, Cache{}, m)
	assert.Equal(t, []any{pressed("ok")}, click(ui))

	ui = Build(root, window, Cache{}, m)
	evs, c := pointerAt(pointer.Move, 5, 5)
	ui.Update(evs, c, m)
	require.True(t, ui.RedrawRequested())
	var ops op.Ops
	ui.Draw(op.NewRecorder(&ops), widget.NewTheme(), widget.At(f32.Pt(5, 30)))
	tip := ops.List()[ops.Len()-1].(paint.Text)
	assert.Equal(t, "hint", tip.Content)
	assert.Empty(t, click(ui))
}

func TestDrawHint(t *testing.T) {
	ui := Build(view(), window, Cache{}, m)
	th := widget.NewTheme()
	var ops op.Ops
	r := op.NewRecorder(&ops)
	assert.Equal(t, pointer.CursorPointer, ui.Draw(r, th, widget.At(f32.Pt(5, 5))))
	assert.Equal(t, pointer.CursorDefault, ui.Draw(r, th, widget.At(f32.Pt(150, 150))))
	assert.Equal(t, pointer.CursorDefault, ui.Draw(r, th, widget.Cursor{}))
	assert.Equal(t, paint.Fill(f32.Rect(0, 0, 200, 200), th.Bg), ops.List()[0])
}

// grower grows by 10 pixels on every press, invalidating the layout.
type grower struct{}

func (grower) Width() unit.Length  { return unit.Shrink }
func (grower) Height() unit.Length { return unit.Shrink }
func (grower) State() any          { return new(float32) }

func (grower) Layout(m text.Measurer, l layout.Limits) layout.Node {
	return layout.NewNode(l.Constrain(f32.Sz(10, 10)))
}

func (grower) Draw(t *widget.Tree, r op.Renderer, th *widget.Theme, l layout.Layout, c widget.Cursor, viewport f32.Rectangle) {
}

func (grower) Event(t *widget.Tree, e event.Event, l layout.Layout, c widget.Cursor, m text.Measurer, sh *widget.Shell) event.Status {
	if e, ok := e.(pointer.Event); ok && e.Kind == pointer.Press {
		*t.State.(*float32) += 10
		sh.InvalidateLayout()
		return event.Captured
	}
	return event.Ignored
}

// tallGrower lays out a grower with a height from its state.
type tallGrower struct {
	grower
	height *float32
}

func (g tallGrower) Layout(m text.Measurer, l layout.Limits) layout.Node {
	return layout.NewNode(l.Constrain(f32.Sz(10, 10+*g.height)))
}

func (g tallGrower) Event(t *widget.Tree, e event.Event, l layout.Layout, c widget.Cursor, m text.Measurer, sh *widget.Shell) event.Status {
	st := g.grower.Event(t, e, l, c, m, sh)
	*g.height = *t.State.(*float32)
	return st
}

func TestRelayoutOnInvalidate(t *testing.T) {
	g := tallGrower{height: new(float32)}
	ui := Build(g, window, Cache{}, m)
	assert.Equal(t, f32.Sz(10, 10), ui.Node().Size())
	evs, c := pointerAt(pointer.Press, 5, 5)
	ui.Update(append(evs, evs...), c, m)
	assert.Equal(t, f32.Sz(10, 30), ui.Node().Size())

	ui.Relayout(f32.Sz(20, 20), m)
	assert.Equal(t, f32.Sz(10, 20), ui.Node().Size())
	assert.Equal(t, f32.Sz(20, 20), ui.Bounds())
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	ui := Build(view(), window, Cache{}, m, WithLogger(logger))
	ui.Draw(op.NewRecorder(new(op.Ops)), widget.NewTheme(), widget.Cursor{})
	out := buf.String()
	for _, pass := range []string{"diff", "layout", "draw"} {
		assert.Contains(t, out, pass)
	}
}

func TestTabMovesFocus(t *testing.T) {
	ui := Build(view(), window, Cache{}, m)
	press := func(e key.Event) event.Status {
		_, statuses := ui.Update([]event.Event{e}, widget.Cursor{}, m)
		return statuses[0]
	}
	enter := key.Event{Name: key.NameReturn}

	assert.Equal(t, event.Ignored, press(enter), "nothing focused")
	assert.Equal(t, event.Captured, press(key.Event{Name: key.NameTab}))
	assert.True(t, ui.RedrawRequested())
	press(enter)
	assert.Equal(t, []any{pressed("a")}, ui.Messages())

	press(key.Event{Name: key.NameTab})
	press(enter)
	assert.Equal(t, []any{pressed("b")}, ui.Messages())

	press(key.Event{Name: key.NameTab, Modifiers: key.ModShift})
	press(enter)
	assert.Equal(t, []any{pressed("a")}, ui.Messages())

	assert.Equal(t, event.Ignored, press(key.Event{Name: key.NameTab, Modifiers: key.ModCtrl}))
	assert.Equal(t, event.Ignored, press(key.Event{Name: key.NameTab, State: key.Release}))
}
