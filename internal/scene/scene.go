// SPDX-License-Identifier: Unlicense OR MIT

/*
Package scene loads user interfaces described in TOML files.

A scene file describes the window size, a theme, a widget tree and a
script of input events and operations:

	width = 400
	height = 300

	[theme]
	contrast_bg = "steelblue"

	[root]
	kind = "column"
	spacing = 10
	padding = 20
	width = "fill"

	[[root.children]]
	kind = "text"
	text = "Hello"

	[[root.children]]
	kind = "button"
	text = "OK"
	message = "ok"

	[[events]]
	kind = "press"
	x = 30
	y = 40

Lengths are numbers of pixels or one of "shrink", "fill",
"portion:N" and "max:PX". Colors are CSS color names or hexadecimal
"#rrggbb" or "#rrggbbaa" strings.
*/
package scene

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"flexui.org/app"
	"flexui.org/example/geometry/rainbow"
	"flexui.org/f32"
	"flexui.org/io/event"
	"flexui.org/io/key"
	"flexui.org/io/pointer"
	"flexui.org/text"
	"flexui.org/widget"
)

var (
	// ErrUnknownKind is returned for nodes and events of an unknown
	// kind.
	ErrUnknownKind = errors.New("unknown kind")
	// ErrMissingChild is returned for nodes requiring a child
	// without one.
	ErrMissingChild = errors.New("missing child")
)

// DefaultSize is the window size of scenes without one.
var DefaultSize = f32.Sz(800, 600)

// File is the decoded content of a scene file.
type File struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
	Theme  Theme   `toml:"theme"`
	Root   Node    `toml:"root"`
	Events []Event `toml:"events"`
}

// Theme overrides the colors and text size of the default theme.
type Theme struct {
	Bg         Color   `toml:"bg"`
	Fg         Color   `toml:"fg"`
	ContrastBg Color   `toml:"contrast_bg"`
	ContrastFg Color   `toml:"contrast_fg"`
	TextSize   float32 `toml:"text_size"`
}

// Node describes a widget.
type Node struct {
	Kind string `toml:"kind"`
	ID   string `toml:"id"`

	Text    string  `toml:"text"`
	Tip     string  `toml:"tip"`
	Message string  `toml:"message"`
	Size    float32 `toml:"size"`
	Color   Color   `toml:"color"`

	Width     Length    `toml:"width"`
	Height    Length    `toml:"height"`
	MaxWidth  float32   `toml:"max_width"`
	MaxHeight float32   `toml:"max_height"`
	Spacing   float32   `toml:"spacing"`
	Padding   Inset     `toml:"padding"`
	Align     Alignment `toml:"align"`
	AlignX    Alignment `toml:"align_x"`
	AlignY    Alignment `toml:"align_y"`

	Background Color   `toml:"background"`
	Radius     float32 `toml:"radius"`

	Child    *Node  `toml:"child"`
	Children []Node `toml:"children"`
}

// Event describes an input event or an operation of the script.
type Event struct {
	Kind string `toml:"kind"`

	// Pointer position and scroll amounts, in pixels and wheel
	// notches.
	X  float32 `toml:"x"`
	Y  float32 `toml:"y"`
	DX float32 `toml:"dx"`
	DY float32 `toml:"dy"`
	// Button is "primary", "secondary" or "tertiary".
	Button string `toml:"button"`

	// Key is a key combination such as "Shift-Tab".
	Key     string `toml:"key"`
	Release bool   `toml:"release"`

	// ID and Offset are the arguments of operations.
	ID     string  `toml:"id"`
	Offset float32 `toml:"offset"`
}

// Scene is a loaded scene.
type Scene struct {
	Size  f32.Size
	Theme *widget.Theme
	Root  widget.Widget
	Steps []Step
}

// Step is an input event with the cursor position at the time of
// the event, or an operation.
type Step struct {
	Event  event.Event
	Cursor widget.Cursor
	Op     widget.Operation
	// Kind is the script kind of the step.
	Kind string
}

// Load reads and builds the scene file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and builds a scene.
func Parse(data []byte) (*Scene, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return f.Build()
}

// Build the widget tree, theme and script of the file.
func (f *File) Build() (*Scene, error) {
	s := &Scene{Size: DefaultSize, Theme: f.Theme.build()}
	if f.Width > 0 {
		s.Size.Width = f.Width
	}
	if f.Height > 0 {
		s.Size.Height = f.Height
	}
	root, err := f.Root.Build(s.Theme)
	if err != nil {
		return nil, fmt.Errorf("root: %w", err)
	}
	s.Root = root
	var cursor widget.Cursor
	for i, e := range f.Events {
		step, err := e.step(cursor)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		cursor = step.Cursor
		s.Steps = append(s.Steps, step)
	}
	return s, nil
}

func (t Theme) build() *widget.Theme {
	th := widget.NewTheme()
	t.Bg.override(&th.Bg)
	t.Fg.override(&th.Fg)
	t.ContrastBg.override(&th.ContrastBg)
	t.ContrastFg.override(&th.ContrastFg)
	if t.TextSize > 0 {
		th.TextSize = t.TextSize
	}
	return th
}

// Build the widget described by n. Text without a size uses the
// text size of th.
func (n *Node) Build(th *widget.Theme) (widget.Widget, error) {
	switch n.Kind {
	case "column":
		children, err := n.children(th)
		if err != nil {
			return nil, err
		}
		c := widget.NewColumn(children...).
			WithSpacing(n.Spacing).
			WithPadding(n.Padding.Inset).
			WithWidth(n.Width.Length).
			WithHeight(n.Height.Length).
			WithAlignment(n.Align.Alignment)
		if n.MaxWidth > 0 {
			c = c.WithMaxWidth(n.MaxWidth)
		}
		return c, nil
	case "row":
		children, err := n.children(th)
		if err != nil {
			return nil, err
		}
		r := widget.NewRow(children...).
			WithSpacing(n.Spacing).
			WithPadding(n.Padding.Inset).
			WithWidth(n.Width.Length).
			WithHeight(n.Height.Length).
			WithAlignment(n.Align.Alignment)
		if n.MaxHeight > 0 {
			r = r.WithMaxHeight(n.MaxHeight)
		}
		return r, nil
	case "container":
		child, err := n.child(th)
		if err != nil {
			return nil, err
		}
		c := widget.NewContainer(child).
			WithPadding(n.Padding.Inset).
			WithWidth(n.Width.Length).
			WithHeight(n.Height.Length).
			WithAlignX(n.AlignX.Alignment).
			WithAlignY(n.AlignY.Alignment)
		if n.MaxWidth > 0 {
			c = c.WithMaxWidth(n.MaxWidth)
		}
		if n.MaxHeight > 0 {
			c = c.WithMaxHeight(n.MaxHeight)
		}
		if n.Background.Set {
			c = c.WithBackground(n.Background.NRGBA, n.Radius)
		}
		return c, nil
	case "scrollable":
		child, err := n.child(th)
		if err != nil {
			return nil, err
		}
		return widget.NewScrollable(child).
			WithID(widget.ID(n.ID)).
			WithWidth(n.Width.Length).
			WithHeight(n.Height.Length), nil
	case "text":
		return n.text(th), nil
	case "space":
		return widget.NewSpace(n.Width.Length, n.Height.Length), nil
	case "button":
		var content widget.Widget
		if n.Child == nil && n.Text != "" {
			content = n.text(th)
		} else {
			c, err := n.child(th)
			if err != nil {
				return nil, err
			}
			content = c
		}
		b := widget.NewButton(content).
			WithID(widget.ID(n.ID)).
			WithWidth(n.Width.Length).
			WithHeight(n.Height.Length)
		if n.Padding.Set {
			b = b.WithPadding(n.Padding.Inset)
		}
		if n.Message != "" {
			b = b.WithOnPress(n.Message)
		}
		return b, nil
	case "tooltip":
		child, err := n.child(th)
		if err != nil {
			return nil, err
		}
		return widget.NewTooltip(child, n.Tip), nil
	case "rainbow":
		return rainbow.New(), nil
	default:
		return nil, fmt.Errorf("node %q: %w", n.Kind, ErrUnknownKind)
	}
}

func (n *Node) text(th *widget.Theme) widget.Text {
	t := widget.NewText(n.Text).
		WithWidth(n.Width.Length).
		WithHeight(n.Height.Length)
	switch {
	case n.Size > 0:
		t = t.WithSize(n.Size)
	case th.TextSize > 0:
		t = t.WithSize(th.TextSize)
	}
	if n.Color.Set {
		t = t.WithColor(n.Color.NRGBA)
	}
	return t
}

func (n *Node) child(th *widget.Theme) (widget.Widget, error) {
	if n.Child == nil {
		return nil, fmt.Errorf("%s: %w", n.Kind, ErrMissingChild)
	}
	w, err := n.Child.Build(th)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", n.Kind, err)
	}
	return w, nil
}

func (n *Node) children(th *widget.Theme) ([]widget.Widget, error) {
	ws := make([]widget.Widget, 0, len(n.Children))
	for i := range n.Children {
		w, err := n.Children[i].Build(th)
		if err != nil {
			return nil, fmt.Errorf("%s child %d: %w", n.Kind, i, err)
		}
		ws = append(ws, w)
	}
	return ws, nil
}

var buttons = map[string]pointer.Buttons{
	"":          pointer.ButtonPrimary,
	"primary":   pointer.ButtonPrimary,
	"secondary": pointer.ButtonSecondary,
	"tertiary":  pointer.ButtonTertiary,
}

var pointerKinds = map[string]pointer.Kind{
	"move":    pointer.Move,
	"press":   pointer.Press,
	"release": pointer.Release,
	"scroll":  pointer.Scroll,
}

// step converts e to a Step, given the cursor after the previous
// step.
func (e Event) step(cursor widget.Cursor) (Step, error) {
	st := Step{Cursor: cursor, Kind: e.Kind}
	if k, ok := pointerKinds[e.Kind]; ok {
		b, ok := buttons[e.Button]
		if !ok {
			return Step{}, fmt.Errorf("button %q: %w", e.Button, ErrInvalidValue)
		}
		p := f32.Pt(e.X, e.Y)
		pe := pointer.Event{Kind: k, Position: p}
		switch k {
		case pointer.Press, pointer.Release:
			pe.Buttons = b
		case pointer.Scroll:
			pe.Scroll = f32.Pt(e.DX, e.DY)
		}
		st.Event, st.Cursor = pe, widget.At(p)
		return st, nil
	}
	switch e.Kind {
	case "leave":
		st.Event, st.Cursor = pointer.Event{Kind: pointer.Leave}, widget.Cursor{}
	case "key":
		ke, ok := key.Parse(e.Key)
		if !ok {
			return Step{}, fmt.Errorf("key %q: %w", e.Key, ErrInvalidValue)
		}
		if e.Release {
			ke.State = key.Release
		}
		st.Event = ke
	case "focus_next":
		st.Op = widget.FocusNext()
	case "focus_previous":
		st.Op = widget.FocusPrevious()
	case "focus":
		st.Op = widget.Focus(widget.ID(e.ID))
	case "unfocus":
		st.Op = widget.Unfocus()
	case "snap_to":
		st.Op = widget.SnapTo(widget.ID(e.ID), e.Offset)
	default:
		return Step{}, fmt.Errorf("event %q: %w", e.Kind, ErrUnknownKind)
	}
	return st, nil
}

// Result is the outcome of running a scene.
type Result struct {
	UI *app.UserInterface
	// Cursor is the cursor after the last step.
	Cursor widget.Cursor
	// Messages are the messages published by the steps, in order.
	Messages []any
}

// Run builds the user interface of the scene and plays its steps.
// The widget tree is never rebuilt, so published messages are
// collected without being processed.
func (s *Scene) Run(m text.Measurer, opts ...app.Option) Result {
	ui := app.Build(s.Root, s.Size, app.Cache{}, m, opts...)
	res := Result{UI: ui}
	for _, st := range s.Steps {
		res.Cursor = st.Cursor
		if st.Op != nil {
			ui.Operate(m, st.Op)
			continue
		}
		ui.Update([]event.Event{st.Event}, st.Cursor, m)
		res.Messages = append(res.Messages, ui.Messages()...)
	}
	return res
}
