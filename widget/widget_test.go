// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flexui.org/f32"
	"flexui.org/io/event"
	"flexui.org/io/pointer"
	"flexui.org/layout"
	"flexui.org/op"
	"flexui.org/op/paint"
	"flexui.org/text"
	"flexui.org/unit"
)

// measurer sizes text as size/2 pixels per byte on a single line.
type measurer struct{}

func (measurer) MeasureText(content string, size float32, bounds f32.Size) f32.Size {
	return f32.Sz(float32(len(content))*size/2, size)
}

var m text.Measurer = measurer{}

// probe is a leaf widget of a fixed intrinsic size that records the
// events it receives.
type probe struct {
	w, h    unit.Length
	size    f32.Size
	events  *int
	capture bool
}

func (p probe) Width() unit.Length  { return p.w }
func (p probe) Height() unit.Length { return p.h }

func (p probe) Layout(m text.Measurer, l layout.Limits) layout.Node {
	return layout.NewNode(l.Resolve(p.w, p.h, p.size))
}

func (p probe) Draw(t *Tree, r op.Renderer, th *Theme, l layout.Layout, c Cursor, viewport f32.Rectangle) {
	r.DrawPrimitive(paint.Fill(l.Bounds(), th.Fg))
}

func (p probe) Event(t *Tree, e event.Event, l layout.Layout, c Cursor, m text.Measurer, sh *Shell) event.Status {
	if p.events != nil {
		*p.events++
	}
	if p.capture {
		return event.Captured
	}
	return event.Ignored
}

// mount lays out w within limits and returns its state and
// layout node.
func mount(w Widget, l layout.Limits) (*Tree, *layout.Node) {
	t := NewTree(w)
	n := w.Layout(m, l)
	return &t, &n
}

// run applies o and the operations it finishes with.
func run(w Widget, t *Tree, n *layout.Node, o Operation) {
	for o != nil {
		Operate(w, t, layout.NewLayout(n), m, o)
		f, ok := o.(Finisher)
		if !ok {
			break
		}
		o = f.Finish()
	}
}

func heights(n *layout.Node) []float32 {
	var hs []float32
	for _, c := range n.Children() {
		hs = append(hs, c.Size().Height)
	}
	return hs
}

func TestColumnLengths(t *testing.T) {
	col := NewColumn(
		probe{h: unit.Px(10), size: f32.Sz(30, 0)},
		probe{size: f32.Sz(30, 20)},
		probe{h: unit.Portion(2), size: f32.Sz(30, 0)},
	)
	_, n := mount(col, layout.NewLimits(f32.Size{}, f32.Sz(100, 100)))
	assert.Equal(t, []float32{10, 20, 70}, heights(n))
	assert.Equal(t, f32.Sz(30, 100), n.Size())
}

func TestColumnMaxWidth(t *testing.T) {
	col := NewColumn(probe{w: unit.Fill, size: f32.Sz(10, 10)}).WithMaxWidth(50)
	_, n := mount(col, layout.NewLimits(f32.Size{}, f32.Sz(200, 200)))
	assert.Equal(t, float32(50), n.Size().Width)
	assert.Equal(t, float32(50), n.Children()[0].Size().Width)
}

func TestRowSpacing(t *testing.T) {
	row := NewRow(
		probe{size: f32.Sz(10, 10)},
		probe{size: f32.Sz(10, 30)},
	).WithSpacing(5).WithAlignment(layout.End)
	_, n := mount(row, layout.Unbounded())
	assert.Equal(t, f32.Rect(0, 20, 10, 10), n.Children()[0].Bounds())
	assert.Equal(t, f32.Rect(15, 0, 10, 30), n.Children()[1].Bounds())
	assert.Equal(t, f32.Sz(25, 30), Measure(row, m, layout.Unbounded()))
}

func TestPushCopies(t *testing.T) {
	a := NewColumn(probe{}, probe{})
	b := a.Push(NewText("b"))
	c := a.Push(NewText("c"))
	require.Len(t, b.Children(), 3)
	assert.Equal(t, "b", b.Children()[2].(Text).Content())
	assert.Equal(t, "c", c.Children()[2].(Text).Content())
	assert.Len(t, a.Children(), 2)
}

func TestEventVisitsEveryChild(t *testing.T) {
	var counts [3]int
	for _, capture := range []bool{false, true} {
		counts = [3]int{}
		col := NewColumn(
			probe{size: f32.Sz(10, 10), events: &counts[0]},
			probe{size: f32.Sz(10, 10), events: &counts[1], capture: capture},
			probe{size: f32.Sz(10, 10), events: &counts[2]},
		)
		tree, n := mount(col, layout.Unbounded())
		var sh Shell
		e := pointer.Event{Kind: pointer.Move, Position: f32.Pt(5, 5)}
		st := Event(col, tree, e, layout.NewLayout(n), At(e.Position), m, &sh)
		assert.Equal(t, [3]int{1, 1, 1}, counts, "capture %v", capture)
		if capture {
			assert.Equal(t, event.Captured, st)
		} else {
			assert.Equal(t, event.Ignored, st)
		}
	}
}

func TestTreeDiff(t *testing.T) {
	first := NewButton(NewText("a"))
	tree := NewTree(NewColumn(first, NewButton(NewText("b"))))
	state := tree.Children[0].State
	state.(*buttonState).focused = true

	tree.Diff(NewColumn(first, NewButton(NewText("b")), NewText("c")))
	require.Len(t, tree.Children, 3)
	assert.Same(t, state, tree.Children[0].State)
	assert.True(t, tree.Children[0].State.(*buttonState).focused)
	assert.Equal(t, TagOf(Text{}), tree.Children[2].Tag)

	tree.Diff(NewColumn(NewText("x")))
	require.Len(t, tree.Children, 1)
	assert.Nil(t, tree.Children[0].State, "a different widget replaces the state")
	assert.Equal(t, 2, tree.Len())
}

func TestTagMismatchReplacesTree(t *testing.T) {
	tree := NewTree(NewButton(NewText("a")))
	require.NotNil(t, tree.State)
	tree.Diff(NewText("a"))
	assert.Equal(t, TagOf(NewText("")), tree.Tag)
	assert.Nil(t, tree.State)
	assert.Empty(t, tree.Children)
}

func TestText(t *testing.T) {
	txt := NewText("hello").WithSize(20)
	_, n := mount(txt, layout.Unbounded())
	assert.Equal(t, f32.Sz(50, 20), n.Size())

	var ops op.Ops
	th := NewTheme()
	txt.Draw(nil, op.NewRecorder(&ops), th, layout.NewLayout(n), Cursor{}, f32.Rect(0, 0, 100, 100))
	require.Equal(t, 1, ops.Len())
	p := ops.List()[0].(paint.Text)
	assert.Equal(t, "hello", p.Content)
	assert.Equal(t, th.Fg, p.Color)
}

func TestContainerCenters(t *testing.T) {
	c := NewContainer(probe{size: f32.Sz(20, 10)}).
		WithWidth(unit.Fill).
		WithHeight(unit.Fill).
		CenterX().
		CenterY()
	_, n := mount(c, layout.NewLimits(f32.Size{}, f32.Sz(100, 50)))
	assert.Equal(t, f32.Sz(100, 50), n.Size())
	assert.Equal(t, f32.Rect(40, 20, 20, 10), n.Children()[0].Bounds())
}

func TestSpace(t *testing.T) {
	row := NewRow(
		probe{size: f32.Sz(10, 10)},
		HorizontalSpace(unit.Fill),
		probe{size: f32.Sz(10, 10)},
	)
	_, n := mount(row, layout.NewLimits(f32.Size{}, f32.Sz(100, 100)))
	assert.Equal(t, float32(90), n.Children()[2].Bounds().Min.X)
}

// customGeometry draws a mesh sized from the available width.
type customGeometry struct{}

func (customGeometry) Width() unit.Length  { return unit.Fill }
func (customGeometry) Height() unit.Length { return unit.Shrink }

func (customGeometry) Layout(m text.Measurer, l layout.Limits) layout.Node {
	w := l.Width(unit.Fill).Max.Width
	return layout.NewNode(l.Constrain(f32.Sz(w, w)))
}

func (customGeometry) Draw(t *Tree, r op.Renderer, th *Theme, l layout.Layout, c Cursor, viewport f32.Rectangle) {
	b := l.Bounds()
	r.WithTranslation(b.Min, func() {
		r.DrawPrimitive(paint.Mesh{
			Vertices: []paint.Vertex{
				{Position: f32.Pt(0, 0), Color: th.Fg},
				{Position: f32.Pt(b.Dx(), 0), Color: th.Fg},
				{Position: f32.Pt(0, b.Dy()), Color: th.Fg},
			},
			Indices: []uint32{0, 1, 2},
		})
	})
}

func TestCustomGeometry(t *testing.T) {
	col := NewColumn(probe{size: f32.Sz(10, 30)}, customGeometry{})
	tree, n := mount(col, layout.NewLimits(f32.Size{}, f32.Sz(80, 500)))
	assert.Equal(t, f32.Rect(0, 30, 80, 80), n.Children()[1].Bounds())

	var ops op.Ops
	col.Draw(tree, op.NewRecorder(&ops), NewTheme(), layout.NewLayout(n), Cursor{}, f32.Rect(0, 0, 80, 500))
	require.Equal(t, 2, ops.Len())
	mesh := ops.List()[1].(paint.Mesh)
	assert.Equal(t, f32.Rect(0, 30, 80, 80), mesh.Bounds())
}
