// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"flexui.org/f32"
	"flexui.org/gesture"
	"flexui.org/io/event"
	"flexui.org/io/pointer"
	"flexui.org/layout"
	"flexui.org/op"
	"flexui.org/op/paint"
	"flexui.org/text"
	"flexui.org/unit"
)

// Scrollable scrolls its content vertically. The content is laid
// out without a height bound and drawn clipped to the bounds of the
// Scrollable.
type Scrollable struct {
	id             ID
	content        Widget
	width          unit.Length
	height         unit.Length
	scrollbarWidth float32
}

// DefaultScrollbarWidth is the width of the scrollbar of a
// Scrollable.
const DefaultScrollbarWidth = 6

type scrollState struct {
	// offset is the scroll position in pixels, or a fraction of the
	// scroll range if relative is set.
	offset   float32
	relative bool
	scroll   gesture.Scroll
}

// NewScrollable returns a scrollable of content.
func NewScrollable(content Widget) Scrollable {
	return Scrollable{content: content, scrollbarWidth: DefaultScrollbarWidth}
}

// WithID sets the id for operations such as SnapTo.
func (s Scrollable) WithID(id ID) Scrollable {
	s.id = id
	return s
}

// WithWidth sets the width policy.
func (s Scrollable) WithWidth(w unit.Length) Scrollable {
	s.width = w
	return s
}

// WithHeight sets the height policy.
func (s Scrollable) WithHeight(h unit.Length) Scrollable {
	s.height = h
	return s
}

// WithScrollbarWidth sets the width of the scrollbar. Zero hides
// the scrollbar.
func (s Scrollable) WithScrollbarWidth(w float32) Scrollable {
	s.scrollbarWidth = w
	return s
}

func (s Scrollable) Width() unit.Length  { return s.width }
func (s Scrollable) Height() unit.Length { return s.height }

func (s Scrollable) State() any {
	return new(scrollState)
}

func (s Scrollable) Children() []Widget {
	return []Widget{s.content}
}

func (s Scrollable) Layout(m text.Measurer, l layout.Limits) layout.Node {
	l = l.Width(s.width).Height(s.height)
	cl := layout.NewLimits(f32.Sz(l.Min.Width, 0), f32.Sz(l.Max.Width, f32.Inf))
	content := s.content.Layout(m, cl)
	return layout.NewNodeWithChildren(l.Constrain(content.Size()), []layout.Node{content})
}

// SnapTo implements Snapper.
func (st *scrollState) SnapTo(offset float32) {
	st.offset = clampf(offset, 0, 1)
	st.relative = true
}

// Offset returns the scroll position in pixels for content within
// bounds.
func (st *scrollState) Offset(bounds, content f32.Rectangle) float32 {
	max := maxScroll(bounds, content)
	if st.relative {
		return st.offset * max
	}
	return clampf(st.offset, 0, max)
}

// scrollBy scrolls by delta pixels and reports whether the
// position changed.
func (st *scrollState) scrollBy(delta float32, bounds, content f32.Rectangle) bool {
	old := st.Offset(bounds, content)
	st.offset = clampf(old+delta, 0, maxScroll(bounds, content))
	st.relative = false
	return st.offset != old
}

func maxScroll(bounds, content f32.Rectangle) float32 {
	if d := content.Dy() - bounds.Dy(); d > 0 {
		return d
	}
	return 0
}

// contentCursor maps the cursor into the coordinates of the
// unscrolled content. The cursor is unavailable to the content
// outside the bounds.
func contentCursor(c Cursor, bounds f32.Rectangle, offset float32) Cursor {
	if !c.In(bounds) {
		return Cursor{}
	}
	return c.Offset(f32.Pt(0, offset))
}

func (s Scrollable) Event(t *Tree, e event.Event, l layout.Layout, c Cursor, m text.Measurer, sh *Shell) event.Status {
	st := t.State.(*scrollState)
	bounds, content := l.Bounds(), l.Child(0)
	offset := st.Offset(bounds, content.Bounds())
	if Event(s.content, &t.Children[0], e, content, contentCursor(c, bounds, offset), m, sh) == event.Captured {
		return event.Captured
	}
	pe, ok := e.(pointer.Event)
	if !ok {
		return event.Ignored
	}
	delta := st.scroll.Update(pe, c.In(bounds), gesture.Vertical)
	if delta == 0 {
		return event.Ignored
	}
	if st.scrollBy(delta, bounds, content.Bounds()) {
		sh.RequestRedraw()
	}
	return event.Captured
}

func (s Scrollable) Hint(t *Tree, l layout.Layout, c Cursor, viewport f32.Rectangle, m text.Measurer) pointer.Cursor {
	st := t.State.(*scrollState)
	bounds, content := l.Bounds(), l.Child(0)
	offset := st.Offset(bounds, content.Bounds())
	vp := viewport.Intersect(bounds).Add(f32.Pt(0, offset))
	return Hint(s.content, &t.Children[0], content, contentCursor(c, bounds, offset), vp, m)
}

func (s Scrollable) Draw(t *Tree, r op.Renderer, th *Theme, l layout.Layout, c Cursor, viewport f32.Rectangle) {
	st := t.State.(*scrollState)
	bounds, content := l.Bounds(), l.Child(0)
	offset := st.Offset(bounds, content.Bounds())
	r.WithClip(bounds, func() {
		r.WithTranslation(f32.Pt(0, -offset), func() {
			vp := viewport.Intersect(bounds).Add(f32.Pt(0, offset))
			s.content.Draw(&t.Children[0], r, th, content, contentCursor(c, bounds, offset), vp)
		})
		if bar, ok := s.scrollbar(bounds, content.Bounds(), offset); ok {
			r.DrawPrimitive(paint.Quad{Rect: bar, Color: mulAlpha(th.Fg, 0x60), Radius: s.scrollbarWidth / 2})
		}
	})
}

// scrollbar returns the bounds of the scrollbar thumb.
func (s Scrollable) scrollbar(bounds, content f32.Rectangle, offset float32) (f32.Rectangle, bool) {
	max := maxScroll(bounds, content)
	if max == 0 || s.scrollbarWidth <= 0 {
		return f32.Rectangle{}, false
	}
	h := bounds.Dy() * bounds.Dy() / content.Dy()
	y := bounds.Min.Y + offset/max*(bounds.Dy()-h)
	return f32.Rect(bounds.Max.X-s.scrollbarWidth, y, s.scrollbarWidth, h), true
}

func (s Scrollable) Operate(t *Tree, l layout.Layout, m text.Measurer, o Operation) {
	o.Scrollable(t.State.(*scrollState), s.id)
	o.Container(s.id, func(o Operation) {
		Operate(s.content, &t.Children[0], l.Child(0), m, o)
	})
}

func (s Scrollable) Overlay(t *Tree, l layout.Layout, m text.Measurer) Overlay {
	st := t.State.(*scrollState)
	o := OverlayOf(s.content, &t.Children[0], l.Child(0), m)
	if o == nil {
		return nil
	}
	offset := st.Offset(l.Bounds(), l.Child(0).Bounds())
	return translated{o: o, offset: f32.Pt(0, -offset)}
}

func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
