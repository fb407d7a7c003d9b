// SPDX-License-Identifier: Unlicense OR MIT

package op

import (
	"flexui.org/f32"
)

// Recorder is a Renderer that records primitives into an Ops list,
// in absolute coordinates.
type Recorder struct {
	ops   *Ops
	t     TransformOp
	clip  f32.Rectangle
	stack stack
}

// StackOp saves and restores the recording state.
type StackOp struct {
	active bool
	id     stackID
	r      *Recorder
	ops    *Ops
	t      TransformOp
	clip   f32.Rectangle
}

var _ Renderer = (*Recorder)(nil)

// NewRecorder returns a Recorder adding to o.
func NewRecorder(o *Ops) *Recorder {
	return &Recorder{ops: o, clip: f32.Rectangle{Max: f32.Pt(f32.Inf, f32.Inf)}}
}

// DrawPrimitive records p, moved by the current translation.
func (r *Recorder) DrawPrimitive(p Primitive) {
	if off := r.t.Transform(f32.Point{}); off != (f32.Point{}) {
		p = p.Offset(off)
	}
	r.ops.Add(p)
}

// WithTranslation implements Renderer.
func (r *Recorder) WithTranslation(v f32.Point, do func()) {
	st := r.Push()
	defer st.Pop()
	r.t = r.t.Offset(v)
	do()
}

// WithClip implements Renderer. The primitives drawn by do are
// recorded as a ClipOp whose rectangle is the intersection of r
// with the enclosing clips.
func (r *Recorder) WithClip(rect f32.Rectangle, do func()) {
	st := r.Push()
	parent := r.ops
	clip := new(Ops)
	r.clip = r.clip.Intersect(r.t.TransformRect(rect))
	area := r.clip
	r.ops = clip
	defer func() {
		st.Pop()
		parent.Add(ClipOp{Rect: area, Ops: clip})
	}()
	do()
}

// Offset returns the current translation.
func (r *Recorder) Offset() f32.Point {
	return r.t.Transform(f32.Point{})
}

// Clip returns the current clip rectangle, in absolute coordinates.
func (r *Recorder) Clip() f32.Rectangle {
	return r.clip
}

// Push (save) the current recording state.
func (r *Recorder) Push() StackOp {
	return StackOp{
		active: true,
		id:     r.stack.push(),
		r:      r,
		ops:    r.ops,
		t:      r.t,
		clip:   r.clip,
	}
}

// Pop (restore) a previously Pushed recording state.
func (s *StackOp) Pop() {
	if !s.active {
		panic("unbalanced pop")
	}
	s.r.stack.pop(s.id)
	s.active = false
	s.r.ops = s.ops
	s.r.t = s.t
	s.r.clip = s.clip
}
