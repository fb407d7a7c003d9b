// SPDX-License-Identifier: Unlicense OR MIT

/*
Package op implements the primitive stream produced when drawing a
widget tree.

A widget tree is drawn through a Renderer. Widgets emit primitives,
such as the quads, meshes and text runs of package paint, and scope
them with translations and clips:

	var ops op.Ops
	r := op.NewRecorder(&ops)
	r.WithTranslation(f32.Pt(10, 10), func() {
		r.DrawPrimitive(paint.Quad{Rect: f32.Rect(0, 0, 20, 20), Color: red})
	})

Ops represents the ordered list of primitives. The Recorder applies
the current translation to every primitive it records, so the list
holds absolute coordinates. A clipped block is recorded as a single
ClipOp holding the primitives drawn inside it.

Translation state

The Recorder keeps the current translation on a stack. Every
WithTranslation and WithClip block pushes the state and pops it when
the block returns, whether normally or by panicking. Popping any state
but the most recently pushed panics.

A backend replays an Ops list by walking List in order. Package raster
implements a software backend.
*/
package op

import (
	"flexui.org/f32"
)

// Primitive is a drawing command. Primitives are values; Offset
// returns a copy moved by the offset.
type Primitive interface {
	Offset(o f32.Point) Primitive
}

// Renderer receives the primitives of a drawing pass.
type Renderer interface {
	// DrawPrimitive draws a primitive in the current coordinate space.
	DrawPrimitive(p Primitive)
	// WithTranslation calls do with the coordinate space translated
	// by v. The translation is restored when do returns.
	WithTranslation(v f32.Point, do func())
	// WithClip calls do with drawing limited to r. The clip is
	// removed when do returns.
	WithClip(r f32.Rectangle, do func())
}

// Ops holds an ordered list of primitives.
type Ops struct {
	// version is incremented at each Reset.
	version int
	list    []Primitive
}

// ClipOp is a group of primitives drawn inside a clip rectangle.
type ClipOp struct {
	Rect f32.Rectangle
	Ops  *Ops
}

// TransformOp is a translation of the coordinate space.
type TransformOp struct {
	// TODO: general affine transformations for rotated content.
	offset f32.Point
}

// stack tracks the integer identities of pushed states to ensure
// correct pairing of push and pop.
type stack struct {
	currentID int
	nextID    int
}

type stackID struct {
	id   int
	prev int
}

// Add a primitive to the list.
func (o *Ops) Add(p Primitive) {
	o.list = append(o.list, p)
}

// List returns the primitives in the order they were added. The
// slice is valid until the next call to Add or Reset.
func (o *Ops) List() []Primitive {
	return o.list
}

// Len returns the number of primitives.
func (o *Ops) Len() int {
	return len(o.list)
}

// Reset the Ops, preparing it for re-use.
func (o *Ops) Reset() {
	// Leave references to the GC.
	for i := range o.list {
		o.list[i] = nil
	}
	o.list = o.list[:0]
	o.version++
}

// Version is incremented every time the Ops is Reset.
func (o *Ops) Version() int {
	return o.version
}

// Offset returns the clip with its rectangle and every contained
// primitive moved by off.
func (c ClipOp) Offset(off f32.Point) Primitive {
	moved := &Ops{list: make([]Primitive, 0, c.Ops.Len())}
	for _, p := range c.Ops.List() {
		moved.Add(p.Offset(off))
	}
	return ClipOp{Rect: c.Rect.Add(off), Ops: moved}
}

// Offset the transformation.
func (t TransformOp) Offset(o f32.Point) TransformOp {
	return t.Multiply(TransformOp{o})
}

// Invert the transformation.
func (t TransformOp) Invert() TransformOp {
	return TransformOp{offset: t.offset.Mul(-1)}
}

// Transform a point.
func (t TransformOp) Transform(p f32.Point) f32.Point {
	return p.Add(t.offset)
}

// TransformRect transforms a rectangle.
func (t TransformOp) TransformRect(r f32.Rectangle) f32.Rectangle {
	return r.Add(t.offset)
}

// Multiply by a transformation.
func (t TransformOp) Multiply(t2 TransformOp) TransformOp {
	return TransformOp{
		offset: t.offset.Add(t2.offset),
	}
}

func (s *stack) push() stackID {
	s.nextID++
	sid := stackID{
		id:   s.nextID,
		prev: s.currentID,
	}
	s.currentID = s.nextID
	return sid
}

func (s *stack) check(sid stackID) {
	if s.currentID != sid.id {
		panic("unbalanced operation")
	}
}

func (s *stack) pop(sid stackID) {
	s.check(sid)
	s.currentID = sid.prev
}
