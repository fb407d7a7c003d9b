// SPDX-License-Identifier: Unlicense OR MIT

package op

import (
	"testing"

	"flexui.org/f32"
)

type dot struct {
	p f32.Point
}

func (d dot) Offset(o f32.Point) Primitive {
	return dot{d.p.Add(o)}
}

func TestTranslationRestored(t *testing.T) {
	var ops Ops
	r := NewRecorder(&ops)
	r.WithTranslation(f32.Pt(10, 20), func() {
		r.DrawPrimitive(dot{})
		r.WithTranslation(f32.Pt(1, 1), func() {
			r.DrawPrimitive(dot{f32.Pt(1, 0)})
		})
		r.DrawPrimitive(dot{})
	})
	r.DrawPrimitive(dot{})
	want := []Primitive{
		dot{f32.Pt(10, 20)},
		dot{f32.Pt(12, 21)},
		dot{f32.Pt(10, 20)},
		dot{},
	}
	if got := ops.List(); len(got) != len(want) {
		t.Fatalf("recorded %d primitives, want %d", len(got), len(want))
	}
	for i, p := range ops.List() {
		if p != want[i] {
			t.Errorf("primitive %d = %v, want %v", i, p, want[i])
		}
	}
}

func TestTranslationRestoredOnPanic(t *testing.T) {
	var ops Ops
	r := NewRecorder(&ops)
	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		r.WithTranslation(f32.Pt(5, 5), func() {
			panic("draw failed")
		})
	}()
	if off := r.Offset(); off != (f32.Point{}) {
		t.Errorf("offset after panic = %v, want (0,0)", off)
	}
}

func TestClipGroupsPrimitives(t *testing.T) {
	var ops Ops
	r := NewRecorder(&ops)
	r.WithTranslation(f32.Pt(10, 0), func() {
		r.WithClip(f32.Rect(0, 0, 50, 50), func() {
			r.DrawPrimitive(dot{})
			r.WithClip(f32.Rect(40, 40, 50, 50), func() {
				r.DrawPrimitive(dot{f32.Pt(45, 45)})
			})
		})
	})
	if ops.Len() != 1 {
		t.Fatalf("recorded %d primitives, want a single clip", ops.Len())
	}
	c := ops.List()[0].(ClipOp)
	if want := f32.Rect(10, 0, 50, 50); c.Rect != want {
		t.Errorf("clip = %v, want %v", c.Rect, want)
	}
	if c.Ops.Len() != 2 {
		t.Fatalf("clip holds %d primitives, want 2", c.Ops.Len())
	}
	inner := c.Ops.List()[1].(ClipOp)
	if want := f32.Rect(50, 40, 10, 10); inner.Rect != want {
		t.Errorf("nested clip = %v, want %v", inner.Rect, want)
	}
	if got := inner.Ops.List()[0]; got != (dot{f32.Pt(55, 45)}) {
		t.Errorf("clipped primitive = %v", got)
	}
}

func TestUnbalancedPop(t *testing.T) {
	defer func() {
		if err := recover(); err == nil {
			t.Error("out of order Pop didn't panic")
		}
	}()
	var ops Ops
	r := NewRecorder(&ops)
	outer := r.Push()
	r.Push()
	outer.Pop()
}

func TestReset(t *testing.T) {
	var ops Ops
	ops.Add(dot{})
	v := ops.Version()
	ops.Reset()
	if ops.Len() != 0 || ops.Version() != v+1 {
		t.Errorf("Reset left %d primitives, version %d", ops.Len(), ops.Version())
	}
}
