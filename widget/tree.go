// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"reflect"

	"golang.org/x/exp/slices"
)

// Tag identifies the dynamic type of a widget. State trees are only
// reused for widgets of the same Tag.
type Tag struct {
	t reflect.Type
}

// Tree is the persistent state of a widget and its children.
//
// Children are matched to the children of the widget by position.
type Tree struct {
	Tag      Tag
	State    any
	Children []Tree
}

// TagOf returns the tag of w.
func TagOf(w Widget) Tag {
	return Tag{t: reflect.TypeOf(w)}
}

func (t Tag) String() string {
	if t.t == nil {
		return "<nil>"
	}
	return t.t.String()
}

// NewTree returns the initial state tree of w.
func NewTree(w Widget) Tree {
	t := Tree{Tag: TagOf(w), State: InitialState(w)}
	children := ChildrenOf(w)
	if len(children) > 0 {
		t.Children = make([]Tree, len(children))
		for i, c := range children {
			t.Children[i] = NewTree(c)
		}
	}
	return t
}

// Diff reconciles the tree with w. A tree of a different tag is
// replaced by the initial tree of w; otherwise the state is kept and
// the children are reconciled.
func (t *Tree) Diff(w Widget) {
	if t.Tag != TagOf(w) {
		*t = NewTree(w)
		return
	}
	if d, ok := w.(Differ); ok {
		d.Diff(t)
		return
	}
	t.DiffChildren(ChildrenOf(w))
}

// DiffChildren reconciles the children of the tree with ws. Excess
// children are discarded and missing children are initialized.
func (t *Tree) DiffChildren(ws []Widget) {
	if len(t.Children) > len(ws) {
		for i := len(ws); i < len(t.Children); i++ {
			// Leave references to the GC.
			t.Children[i] = Tree{}
		}
		t.Children = t.Children[:len(ws)]
	}
	for i := range t.Children {
		t.Children[i].Diff(ws[i])
	}
	if n := len(t.Children); n < len(ws) {
		t.Children = slices.Grow(t.Children, len(ws)-n)
		for _, w := range ws[n:] {
			t.Children = append(t.Children, NewTree(w))
		}
	}
}

// Len returns the number of trees in t, including t.
func (t *Tree) Len() int {
	n := 1
	for i := range t.Children {
		n += t.Children[i].Len()
	}
	return n
}
