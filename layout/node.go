// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"flexui.org/f32"
)

// Node is the result of laying out a widget: its bounds relative to
// the parent node and the nodes of its children, in child order.
//
// Nodes are values built once per layout pass. The Moved and Aligned
// methods return modified copies; the children of a node must not be
// modified once the node is built.
type Node struct {
	bounds   f32.Rectangle
	children []Node
}

// Layout is a read-only view of a Node positioned in absolute
// coordinates. It is what widgets receive when handling events,
// drawing, and producing overlays.
type Layout struct {
	origin f32.Point
	node   *Node
}

// NewNode returns a childless node of the given size at the origin.
func NewNode(size f32.Size) Node {
	return Node{bounds: f32.Rectangle{Max: size.Point()}}
}

// NewNodeWithChildren returns a node of the given size with the
// given, already positioned, children.
func NewNodeWithChildren(size f32.Size, children []Node) Node {
	return Node{bounds: f32.Rectangle{Max: size.Point()}, children: children}
}

// Size returns the size of the node.
func (n Node) Size() f32.Size {
	return n.bounds.Size()
}

// Bounds returns the bounds of the node relative to its parent.
func (n Node) Bounds() f32.Rectangle {
	return n.bounds
}

// Children returns the child nodes. The slice must be treated
// as read-only.
func (n Node) Children() []Node {
	return n.children
}

// Moved returns n positioned at p relative to its parent.
func (n Node) Moved(p f32.Point) Node {
	n.bounds = n.bounds.Add(p.Sub(n.bounds.Min))
	return n
}

// Aligned returns n aligned horizontally and vertically within space,
// starting from its current position. Fill alignments resize the node
// to the space along that axis.
func (n Node) Aligned(h, v Alignment, space f32.Size) Node {
	switch h {
	case Middle:
		n.bounds = n.bounds.Add(f32.Pt((space.Width-n.bounds.Dx())/2, 0))
	case End:
		n.bounds = n.bounds.Add(f32.Pt(space.Width-n.bounds.Dx(), 0))
	case Fill:
		n.bounds.Max.X = n.bounds.Min.X + space.Width
	}
	switch v {
	case Middle:
		n.bounds = n.bounds.Add(f32.Pt(0, (space.Height-n.bounds.Dy())/2))
	case End:
		n.bounds = n.bounds.Add(f32.Pt(0, space.Height-n.bounds.Dy()))
	case Fill:
		n.bounds.Max.Y = n.bounds.Min.Y + space.Height
	}
	return n
}

// NewLayout returns the view of a root node.
func NewLayout(n *Node) Layout {
	return Layout{node: n}
}

// Bounds returns the absolute bounds of the node.
func (l Layout) Bounds() f32.Rectangle {
	return l.node.bounds.Add(l.origin)
}

// Position returns the absolute position of the node.
func (l Layout) Position() f32.Point {
	return l.node.bounds.Min.Add(l.origin)
}

// Len returns the number of children.
func (l Layout) Len() int {
	return len(l.node.children)
}

// Child returns the view of the i'th child.
func (l Layout) Child(i int) Layout {
	return Layout{origin: l.Position(), node: &l.node.children[i]}
}

// Children returns the views of all children, in child order.
func (l Layout) Children() []Layout {
	pos := l.Position()
	views := make([]Layout, len(l.node.children))
	for i := range l.node.children {
		views[i] = Layout{origin: pos, node: &l.node.children[i]}
	}
	return views
}

// Node returns the node viewed by l.
func (l Layout) Node() Node {
	return *l.node
}
