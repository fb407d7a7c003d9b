// SPDX-License-Identifier: Unlicense OR MIT

/*
Package widget implements the widget protocol and common widgets.

A user interface is a tree of Widget values, rebuilt by the program
for every frame. Widgets are immutable descriptions: the persistent
state of a widget, such as the scroll offset of a Scrollable or the
focus of a Button, lives in a parallel Tree owned by the host and
matched to the widgets by position and dynamic type.

Every pass over the tree starts from the root:

	tree.Diff(root)               // reconcile state with the new widgets
	node := root.Layout(m, limits)
	status := widget.Event(root, &tree, e, layout.NewLayout(&node), cursor, m, &shell)
	root.Draw(&tree, r, theme, layout.NewLayout(&node), cursor, viewport)

Widgets implement the required Widget interface. The optional
interfaces Measurer, Stateful, Parent, Differ, Operator, Handler,
Hinter and Overlayer add capabilities; the package level functions
of the same purpose fall back to defaults for widgets that lack them.

Containers zip their children with the child state trees and the
child layouts by index, deliver every event to every child, and merge
the statuses.
*/
package widget
