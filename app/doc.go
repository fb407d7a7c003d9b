// SPDX-License-Identifier: Unlicense OR MIT

/*
Package app hosts a widget tree.

A program builds a widget tree for its current state and hands it to
Build together with the Cache of the previous frame. The resulting
UserInterface lays the tree out, delivers input events to it and
draws it:

	ui := app.Build(view(state), size, cache, measurer)
	if st, _ := ui.Update(events, cursor, measurer); st == app.Outdated {
		for _, msg := range ui.Messages() {
			state.update(msg)
		}
	}
	ui.Draw(renderer, theme, cursor)
	cache = ui.Cache()

# Overlays

Overlays, such as tooltips, are laid out above the tree in the
coordinates of the window. They receive events before the tree, and
hide the cursor from the tree while it is over them.

# Focus

Tab and Shift-Tab presses ignored by the tree move the focus to the
next and previous focusable widgets.

# Logging

Every pass is logged at debug level to the logger set by WithLogger.
By default nothing is logged.
*/
package app
