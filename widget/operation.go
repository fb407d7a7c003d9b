// SPDX-License-Identifier: Unlicense OR MIT

package widget

// ID identifies a widget for operations. The empty ID matches no
// widget.
type ID string

// Operation visits the widgets of a tree that expose themselves to
// operations.
type Operation interface {
	// Container visits a widget with children. Do applies the
	// operation to the children.
	Container(id ID, do func(o Operation))
	// Focusable visits the state of a focusable widget.
	Focusable(f Focusable, id ID)
	// Scrollable visits the state of a scrollable widget.
	Scrollable(s Snapper, id ID)
}

// Finisher is implemented by operations that continue with another
// operation after visiting the tree.
type Finisher interface {
	// Finish returns the next operation, or nil.
	Finish() Operation
}

// Focusable is the state of a widget that can be focused.
type Focusable interface {
	IsFocused() bool
	Focus()
	Unfocus()
}

// Snapper is the state of a widget with scrollable content.
type Snapper interface {
	// SnapTo scrolls to the relative offset, from 0 at the
	// start to 1 at the end.
	SnapTo(offset float32)
}

// visitor implements Operation from callbacks.
type visitor struct {
	focusable  func(f Focusable, id ID)
	scrollable func(s Snapper, id ID)
	finish     func() Operation
	// reset clears the results of a previous traversal. It runs
	// at the first visit after Finish.
	reset    func()
	finished bool
}

func (v *visitor) begin() {
	if v.finished && v.reset != nil {
		v.reset()
	}
	v.finished = false
}

func (v *visitor) Container(id ID, do func(o Operation)) {
	v.begin()
	do(v)
}

func (v *visitor) Focusable(f Focusable, id ID) {
	v.begin()
	if v.focusable != nil {
		v.focusable(f, id)
	}
}

func (v *visitor) Scrollable(s Snapper, id ID) {
	v.begin()
	if v.scrollable != nil {
		v.scrollable(s, id)
	}
}

func (v *visitor) Finish() Operation {
	v.finished = true
	if v.finish == nil {
		return nil
	}
	return v.finish()
}

// Count is the result of CountFocusable.
type Count struct {
	// Total is the number of focusable widgets.
	Total int
	// Focused is the index of the focused widget, or -1.
	Focused int
}

// CountFocusable returns an operation that counts the focusable
// widgets into c. Applying the operation again after Finish counts
// from zero.
func CountFocusable(c *Count) Operation {
	reset := func() { *c = Count{Focused: -1} }
	reset()
	return &visitor{
		focusable: func(f Focusable, id ID) {
			if f.IsFocused() && c.Focused == -1 {
				c.Focused = c.Total
			}
			c.Total++
		},
		reset: reset,
	}
}

// focusIndex focuses the focusable widget at index and unfocuses
// every other.
func focusIndex(index int) Operation {
	i := 0
	return &visitor{
		focusable: func(f Focusable, id ID) {
			if i == index {
				f.Focus()
			} else {
				f.Unfocus()
			}
			i++
		},
	}
}

// FocusNext returns an operation that moves the focus to the next
// focusable widget, wrapping around. Without a focused widget the
// first one is focused.
func FocusNext() Operation {
	return focusStep(func(c Count) int {
		if c.Focused == -1 {
			return 0
		}
		return (c.Focused + 1) % c.Total
	})
}

// FocusPrevious returns an operation that moves the focus to the
// previous focusable widget, wrapping around. Without a focused
// widget the last one is focused.
func FocusPrevious() Operation {
	return focusStep(func(c Count) int {
		if c.Focused == -1 {
			return c.Total - 1
		}
		return (c.Focused - 1 + c.Total) % c.Total
	})
}

func focusStep(next func(c Count) int) Operation {
	var c Count
	count := CountFocusable(&c).(*visitor)
	count.finish = func() Operation {
		counted := c
		c = Count{Focused: -1}
		if counted.Total == 0 {
			return nil
		}
		return focusIndex(next(counted))
	}
	return count
}

// Focus returns an operation that focuses the widget with the id and
// unfocuses every other.
func Focus(target ID) Operation {
	return &visitor{
		focusable: func(f Focusable, id ID) {
			if id != "" && id == target {
				f.Focus()
			} else {
				f.Unfocus()
			}
		},
	}
}

// Unfocus returns an operation that unfocuses every widget.
func Unfocus() Operation {
	return &visitor{
		focusable: func(f Focusable, id ID) {
			f.Unfocus()
		},
	}
}

// SnapTo returns an operation that scrolls the scrollable widget
// with the id to the relative offset.
func SnapTo(target ID, offset float32) Operation {
	return &visitor{
		scrollable: func(s Snapper, id ID) {
			if id != "" && id == target {
				s.SnapTo(offset)
			}
		},
	}
}
