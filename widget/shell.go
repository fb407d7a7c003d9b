// SPDX-License-Identifier: Unlicense OR MIT

package widget

// Shell collects the side effects of handling events: published
// messages and requests for redraws and relayouts.
type Shell struct {
	messages []any
	redraw   bool
	relayout bool
}

// Publish a message for the program.
func (s *Shell) Publish(msg any) {
	s.messages = append(s.messages, msg)
}

// Messages returns the published messages in order.
func (s *Shell) Messages() []any {
	return s.messages
}

// RequestRedraw requests the user interface to be drawn again.
func (s *Shell) RequestRedraw() {
	s.redraw = true
}

// RedrawRequested reports whether a redraw was requested.
func (s *Shell) RedrawRequested() bool {
	return s.redraw
}

// InvalidateLayout requests a new layout before the next event or
// draw.
func (s *Shell) InvalidateLayout() {
	s.relayout = true
}

// LayoutInvalidated reports whether the layout was invalidated.
func (s *Shell) LayoutInvalidated() bool {
	return s.relayout
}

// RevalidateLayout clears the layout invalidation, after the host
// has laid out the tree again.
func (s *Shell) RevalidateLayout() {
	s.relayout = false
}

// Reset the shell, keeping the message storage for re-use.
func (s *Shell) Reset() {
	for i := range s.messages {
		s.messages[i] = nil
	}
	s.messages = s.messages[:0]
	s.redraw = false
	s.relayout = false
}
