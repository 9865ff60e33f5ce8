package state

// MoveNext advances the cursor, wrapping from the last entry to the first.
// Reports whether the cursor moved.
func (s *Session) MoveNext() bool {
	if len(s.Filtered) == 0 {
		return false
	}
	s.Cursor = (s.Cursor + 1) % len(s.Filtered)
	s.PreviewScroll = 0
	return true
}

// MovePrevious steps the cursor back, wrapping from the first entry to the
// last. Reports whether the cursor moved.
func (s *Session) MovePrevious() bool {
	if len(s.Filtered) == 0 {
		return false
	}
	s.Cursor = (s.Cursor - 1 + len(s.Filtered)) % len(s.Filtered)
	s.PreviewScroll = 0
	return true
}

// MoveHome jumps to the first filtered entry.
func (s *Session) MoveHome() bool {
	if len(s.Filtered) == 0 || s.Cursor == 0 {
		return false
	}
	s.Cursor = 0
	s.PreviewScroll = 0
	return true
}

// MoveEnd jumps to the last filtered entry.
func (s *Session) MoveEnd() bool {
	if len(s.Filtered) == 0 || s.Cursor == len(s.Filtered)-1 {
		return false
	}
	s.Cursor = len(s.Filtered) - 1
	s.PreviewScroll = 0
	return true
}

// EnsureCursorVisible slides the viewport so the cursor row stays on
// screen given the number of visible rows.
func (s *Session) EnsureCursorVisible(maxVisible int) {
	if maxVisible <= 0 {
		s.ViewportOffset = 0
		return
	}
	if s.Cursor < s.ViewportOffset {
		s.ViewportOffset = s.Cursor
	}
	if s.Cursor >= s.ViewportOffset+maxVisible {
		s.ViewportOffset = s.Cursor - maxVisible + 1
	}
	maxOffset := len(s.Filtered) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.ViewportOffset > maxOffset {
		s.ViewportOffset = maxOffset
	}
	if s.ViewportOffset < 0 {
		s.ViewportOffset = 0
	}
}
