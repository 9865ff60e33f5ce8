package state

import (
	"fmt"
	"strings"
)

// Placeholder bodies shown by the preview panel when there is nothing to
// render yet.
const (
	NoHighlightPlaceholder = "No template highlighted."
	NoSelectionPlaceholder = "No templates selected."
	LoadingPlaceholder     = "Loading preview…"
)

// TogglePreviewMode flips between the highlighted and combined previews and
// rewinds the scroll position.
func (s *Session) TogglePreviewMode() {
	if s.PreviewMode == PreviewHighlighted {
		s.PreviewMode = PreviewCombined
	} else {
		s.PreviewMode = PreviewHighlighted
	}
	s.PreviewScroll = 0
}

// PreviewText returns the body for the preview panel in the current mode.
func (s *Session) PreviewText() string {
	if s.PreviewMode == PreviewCombined {
		return s.combinedPreview()
	}
	name := s.HighlightedName()
	if name == "" {
		return NoHighlightPlaceholder
	}
	content, ok := s.Contents[name]
	if !ok {
		return LoadingPlaceholder
	}
	return content
}

func (s *Session) combinedPreview() string {
	names := s.SelectedNames()
	if len(names) == 0 {
		return NoSelectionPlaceholder
	}
	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "### %s ###\n%s\n\n", name, s.Contents[name])
	}
	return b.String()
}

// GenerateOutput merges the selected templates into the file body that a
// save writes, one banner-prefixed section per template in alphabetical
// order.
func (s *Session) GenerateOutput() string {
	var b strings.Builder
	for _, name := range s.SelectedNames() {
		fmt.Fprintf(&b, "\n# --- %s ---\n%s\n", name, s.Contents[name])
	}
	return b.String()
}

// ScrollPreviewBy moves the preview offset by delta, clamped to [0, max].
// Reports whether the offset changed.
func (s *Session) ScrollPreviewBy(delta, max int) bool {
	if max < 0 {
		max = 0
	}
	next := s.PreviewScroll + delta
	if next < 0 {
		next = 0
	}
	if next > max {
		next = max
	}
	if next == s.PreviewScroll {
		return false
	}
	s.PreviewScroll = next
	return true
}
