package state

import "sort"

// ToggleSelection flips the selected state of the highlighted template.
// Reports whether anything was toggled.
func (s *Session) ToggleSelection() bool {
	name := s.HighlightedName()
	if name == "" {
		return false
	}
	if _, ok := s.Selected[name]; ok {
		delete(s.Selected, name)
	} else {
		s.Selected[name] = struct{}{}
	}
	s.ClearMessages()
	return true
}

// IsSelected reports whether the named template is selected.
func (s *Session) IsSelected(name string) bool {
	_, ok := s.Selected[name]
	return ok
}

// SelectedNames returns the selection in alphabetical order.
func (s *Session) SelectedNames() []string {
	names := make([]string, 0, len(s.Selected))
	for name := range s.Selected {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasSelection reports whether at least one template is selected.
func (s *Session) HasSelection() bool {
	return len(s.Selected) > 0
}

// cleanupSelections drops selections for names absent from the catalog.
func (s *Session) cleanupSelections() {
	if len(s.Selected) == 0 {
		return
	}
	known := make(map[string]struct{}, len(s.Full))
	for _, name := range s.Full {
		known[name] = struct{}{}
	}
	for name := range s.Selected {
		if _, ok := known[name]; !ok {
			delete(s.Selected, name)
		}
	}
}
