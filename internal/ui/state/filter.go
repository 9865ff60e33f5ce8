package state

import (
	"strings"
	"unicode"

	"github.com/sahilm/fuzzy"
)

// QueryCursorPos returns the rune position of the query cursor.
func (s *Session) QueryCursorPos() int {
	s.clampQueryCursor()
	return s.QueryCursor
}

func (s *Session) clampQueryCursor() {
	n := len([]rune(s.Query))
	if s.QueryCursor < 0 {
		s.QueryCursor = 0
	}
	if s.QueryCursor > n {
		s.QueryCursor = n
	}
}

// SetQuery replaces the query and cursor wholesale and refilters.
func (s *Session) SetQuery(query string, cursor int) {
	s.Query = query
	s.QueryCursor = cursor
	s.clampQueryCursor()
	s.ApplyFilter()
}

// InsertQueryText inserts text at the cursor and refilters.
func (s *Session) InsertQueryText(text string) {
	if text == "" {
		return
	}
	runes := []rune(s.Query)
	s.clampQueryCursor()
	at := s.QueryCursor
	out := make([]rune, 0, len(runes)+len([]rune(text)))
	out = append(out, runes[:at]...)
	out = append(out, []rune(text)...)
	out = append(out, runes[at:]...)
	s.Query = string(out)
	s.QueryCursor = at + len([]rune(text))
	s.ApplyFilter()
}

// DeleteQueryRuneBackward removes the rune before the cursor. Reports
// whether the query changed.
func (s *Session) DeleteQueryRuneBackward() bool {
	runes := []rune(s.Query)
	s.clampQueryCursor()
	at := s.QueryCursor
	if at == 0 {
		return false
	}
	s.Query = string(append(runes[:at-1], runes[at:]...))
	s.QueryCursor = at - 1
	s.ApplyFilter()
	return true
}

// DeleteQueryWordBackward removes the word before the cursor. Reports
// whether the query changed.
func (s *Session) DeleteQueryWordBackward() bool {
	runes := []rune(s.Query)
	s.clampQueryCursor()
	at := s.QueryCursor
	i := at
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	if i == at {
		return false
	}
	s.Query = string(append(runes[:i:i], runes[at:]...))
	s.QueryCursor = i
	s.ApplyFilter()
	return true
}

// ClearQuery empties the query. Reports whether there was one to clear.
func (s *Session) ClearQuery() bool {
	if s.Query == "" {
		s.QueryCursor = 0
		return false
	}
	s.Query = ""
	s.QueryCursor = 0
	s.ApplyFilter()
	return true
}

// MoveQueryCursorStart jumps the cursor to the beginning of the query.
func (s *Session) MoveQueryCursorStart() {
	s.QueryCursor = 0
}

// MoveQueryCursorEnd jumps the cursor past the last rune.
func (s *Session) MoveQueryCursorEnd() {
	s.QueryCursor = len([]rune(s.Query))
}

// MoveQueryCursorRuneBackward steps the cursor one rune left.
func (s *Session) MoveQueryCursorRuneBackward() {
	s.clampQueryCursor()
	if s.QueryCursor > 0 {
		s.QueryCursor--
	}
}

// MoveQueryCursorRuneForward steps the cursor one rune right.
func (s *Session) MoveQueryCursorRuneForward() {
	s.clampQueryCursor()
	if s.QueryCursor < len([]rune(s.Query)) {
		s.QueryCursor++
	}
}

// MoveQueryCursorWordBackward moves to the start of the previous word.
func (s *Session) MoveQueryCursorWordBackward() {
	runes := []rune(s.Query)
	s.clampQueryCursor()
	i := s.QueryCursor
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	s.QueryCursor = i
}

// MoveQueryCursorWordForward moves past the end of the next word.
func (s *Session) MoveQueryCursorWordForward() {
	runes := []rune(s.Query)
	s.clampQueryCursor()
	i := s.QueryCursor
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	s.QueryCursor = i
}

// ApplyFilter recomputes Filtered from the query. An empty or whitespace
// query shows the full catalog in order; otherwise matches are ranked by
// fuzzy score. The cursor is clamped into the new list and the preview
// scroll resets when the highlighted template changes.
func (s *Session) ApplyFilter() {
	before := s.HighlightedName()
	query := strings.TrimSpace(s.Query)
	if query == "" {
		s.Filtered = append([]string(nil), s.Full...)
	} else {
		matches := fuzzy.Find(query, s.Full)
		filtered := make([]string, 0, len(matches))
		for _, m := range matches {
			filtered = append(filtered, s.Full[m.Index])
		}
		s.Filtered = filtered
	}
	if len(s.Filtered) == 0 {
		s.Cursor = 0
		s.ViewportOffset = 0
	} else if s.Cursor >= len(s.Filtered) {
		s.Cursor = len(s.Filtered) - 1
	} else if s.Cursor < 0 {
		s.Cursor = 0
	}
	if s.HighlightedName() != before {
		s.PreviewScroll = 0
	}
}
