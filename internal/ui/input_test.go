package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestBackspaceRefilters(t *testing.T) {
	m, h := newTestModel(t, t.TempDir(), "go", "node", "ruby", "rust")
	h.Send(key('r'))
	h.Send(key('u'))
	h.Send(key('b'))
	if len(m.session.Filtered) != 1 || m.session.Filtered[0] != "ruby" {
		t.Fatalf("expected [ruby], got %v", m.session.Filtered)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyBackspace})
	if m.session.Query != "ru" {
		t.Fatalf("expected query ru, got %q", m.session.Query)
	}
	if len(m.session.Filtered) != 2 {
		t.Fatalf("expected [ruby rust], got %v", m.session.Filtered)
	}
}

func TestCtrlUClearsQuery(t *testing.T) {
	m, h := newTestModel(t, t.TempDir(), "go", "node", "ruby")
	h.Send(key('r'))
	h.Send(key('u'))
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlU})
	if m.session.Query != "" {
		t.Fatalf("expected empty query, got %q", m.session.Query)
	}
	if len(m.session.Filtered) != 3 {
		t.Fatalf("expected full list restored, got %v", m.session.Filtered)
	}
}

func TestCtrlWDeletesWord(t *testing.T) {
	m, h := newTestModel(t, t.TempDir(), "go")
	for _, r := range "one" {
		h.Send(key(r))
	}
	h.Send(keySpace())
	for _, r := range "two" {
		h.Send(key(r))
	}
	if m.session.Query != "one two" {
		t.Fatalf("expected query %q, got %q", "one two", m.session.Query)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlW})
	if m.session.Query != "one " {
		t.Fatalf("expected query %q, got %q", "one ", m.session.Query)
	}
}

func TestQueryCursorMotions(t *testing.T) {
	m, h := newTestModel(t, t.TempDir(), "go")
	for _, r := range "one" {
		h.Send(key(r))
	}
	h.Send(keySpace())
	for _, r := range "two" {
		h.Send(key(r))
	}
	s := m.session
	if s.QueryCursorPos() != 7 {
		t.Fatalf("expected cursor at end, got %d", s.QueryCursorPos())
	}
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlA})
	if s.QueryCursorPos() != 0 {
		t.Fatalf("expected cursor at start, got %d", s.QueryCursorPos())
	}
	h.Send(tea.KeyMsg{Type: tea.KeyRight})
	if s.QueryCursorPos() != 1 {
		t.Fatalf("expected cursor at 1, got %d", s.QueryCursorPos())
	}
	h.Send(altKey('f'))
	if s.QueryCursorPos() != 3 {
		t.Fatalf("expected cursor at word end, got %d", s.QueryCursorPos())
	}
	h.Send(altKey('f'))
	if s.QueryCursorPos() != 7 {
		t.Fatalf("expected cursor at next word end, got %d", s.QueryCursorPos())
	}
	h.Send(altKey('b'))
	if s.QueryCursorPos() != 4 {
		t.Fatalf("expected cursor at word start, got %d", s.QueryCursorPos())
	}
	h.Send(tea.KeyMsg{Type: tea.KeyLeft})
	if s.QueryCursorPos() != 3 {
		t.Fatalf("expected cursor at 3, got %d", s.QueryCursorPos())
	}
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlE})
	if s.QueryCursorPos() != 7 {
		t.Fatalf("expected cursor back at end, got %d", s.QueryCursorPos())
	}
}

func TestInsertAtCursor(t *testing.T) {
	m, h := newTestModel(t, t.TempDir(), "go", "node")
	h.Send(key('o'))
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlA})
	h.Send(key('g'))
	if m.session.Query != "go" {
		t.Fatalf("expected query go, got %q", m.session.Query)
	}
	if m.session.QueryCursorPos() != 1 {
		t.Fatalf("expected cursor after inserted rune, got %d", m.session.QueryCursorPos())
	}
}

func TestTypingClearsMessages(t *testing.T) {
	m, h := newTestModel(t, t.TempDir(), "go")
	m.session.SetError("stale")
	h.Send(key('g'))
	if m.session.Err != "" {
		t.Fatalf("expected typing to clear the error, got %q", m.session.Err)
	}
}

func TestAltAndControlRunesIgnored(t *testing.T) {
	m, h := newTestModel(t, t.TempDir(), "go")
	h.Send(altKey('x'))
	if m.session.Query != "" {
		t.Fatalf("expected alt rune to be ignored, got %q", m.session.Query)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'\x07'}})
	if m.session.Query != "" {
		t.Fatalf("expected control rune to be ignored, got %q", m.session.Query)
	}
}

func TestArrowsNavigateListWhileSearching(t *testing.T) {
	m, h := newTestModel(t, t.TempDir(), "go", "node", "rust")
	h.Send(tea.KeyMsg{Type: tea.KeyDown})
	if got := m.session.HighlightedName(); got != "node" {
		t.Fatalf("expected cursor on node, got %q", got)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyUp})
	if got := m.session.HighlightedName(); got != "go" {
		t.Fatalf("expected cursor back on go, got %q", got)
	}
}

func TestSlashAndIEnterSearch(t *testing.T) {
	m, h := newTestModel(t, t.TempDir(), "go")
	enterBrowse(h)
	m.session.SetError("stale")
	h.Send(key('/'))
	if got := m.session.Mode.String(); got != "search" {
		t.Fatalf("expected search mode, got %q", got)
	}
	if m.session.Err != "" {
		t.Fatalf("expected messages cleared when entering search")
	}

	enterBrowse(h)
	h.Send(key('i'))
	if got := m.session.Mode.String(); got != "search" {
		t.Fatalf("expected i to enter search mode, got %q", got)
	}
}
