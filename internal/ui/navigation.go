package ui

import (
	"github.com/Bilal-AKAG/autogitignore/internal/logging/events"
	"github.com/Bilal-AKAG/autogitignore/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch m.session.Mode {
	case state.ModeConfirm:
		return m.handleConfirmKey(keyMsg)
	case state.ModeSearch:
		return m.handleSearchKey(keyMsg)
	default:
		return m.handleBrowseKey(keyMsg)
	}
}

// handleSearchKey owns keystrokes while the query editor is focused. The
// list stays navigable so matches can be walked without leaving the editor.
func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc", "enter":
		m.setMode(state.ModeBrowse)
		return nil
	case "up":
		m.moveCursorUp()
		return nil
	case "down":
		m.moveCursorDown()
		return nil
	}
	m.handleQueryInput(msg)
	return nil
}

func (m *Model) handleBrowseKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeySpace {
		m.toggleSelection()
		return nil
	}
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return tea.Quit
	case "/", "i":
		m.session.ClearMessages()
		m.setMode(state.ModeSearch)
		m.queryCursorDirty = true
	case "up", "k":
		m.moveCursorUp()
	case "down", "j":
		m.moveCursorDown()
	case "home":
		m.moveCursorHome()
	case "end":
		m.moveCursorEnd()
	case "alt+j", "alt+down":
		m.scrollPreviewBy(1)
	case "alt+k", "alt+up":
		m.scrollPreviewBy(-1)
	case "pgdown":
		m.scrollPreviewBy(10)
	case "pgup":
		m.scrollPreviewBy(-10)
	case "p":
		m.session.TogglePreviewMode()
		events.UI.PreviewMode(m.session.PreviewMode.String())
	case "ctrl+s":
		return m.requestSave(false)
	case "enter":
		return m.requestSave(true)
	}
	return nil
}

func (m *Model) setMode(mode state.InputMode) {
	if m.session.Mode == mode {
		return
	}
	m.session.Mode = mode
	events.UI.Mode(mode.String())
}

func (m *Model) moveCursorUp() {
	if m.session.MovePrevious() {
		events.UI.Cursor(m.session.Cursor, m.session.HighlightedName())
		m.syncViewport()
	}
}

func (m *Model) moveCursorDown() {
	if m.session.MoveNext() {
		events.UI.Cursor(m.session.Cursor, m.session.HighlightedName())
		m.syncViewport()
	}
}

func (m *Model) moveCursorHome() {
	if m.session.MoveHome() {
		events.UI.Cursor(m.session.Cursor, m.session.HighlightedName())
		m.syncViewport()
	}
}

func (m *Model) moveCursorEnd() {
	if m.session.MoveEnd() {
		events.UI.Cursor(m.session.Cursor, m.session.HighlightedName())
		m.syncViewport()
	}
}

func (m *Model) toggleSelection() {
	s := m.session
	if !s.ToggleSelection() {
		return
	}
	name := s.HighlightedName()
	events.UI.ToggleSelection(name, s.IsSelected(name), len(s.Selected))
}

func (m *Model) scrollPreviewBy(delta int) {
	if m.session.ScrollPreviewBy(delta, m.previewScrollMax()) {
		events.UI.PreviewScroll(m.session.PreviewScroll)
	}
}
