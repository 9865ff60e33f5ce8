package ui

import (
	"unicode"

	"github.com/Bilal-AKAG/autogitignore/internal/logging/events"
	"github.com/Bilal-AKAG/autogitignore/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) updateQueryCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.queryCursor, cmd = m.queryCursor.Update(msg)
	return cmd
}

func (m *Model) noteQueryCursorChange(before int) {
	if before != m.session.QueryCursorPos() {
		m.queryCursorDirty = true
	}
}

func (m *Model) handleQueryInput(msg tea.KeyMsg) bool {
	s := m.session
	switch msg.String() {
	case "ctrl+u":
		before := s.QueryCursorPos()
		if !s.ClearQuery() {
			return false
		}
		m.noteQueryCursorChange(before)
		s.ClearMessages()
		events.Filter.Cleared()
		m.syncViewport()
		return true
	case "ctrl+w":
		before := s.QueryCursorPos()
		if !s.DeleteQueryWordBackward() {
			return false
		}
		m.noteQueryCursorChange(before)
		s.ClearMessages()
		events.Filter.WordBackspace(s.Query)
		m.syncViewport()
		return true
	case "ctrl+a":
		before := s.QueryCursorPos()
		s.MoveQueryCursorStart()
		if s.QueryCursorPos() == before {
			return false
		}
		m.noteQueryCursorChange(before)
		events.Filter.Cursor(s.QueryCursorPos())
		return true
	case "ctrl+e":
		before := s.QueryCursorPos()
		s.MoveQueryCursorEnd()
		if s.QueryCursorPos() == before {
			return false
		}
		m.noteQueryCursorChange(before)
		events.Filter.Cursor(s.QueryCursorPos())
		return true
	case "alt+b":
		before := s.QueryCursorPos()
		s.MoveQueryCursorWordBackward()
		if s.QueryCursorPos() == before {
			return false
		}
		m.noteQueryCursorChange(before)
		events.Filter.CursorWord(s.QueryCursorPos())
		return true
	case "alt+f":
		before := s.QueryCursorPos()
		s.MoveQueryCursorWordForward()
		if s.QueryCursorPos() == before {
			return false
		}
		m.noteQueryCursorChange(before)
		events.Filter.CursorWord(s.QueryCursorPos())
		return true
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return m.removeQueryRune()
	case tea.KeyRunes:
		if msg.Alt {
			return false
		}
		if len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
			if unicode.IsSpace(r) {
				// allow the dedicated space handler to manage spaces
				return false
			}
		}
		return m.appendToQuery(string(msg.Runes))
	case tea.KeySpace:
		return m.appendToQuery(" ")
	case tea.KeyLeft:
		before := s.QueryCursorPos()
		s.MoveQueryCursorRuneBackward()
		if s.QueryCursorPos() == before {
			return false
		}
		m.noteQueryCursorChange(before)
		events.Filter.Cursor(s.QueryCursorPos())
		return true
	case tea.KeyRight:
		before := s.QueryCursorPos()
		s.MoveQueryCursorRuneForward()
		if s.QueryCursorPos() == before {
			return false
		}
		m.noteQueryCursorChange(before)
		events.Filter.Cursor(s.QueryCursorPos())
		return true
	}
	return false
}

func (m *Model) appendToQuery(text string) bool {
	if text == "" {
		return false
	}
	s := m.session
	before := s.QueryCursorPos()
	s.InsertQueryText(text)
	m.noteQueryCursorChange(before)
	s.ClearMessages()
	events.Filter.Append(s.Query, len(s.Filtered))
	m.syncViewport()
	return true
}

func (m *Model) removeQueryRune() bool {
	s := m.session
	before := s.QueryCursorPos()
	if !s.DeleteQueryRuneBackward() {
		return false
	}
	m.noteQueryCursorChange(before)
	s.ClearMessages()
	events.Filter.Backspace(s.Query, len(s.Filtered))
	m.syncViewport()
	return true
}

func (m *Model) queryPrompt() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	prompt := "» "
	if styles.SearchPrompt != nil {
		prompt = styles.SearchPrompt.Render(prompt)
	}
	s := m.session
	if s.Mode != state.ModeSearch {
		if s.Query == "" {
			return prompt + render(styles.SearchPlaceholder, "(press / or i to search)")
		}
		return prompt + render(styles.Search, s.Query)
	}
	if styles.Cursor != nil {
		m.queryCursor.Style = styles.Cursor.Copy()
	}
	if styles.Search != nil {
		m.queryCursor.TextStyle = styles.Search.Copy()
	} else {
		m.queryCursor.TextStyle = lipgloss.Style{}
	}
	text := s.Query
	if text == "" {
		placeholder := "(type to search)"
		runes := []rune(placeholder)
		var caretRune string
		var rest string
		if len(runes) > 0 {
			caretRune = string(runes[0])
			rest = string(runes[1:])
		}
		if styles.SearchPlaceholder != nil {
			m.queryCursor.TextStyle = styles.SearchPlaceholder.Copy()
		}
		caret := m.renderQueryCursor(caretRune)
		return prompt + caret + render(styles.SearchPlaceholder, rest)
	}
	runes := []rune(text)
	pos := s.QueryCursorPos()
	if pos < 0 {
		pos = 0
	}
	if pos > len(runes) {
		pos = len(runes)
	}
	before := render(styles.Search, string(runes[:pos]))
	var caretRune string
	if pos < len(runes) {
		caretRune = string(runes[pos])
	} else {
		caretRune = " "
	}
	caret := m.renderQueryCursor(caretRune)
	var after string
	if pos < len(runes) {
		after = render(styles.Search, string(runes[pos+1:]))
	}
	return prompt + before + caret + after
}

func (m *Model) renderQueryCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.queryCursor.SetChar(char)

	base := m.queryCursor.TextStyle.Copy()
	base = base.Inline(true)

	if m.queryCursor.Blink {
		return base.Render(char)
	}

	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		base = base.Inherit(cursorStyle).Blink(false)
		return base.Render(char)
	}

	return base.Reverse(true).Render(char)
}
