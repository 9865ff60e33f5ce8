package ui

import (
	"fmt"

	"github.com/Bilal-AKAG/autogitignore/internal/gitignore"
	"github.com/Bilal-AKAG/autogitignore/internal/logging"
	"github.com/Bilal-AKAG/autogitignore/internal/logging/events"
	"github.com/Bilal-AKAG/autogitignore/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) targetPath() string {
	return gitignore.PathIn(m.outputDir)
}

// requestSave starts a save. When the target file already exists the user
// must pick append or overwrite first; otherwise a fresh file is written
// immediately.
func (m *Model) requestSave(quitAfter bool) tea.Cmd {
	s := m.session
	if !s.HasSelection() {
		s.SetError("No templates selected!")
		return nil
	}
	s.ClearMessages()
	s.QuitAfterSave = quitAfter
	path := m.targetPath()
	if gitignore.Exists(path) {
		s.Mode = state.ModeConfirm
		s.PendingWrite = gitignore.ModeAppend
		events.Writer.ConfirmOpened(path)
		return nil
	}
	return m.performWrite(gitignore.ModeOverwrite, true)
}

func (m *Model) performWrite(mode gitignore.Mode, created bool) tea.Cmd {
	s := m.session
	path := m.targetPath()
	content := s.GenerateOutput()
	if err := gitignore.Write(path, content, mode); err != nil {
		logging.Error(err)
		events.Writer.Error(err)
		s.Mode = state.ModeBrowse
		s.SetError(fmt.Sprintf("Failed to write: %v", err))
		return nil
	}
	events.Writer.Saved(path, mode.String(), len(content))
	if s.QuitAfterSave {
		return tea.Quit
	}
	s.Mode = state.ModeBrowse
	s.Notify(saveNotification(mode, created))
	return nil
}

func saveNotification(mode gitignore.Mode, created bool) string {
	if created {
		return "Successfully created .gitignore!"
	}
	if mode == gitignore.ModeAppend {
		return "Successfully appended to .gitignore!"
	}
	return "Successfully overwrote .gitignore!"
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	s := m.session
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "a", "left":
		s.PendingWrite = gitignore.ModeAppend
	case "o", "right":
		s.PendingWrite = gitignore.ModeOverwrite
	case "enter":
		return m.performWrite(s.PendingWrite, false)
	case "esc":
		s.Mode = state.ModeBrowse
		s.QuitAfterSave = false
		s.ClearMessages()
		events.Writer.ConfirmCancelled()
	}
	return nil
}
