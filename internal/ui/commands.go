package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/Bilal-AKAG/autogitignore/internal/catalog"
	"github.com/Bilal-AKAG/autogitignore/internal/logging"
	"github.com/Bilal-AKAG/autogitignore/internal/logging/events"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const tickInterval = 100 * time.Millisecond

// tickMsg drives periodic housekeeping such as notification expiry.
type tickMsg struct {
	at time.Time
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg{at: t}
	})
}

// catalogLoadedMsg mirrors the async catalog load response.
type catalogLoadedMsg struct {
	snapshot catalog.Snapshot
	err      error
}

func (m *Model) loadCatalogCmd() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.catalog.Load(context.Background())
		if err != nil {
			logging.Error(err)
		}
		return catalogLoadedMsg{snapshot: snap, err: err}
	}
}

func (m *Model) handleTickMsg(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(tickMsg)
	if !ok {
		return nil
	}
	at := tick.at
	if at.IsZero() {
		at = time.Now()
	}
	m.session.ClearExpiredNotification(at)
	return tickCmd()
}

func (m *Model) handleCatalogLoadedMsg(msg tea.Msg) tea.Cmd {
	update, ok := msg.(catalogLoadedMsg)
	if !ok {
		return nil
	}
	if !m.session.Loading {
		return nil
	}
	if update.err != nil {
		m.session.Loading = false
		m.session.SetError(update.err.Error())
		return nil
	}
	m.session.SetCatalog(update.snapshot)
	events.Catalog.Applied(len(m.session.Full))
	m.syncViewport()
	if m.verbose {
		m.session.Notify(fmt.Sprintf("Loaded %d templates.", len(m.session.Full)))
	}
	return nil
}

func (m *Model) handleSpinnerTickMsg(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(spinner.TickMsg)
	if !ok {
		return nil
	}
	if !m.session.Loading {
		return nil
	}
	var cmd tea.Cmd
	m.spin, cmd = m.spin.Update(tick)
	return cmd
}
