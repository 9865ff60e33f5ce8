package testutil

import (
	"sync"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// colorProfileMu serializes tests that mutate the global lipgloss color
// profile.
var colorProfileMu sync.Mutex

// ForceColorProfile sets lipgloss to ANSI color output for tests that assert
// on styled output. It holds colorProfileMu so parallel tests cannot race on
// the global profile, and restores the original via t.Cleanup.
func ForceColorProfile(t *testing.T) {
	t.Helper()
	colorProfileMu.Lock()
	orig := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.ANSI)
	t.Cleanup(func() {
		lipgloss.SetColorProfile(orig)
		colorProfileMu.Unlock()
	})
}
