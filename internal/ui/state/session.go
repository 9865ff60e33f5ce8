// Package state holds the mutable session aggregate behind the interactive
// UI. A single *Session is owned by the update loop and mutated nowhere
// else, so no locking is involved.
package state

import (
	"sort"
	"time"

	"github.com/Bilal-AKAG/autogitignore/internal/catalog"
	"github.com/Bilal-AKAG/autogitignore/internal/gitignore"
)

// InputMode identifies which key handler owns the next keystroke.
type InputMode int

const (
	// ModeSearch routes keys into the query editor. Sessions start here.
	ModeSearch InputMode = iota
	// ModeBrowse routes keys to navigation, selection, and save actions.
	ModeBrowse
	// ModeConfirm is entered when a save found an existing output file and
	// the user must pick append or overwrite.
	ModeConfirm
)

// String names the mode for trace entries.
func (m InputMode) String() string {
	switch m {
	case ModeBrowse:
		return "browse"
	case ModeConfirm:
		return "confirm"
	default:
		return "search"
	}
}

// PreviewMode selects what the preview panel shows.
type PreviewMode int

const (
	// PreviewHighlighted shows the content of the highlighted template.
	PreviewHighlighted PreviewMode = iota
	// PreviewCombined shows every selected template concatenated.
	PreviewCombined
)

// String names the preview mode for the panel title and trace entries.
func (m PreviewMode) String() string {
	if m == PreviewCombined {
		return "combined"
	}
	return "highlighted"
}

const notificationTTL = 5 * time.Second

// Session is the single mutable aggregate behind one interactive run.
type Session struct {
	Full     []string
	Contents map[string]string

	Filtered    []string
	Query       string
	QueryCursor int

	Cursor         int
	ViewportOffset int

	Selected map[string]struct{}

	Mode          InputMode
	PreviewMode   PreviewMode
	PreviewScroll int

	PendingWrite  gitignore.Mode
	QuitAfterSave bool
	Loading       bool

	Notification string
	NotifyExpire time.Time
	Err          string
}

// NewSession returns the empty startup state: loading, query editor focused.
func NewSession() *Session {
	return &Session{
		Contents:     map[string]string{},
		Selected:     map[string]struct{}{},
		Mode:         ModeSearch,
		PreviewMode:  PreviewHighlighted,
		PendingWrite: gitignore.ModeAppend,
		Loading:      true,
	}
}

// SetCatalog installs the snapshot, drops selections that no longer exist,
// recomputes the filtered list, and clears the loading state.
func (s *Session) SetCatalog(snap catalog.Snapshot) {
	names := append([]string(nil), snap.Names...)
	sort.Strings(names)
	s.Full = names
	s.Contents = snap.Contents
	if s.Contents == nil {
		s.Contents = map[string]string{}
	}
	s.cleanupSelections()
	s.ApplyFilter()
	s.Loading = false
}

// Notify replaces the transient notification and clears any error. The
// notification expires after a few seconds, swept by the tick handler.
func (s *Session) Notify(msg string) {
	s.Notification = msg
	s.NotifyExpire = time.Now().Add(notificationTTL)
	s.Err = ""
}

// SetError replaces the error line and clears any notification.
func (s *Session) SetError(msg string) {
	s.Err = msg
	s.Notification = ""
	s.NotifyExpire = time.Time{}
}

// ClearMessages drops both transient messages immediately.
func (s *Session) ClearMessages() {
	s.Notification = ""
	s.NotifyExpire = time.Time{}
	s.Err = ""
}

// ClearExpiredNotification drops the notification once its deadline passes.
// Reports whether anything changed.
func (s *Session) ClearExpiredNotification(now time.Time) bool {
	if s.Notification == "" || s.NotifyExpire.IsZero() || now.Before(s.NotifyExpire) {
		return false
	}
	s.Notification = ""
	s.NotifyExpire = time.Time{}
	return true
}

// HighlightedName returns the name under the cursor, or "" when the
// filtered list is empty.
func (s *Session) HighlightedName() string {
	if len(s.Filtered) == 0 || s.Cursor < 0 || s.Cursor >= len(s.Filtered) {
		return ""
	}
	return s.Filtered[s.Cursor]
}
