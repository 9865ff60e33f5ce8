package state

import (
	"reflect"
	"testing"
	"time"

	"github.com/Bilal-AKAG/autogitignore/internal/catalog"
	"github.com/Bilal-AKAG/autogitignore/internal/gitignore"
)

func newTestSession(names ...string) *Session {
	contents := make(map[string]string, len(names))
	for _, name := range names {
		contents[name] = name + " body\n"
	}
	s := NewSession()
	s.SetCatalog(catalog.Snapshot{Names: names, Contents: contents})
	return s
}

func TestNewSessionDefaults(t *testing.T) {
	s := NewSession()
	if s.Mode != ModeSearch {
		t.Fatalf("expected mode %q, got %q", ModeSearch, s.Mode)
	}
	if s.PreviewMode != PreviewHighlighted {
		t.Fatalf("expected preview mode %q, got %q", PreviewHighlighted, s.PreviewMode)
	}
	if s.PendingWrite != gitignore.ModeAppend {
		t.Fatalf("expected pending write %q, got %q", gitignore.ModeAppend, s.PendingWrite)
	}
	if !s.Loading {
		t.Fatal("expected a new session to be loading")
	}
	if s.Selected == nil || s.Contents == nil {
		t.Fatal("expected maps to be initialised")
	}
}

func TestSetCatalogSortsAndClearsLoading(t *testing.T) {
	s := NewSession()
	s.SetCatalog(catalog.Snapshot{
		Names:    []string{"rust", "go", "node"},
		Contents: map[string]string{"rust": "r", "go": "g", "node": "n"},
	})
	want := []string{"go", "node", "rust"}
	if !reflect.DeepEqual(s.Full, want) {
		t.Fatalf("expected %v, got %v", want, s.Full)
	}
	if !reflect.DeepEqual(s.Filtered, want) {
		t.Fatalf("expected filtered %v, got %v", want, s.Filtered)
	}
	if s.Loading {
		t.Fatal("expected loading to be cleared")
	}
}

func TestSetCatalogDropsStaleSelections(t *testing.T) {
	s := newTestSession("go", "rust")
	s.Selected["rust"] = struct{}{}
	s.Selected["node"] = struct{}{}
	s.SetCatalog(catalog.Snapshot{
		Names:    []string{"go", "rust"},
		Contents: map[string]string{"go": "g", "rust": "r"},
	})
	if !s.IsSelected("rust") {
		t.Fatal("expected rust to stay selected")
	}
	if s.IsSelected("node") {
		t.Fatal("expected node selection to be dropped")
	}
}

func TestNotifyAndErrorAreExclusive(t *testing.T) {
	s := NewSession()
	s.SetError("boom")
	s.Notify("done")
	if s.Err != "" {
		t.Fatalf("expected error cleared by notify, got %q", s.Err)
	}
	if s.Notification != "done" {
		t.Fatalf("expected notification %q, got %q", "done", s.Notification)
	}
	s.SetError("boom again")
	if s.Notification != "" {
		t.Fatalf("expected notification cleared by error, got %q", s.Notification)
	}
	if s.Err != "boom again" {
		t.Fatalf("expected error %q, got %q", "boom again", s.Err)
	}
}

func TestClearExpiredNotification(t *testing.T) {
	s := NewSession()
	s.Notify("saved")
	if s.ClearExpiredNotification(time.Now()) {
		t.Fatal("expected a fresh notification to survive")
	}
	if s.Notification != "saved" {
		t.Fatalf("expected notification to remain, got %q", s.Notification)
	}
	if !s.ClearExpiredNotification(time.Now().Add(10 * time.Second)) {
		t.Fatal("expected the notification to expire")
	}
	if s.Notification != "" {
		t.Fatalf("expected notification cleared, got %q", s.Notification)
	}
	if s.ClearExpiredNotification(time.Now().Add(20 * time.Second)) {
		t.Fatal("expected no change once cleared")
	}
}

func TestHighlightedName(t *testing.T) {
	s := newTestSession("go", "node", "rust")
	if got := s.HighlightedName(); got != "go" {
		t.Fatalf("expected %q, got %q", "go", got)
	}
	s.Cursor = 2
	if got := s.HighlightedName(); got != "rust" {
		t.Fatalf("expected %q, got %q", "rust", got)
	}
	s.Filtered = nil
	if got := s.HighlightedName(); got != "" {
		t.Fatalf("expected empty name, got %q", got)
	}
}

func TestModeStrings(t *testing.T) {
	if ModeSearch.String() != "search" || ModeBrowse.String() != "browse" || ModeConfirm.String() != "confirm" {
		t.Fatalf("unexpected mode names: %q %q %q", ModeSearch, ModeBrowse, ModeConfirm)
	}
	if PreviewHighlighted.String() != "highlighted" || PreviewCombined.String() != "combined" {
		t.Fatalf("unexpected preview mode names: %q %q", PreviewHighlighted, PreviewCombined)
	}
}
