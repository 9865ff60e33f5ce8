package state

import (
	"testing"

	"github.com/Bilal-AKAG/autogitignore/internal/catalog"
)

func TestPreviewTextHighlighted(t *testing.T) {
	s := newTestSession("go", "rust")
	if got := s.PreviewText(); got != "go body\n" {
		t.Fatalf("expected %q, got %q", "go body\n", got)
	}
	s.Cursor = 1
	if got := s.PreviewText(); got != "rust body\n" {
		t.Fatalf("expected %q, got %q", "rust body\n", got)
	}
}

func TestPreviewTextPlaceholders(t *testing.T) {
	s := NewSession()
	if got := s.PreviewText(); got != NoHighlightPlaceholder {
		t.Fatalf("expected %q, got %q", NoHighlightPlaceholder, got)
	}
	s.Filtered = []string{"ghost"}
	if got := s.PreviewText(); got != LoadingPlaceholder {
		t.Fatalf("expected %q, got %q", LoadingPlaceholder, got)
	}
	s.PreviewMode = PreviewCombined
	if got := s.PreviewText(); got != NoSelectionPlaceholder {
		t.Fatalf("expected %q, got %q", NoSelectionPlaceholder, got)
	}
}

func TestPreviewTextCombined(t *testing.T) {
	s := newTestSession("go", "node", "rust")
	s.Cursor = 2
	s.ToggleSelection()
	s.Cursor = 0
	s.ToggleSelection()
	s.PreviewMode = PreviewCombined
	want := "### go ###\ngo body\n\n\n### rust ###\nrust body\n\n\n"
	if got := s.PreviewText(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestTogglePreviewModeResetsScroll(t *testing.T) {
	s := newTestSession("go")
	s.PreviewScroll = 5
	s.TogglePreviewMode()
	if s.PreviewMode != PreviewCombined {
		t.Fatalf("expected combined mode, got %q", s.PreviewMode)
	}
	if s.PreviewScroll != 0 {
		t.Fatalf("expected scroll reset, got %d", s.PreviewScroll)
	}
	s.TogglePreviewMode()
	if s.PreviewMode != PreviewHighlighted {
		t.Fatalf("expected highlighted mode, got %q", s.PreviewMode)
	}
}

func TestGenerateOutput(t *testing.T) {
	s := NewSession()
	s.SetCatalog(catalog.Snapshot{
		Names:    []string{"go", "rust"},
		Contents: map[string]string{"go": "bin/\n*.test", "rust": "target/"},
	})
	s.Selected["rust"] = struct{}{}
	s.Selected["go"] = struct{}{}
	want := "\n# --- go ---\nbin/\n*.test\n\n# --- rust ---\ntarget/\n"
	if got := s.GenerateOutput(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestScrollPreviewByClamps(t *testing.T) {
	s := newTestSession("go")
	if s.ScrollPreviewBy(-1, 10) {
		t.Fatal("expected no change below zero")
	}
	if !s.ScrollPreviewBy(10, 4) {
		t.Fatal("expected the offset to move")
	}
	if s.PreviewScroll != 4 {
		t.Fatalf("expected offset clamped to 4, got %d", s.PreviewScroll)
	}
	if !s.ScrollPreviewBy(-10, 4) {
		t.Fatal("expected the offset to move back")
	}
	if s.PreviewScroll != 0 {
		t.Fatalf("expected offset 0, got %d", s.PreviewScroll)
	}
	s.PreviewScroll = 8
	if !s.ScrollPreviewBy(1, 4) {
		t.Fatal("expected an out-of-range offset to be clamped")
	}
	if s.PreviewScroll != 4 {
		t.Fatalf("expected offset clamped to 4, got %d", s.PreviewScroll)
	}
}
