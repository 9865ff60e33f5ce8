package state

import (
	"reflect"
	"testing"
)

func TestToggleSelection(t *testing.T) {
	s := newTestSession("go", "node", "rust")
	if !s.ToggleSelection() {
		t.Fatal("expected the highlighted template to be toggled")
	}
	if !s.IsSelected("go") {
		t.Fatal("expected go to be selected")
	}
	if !s.ToggleSelection() {
		t.Fatal("expected the highlighted template to be toggled off")
	}
	if s.IsSelected("go") {
		t.Fatal("expected go to be deselected")
	}
}

func TestToggleSelectionOnEmptyList(t *testing.T) {
	s := NewSession()
	if s.ToggleSelection() {
		t.Fatal("expected toggling with no templates to report no change")
	}
}

func TestToggleSelectionClearsMessages(t *testing.T) {
	s := newTestSession("go")
	s.SetError("No templates selected!")
	s.ToggleSelection()
	if s.Err != "" {
		t.Fatalf("expected error cleared, got %q", s.Err)
	}
}

func TestSelectedNamesSorted(t *testing.T) {
	s := newTestSession("go", "node", "rust")
	s.Cursor = 2
	s.ToggleSelection()
	s.Cursor = 0
	s.ToggleSelection()
	want := []string{"go", "rust"}
	if got := s.SelectedNames(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestHasSelection(t *testing.T) {
	s := newTestSession("go")
	if s.HasSelection() {
		t.Fatal("expected no selection initially")
	}
	s.ToggleSelection()
	if !s.HasSelection() {
		t.Fatal("expected a selection after toggling")
	}
}
