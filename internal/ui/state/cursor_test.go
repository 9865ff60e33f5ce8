package state

import "testing"

func TestMoveNextWrapsAround(t *testing.T) {
	s := newTestSession("go", "node", "rust")
	s.Cursor = 2
	if !s.MoveNext() {
		t.Fatal("expected the cursor to move")
	}
	if s.Cursor != 0 {
		t.Fatalf("expected wrap to 0, got %d", s.Cursor)
	}
}

func TestMovePreviousWrapsAround(t *testing.T) {
	s := newTestSession("go", "node", "rust")
	if !s.MovePrevious() {
		t.Fatal("expected the cursor to move")
	}
	if s.Cursor != 2 {
		t.Fatalf("expected wrap to 2, got %d", s.Cursor)
	}
}

func TestMoveOnEmptyListIsNoop(t *testing.T) {
	s := NewSession()
	if s.MoveNext() || s.MovePrevious() || s.MoveHome() || s.MoveEnd() {
		t.Fatal("expected movement on an empty list to report no change")
	}
}

func TestMoveResetsPreviewScroll(t *testing.T) {
	s := newTestSession("go", "node", "rust")
	s.PreviewScroll = 9
	s.MoveNext()
	if s.PreviewScroll != 0 {
		t.Fatalf("expected preview scroll reset, got %d", s.PreviewScroll)
	}
}

func TestMoveHomeAndEnd(t *testing.T) {
	s := newTestSession("go", "node", "rust")
	if !s.MoveEnd() {
		t.Fatal("expected the cursor to move to the end")
	}
	if s.Cursor != 2 {
		t.Fatalf("expected cursor at 2, got %d", s.Cursor)
	}
	if s.MoveEnd() {
		t.Fatal("expected a second end to report no change")
	}
	if !s.MoveHome() {
		t.Fatal("expected the cursor to move home")
	}
	if s.Cursor != 0 {
		t.Fatalf("expected cursor at 0, got %d", s.Cursor)
	}
}

func TestEnsureCursorVisibleScrollsDown(t *testing.T) {
	s := newTestSession("a", "b", "c", "d", "e", "f")
	s.Cursor = 4
	s.EnsureCursorVisible(3)
	if s.ViewportOffset != 2 {
		t.Fatalf("expected offset 2, got %d", s.ViewportOffset)
	}
}

func TestEnsureCursorVisibleScrollsUp(t *testing.T) {
	s := newTestSession("a", "b", "c", "d", "e", "f")
	s.ViewportOffset = 3
	s.Cursor = 1
	s.EnsureCursorVisible(3)
	if s.ViewportOffset != 1 {
		t.Fatalf("expected offset 1, got %d", s.ViewportOffset)
	}
}

func TestEnsureCursorVisibleClampsOffset(t *testing.T) {
	s := newTestSession("a", "b", "c")
	s.ViewportOffset = 9
	s.Cursor = 1
	s.EnsureCursorVisible(5)
	if s.ViewportOffset != 0 {
		t.Fatalf("expected offset clamped to 0, got %d", s.ViewportOffset)
	}
	s.EnsureCursorVisible(0)
	if s.ViewportOffset != 0 {
		t.Fatalf("expected offset 0 for a zero-height viewport, got %d", s.ViewportOffset)
	}
}
