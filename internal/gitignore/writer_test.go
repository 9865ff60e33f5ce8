package gitignore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := Write(path, "new\n", ModeOverwrite); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(data) != "new\n" {
		t.Fatalf("expected %q, got %q", "new\n", string(data))
	}
}

func TestWriteOverwriteReplacesContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("old\n"), 0o644); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if err := Write(path, "new\n", ModeOverwrite); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "new\n" {
		t.Fatalf("expected %q, got %q", "new\n", string(data))
	}
}

func TestWriteAppendKeepsExistingBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("old\n"), 0o644); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if err := Write(path, "new\n", ModeAppend); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "old\nnew\n" {
		t.Fatalf("expected %q, got %q", "old\nnew\n", string(data))
	}
}

func TestWriteRejectsDirectoryTarget(t *testing.T) {
	dir := t.TempDir()
	if err := Write(dir, "content", ModeOverwrite); err == nil {
		t.Fatal("expected error writing to a directory")
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := PathIn(dir)
	if Exists(path) {
		t.Fatalf("expected %s to be missing", path)
	}
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if !Exists(path) {
		t.Fatalf("expected %s to exist", path)
	}
	if Exists(dir) {
		t.Fatal("expected directories to be reported as missing")
	}
}

func TestPathIn(t *testing.T) {
	if got := PathIn("/tmp/project"); got != filepath.Join("/tmp/project", FileName) {
		t.Fatalf("unexpected path %q", got)
	}
}

func TestModeString(t *testing.T) {
	if ModeAppend.String() != "append" {
		t.Fatalf("unexpected verb %q", ModeAppend.String())
	}
	if ModeOverwrite.String() != "overwrite" {
		t.Fatalf("unexpected verb %q", ModeOverwrite.String())
	}
}
