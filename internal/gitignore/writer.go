// Package gitignore writes the merged ignore file produced by the session.
package gitignore

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the output file created inside the target directory.
const FileName = ".gitignore"

// Mode selects how Write treats an existing file.
type Mode int

const (
	// ModeOverwrite replaces the file contents entirely, creating the file
	// when it does not exist.
	ModeOverwrite Mode = iota
	// ModeAppend keeps the existing bytes and writes the new content after
	// them.
	ModeAppend
)

// String returns the verb used in notifications and trace entries.
func (m Mode) String() string {
	if m == ModeAppend {
		return "append"
	}
	return "overwrite"
}

// PathIn returns the output file path inside dir.
func PathIn(dir string) string {
	return filepath.Join(dir, FileName)
}

// Exists reports whether path names an existing regular file.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (m Mode) openFlags() int {
	flags := os.O_WRONLY | os.O_CREATE
	if m == ModeAppend {
		return flags | os.O_APPEND
	}
	return flags | os.O_TRUNC
}

// Write stores content at path according to mode. No temp-file swap is
// performed; the files involved are small.
func Write(path, content string, mode Mode) error {
	f, err := os.OpenFile(path, mode.openFlags(), 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
