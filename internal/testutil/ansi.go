// Package testutil carries small helpers shared by UI-level tests.
package testutil

import "regexp"

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]`)

// StripANSI removes terminal escape sequences so tests can assert on the
// visible text of a rendered view.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
