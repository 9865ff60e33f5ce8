// Package catalog acquires the gitignore template catalog, preferring a
// local cache over the remote endpoint.
package catalog

import "sort"

// Snapshot is one immutable catalog value: the sorted unique template names
// and the name→content mapping. Produced once per session, either from the
// cache or from a fetch.
type Snapshot struct {
	Names    []string
	Contents map[string]string
}

// newSnapshot builds a Snapshot from a content mapping. Names are sorted;
// duplicates have already collapsed through the map insert.
func newSnapshot(contents map[string]string) Snapshot {
	names := make([]string, 0, len(contents))
	for name := range contents {
		names = append(names, name)
	}
	sort.Strings(names)
	return Snapshot{Names: names, Contents: contents}
}
