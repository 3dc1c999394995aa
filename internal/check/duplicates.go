package check

import (
	"sort"

	"github.com/avairo/tplcheck/internal/catalog"
)

// DuplicateIDs returns the id values that occur more than once across the
// catalog, sorted lexicographically so diagnostics are reproducible.
// Entries without an id are exempt from the uniqueness check.
func DuplicateIDs(entries []catalog.Entry) []string {
	counts := make(map[string]int, len(entries))
	for _, e := range entries {
		if e.ID != "" {
			counts[e.ID]++
		}
	}

	var dupes []string
	for id, n := range counts {
		if n > 1 {
			dupes = append(dupes, id)
		}
	}
	sort.Strings(dupes)
	return dupes
}
