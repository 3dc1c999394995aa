package check

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// suggestionCutoff discards suggestion candidates whose normalized
// similarity to the requested name falls below 60%.
const suggestionCutoff = 0.6

// ClosestName returns the candidate most similar to target, scored with a
// character-level SequenceMatcher ratio. Candidates below the cutoff are
// discarded; ties keep the candidate seen first. ok is false when nothing
// clears the cutoff.
func ClosestName(target string, candidates []string) (name string, ok bool) {
	t := splitChars(target)
	best := 0.0
	for _, c := range candidates {
		ratio := difflib.NewMatcher(splitChars(c), t).Ratio()
		if ratio >= suggestionCutoff && ratio > best {
			name, ok = c, true
			best = ratio
		}
	}
	return name, ok
}

func splitChars(s string) []string {
	return strings.Split(s, "")
}
