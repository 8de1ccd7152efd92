package tasks

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestRatio is the largest edit distance, relative to the longer of
// the two strings, still considered a likely typo.
const maxSuggestRatio = 0.4

// Closest returns the entry most similar to description, compared
// case-insensitively by edit distance. It reports false when nothing is
// close enough or the list is empty. Ties go to the earlier entry.
func (l *List) Closest(description string) (string, bool) {
	return Closest(description, l.items)
}

// Closest returns the candidate most similar to target. See List.Closest.
func Closest(target string, candidates []string) (string, bool) {
	best := ""
	bestRatio := maxSuggestRatio
	found := false
	upper := strings.ToUpper(target)
	for _, c := range candidates {
		if c == target {
			continue
		}
		maxlen := len(target)
		if len(c) > maxlen {
			maxlen = len(c)
		}
		if maxlen == 0 {
			continue
		}
		dist := levenshtein.ComputeDistance(upper, strings.ToUpper(c))
		ratio := float64(dist) / float64(maxlen)
		if ratio < bestRatio {
			best, bestRatio, found = c, ratio, true
		}
	}
	return best, found
}
