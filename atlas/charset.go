package atlas

import (
	"golang.org/x/text/unicode/norm"
)

// NormalizeCharset returns the code points of s in NFC form, without
// duplicates, in order of first appearance. A space is appended when
// absent so that every atlas can measure word gaps.
func NormalizeCharset(s string) []rune {
	s = norm.NFC.String(s)
	seen := make(map[rune]bool, len(s))
	out := make([]rune, 0, len(s)+1)
	for _, r := range s {
		if seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	if !seen[' '] {
		out = append(out, ' ')
	}
	return out
}
