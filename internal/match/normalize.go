package match

import (
	"strings"
	"unicode"
)

// skippableChars are filtered out of strings before matching, in addition to
// Unicode whitespace.
const skippableChars = "()[]{}-_"

// Normalized is the comparison form of a string: lowercase with skippable
// characters removed, paired with a strictly increasing map from filtered
// rune positions back to original rune positions. Built once per input
// string, never mutated.
type Normalized struct {
	// Text is the filtered lowercase text.
	Text string

	// Map holds, for each rune position in Text, the rune position in the
	// original string of the character it came from.
	Map []int
}

// Normalize builds the comparison form of a string. Characters are never
// reordered, so Map is strictly increasing.
func Normalize(s string) Normalized {
	var b strings.Builder
	var indexMap []int

	for i, r := range []rune(s) {
		if isSkippable(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
		indexMap = append(indexMap, i)
	}

	return Normalized{Text: b.String(), Map: indexMap}
}

func isSkippable(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune(skippableChars, r)
}
