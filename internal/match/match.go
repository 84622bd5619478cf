package match

// maxMisses is the number of single-character substitutions a window may
// contain and still be accepted.
const maxMisses = 2

// Kind discriminates the three possible match results.
type Kind int

const (
	// None means no window of the haystack matched the needle.
	None Kind = iota

	// Automatic means the matcher found a window within the mismatch budget.
	Automatic

	// Manual means the operator chose the title; Start, Length and Misses
	// are meaningless.
	Manual
)

// Match is the result of matching a needle inside a haystack. The zero value
// is a None match.
type Match struct {
	Kind Kind

	// Start is the rune offset of the window in the normalized haystack.
	Start int

	// Length is the window length in runes, equal to the needle's length.
	Length int

	// Misses holds the rune positions of mismatched characters, as absolute
	// ascending indices into the normalized haystack. Always within
	// [Start, Start+Length).
	Misses []int
}

// ManualMatch returns the match recorded for an operator override.
func ManualMatch() Match {
	return Match{Kind: Manual}
}

// Find locates the needle inside the haystack, tolerating up to two
// mismatched characters. Both strings must already be normalized.
//
// The needle slides across the haystack from offset zero upward and the
// first window within the mismatch budget wins; later windows are never
// examined, even if they would match exactly. Returns a None match when the
// needle is longer than the haystack or no window qualifies.
//
// Both arguments must be non-empty; empty input is a caller bug.
func Find(haystack, needle string) Match {
	if haystack == "" || needle == "" {
		panic("match: Find called with empty string")
	}

	hay := []rune(haystack)
	pat := []rune(needle)
	if len(pat) > len(hay) {
		return Match{}
	}

	for offset := 0; offset <= len(hay)-len(pat); offset++ {
		var misses []int
		for i, r := range pat {
			if hay[offset+i] != r {
				misses = append(misses, offset+i)
			}
		}
		if len(misses) <= maxMisses {
			return Match{Kind: Automatic, Start: offset, Length: len(pat), Misses: misses}
		}
	}

	return Match{}
}
