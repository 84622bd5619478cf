package match

import "github.com/agnivade/levenshtein"

// Closest returns the tracklist title nearest to a file stem by Levenshtein
// distance over the normalized forms, for hinting at what an unmatched file
// might have been meant to be. Ties favor the earliest tracklist entry.
// Display-only; the bounded matcher never consults it.
func Closest(stem string, tracklist []string) (string, bool) {
	haystack := Normalize(stem).Text
	if haystack == "" {
		return "", false
	}

	bestDistance := -1
	bestTitle := ""
	for _, title := range tracklist {
		needle := Normalize(title).Text
		if needle == "" {
			continue
		}

		d := levenshtein.ComputeDistance(haystack, needle)
		if bestDistance == -1 || d < bestDistance {
			bestDistance = d
			bestTitle = title
		}
	}

	return bestTitle, bestDistance != -1
}
