package match

// SelectTitle finds the tracklist title that best matches a file stem.
//
// The stem is normalized once, then every title is matched against it in
// tracklist order. The running best is replaced when, in priority order, the
// new match is strictly longer without more mismatches, has strictly fewer
// mismatches, or is the first match found at all. Anything else keeps the
// existing best, so ties favor the earliest tracklist entry.
//
// Returns an empty title and a None match when nothing matches, including
// when the stem or every title normalizes to nothing.
func SelectTitle(stem string, tracklist []string) (string, Match) {
	haystack := Normalize(stem).Text
	if haystack == "" {
		return "", Match{}
	}

	var bestTitle string
	var best Match

	for _, title := range tracklist {
		needle := Normalize(title).Text
		if needle == "" {
			continue
		}

		m := Find(haystack, needle)
		if m.Kind == None {
			continue
		}

		switch {
		case m.Length > best.Length && len(m.Misses) <= len(best.Misses):
			bestTitle, best = title, m
		case len(m.Misses) < len(best.Misses):
			bestTitle, best = title, m
		case best.Kind == None:
			bestTitle, best = title, m
		}
	}

	return bestTitle, best
}
