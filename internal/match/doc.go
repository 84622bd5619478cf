// Package match implements bounded fuzzy matching of track titles against
// file names.
//
// Matching always happens on normalized strings: lowercase, with whitespace
// and the characters ()[]{}-_ filtered out. Normalize keeps an index map back
// to the original string so a match found in normalized coordinates can be
// highlighted in the text the user actually sees.
//
// The matcher slides the title across the normalized file stem and accepts
// the first window with at most two mismatched characters. It is a
// leftmost-acceptable search, not a best-possible one: a later window with
// fewer mismatches is never considered. This keeps matching predictable on
// the short strings it is built for. There is no tolerance for insertions,
// deletions or transpositions.
//
// # Typical flow
//
//	title, m := match.SelectTitle("02 - lost_at-sea", tracklist)
//	if m.Kind == match.Automatic {
//	    segments := match.Segments("02 - lost_at-sea", m, match.Normalize("02 - lost_at-sea"))
//	    // render segments with the caller's styling
//	}
package match
