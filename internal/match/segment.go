package match

// SegmentKind classifies a span of the original string relative to a match.
type SegmentKind int

const (
	// SegmentPlain is text outside the matched span.
	SegmentPlain SegmentKind = iota

	// SegmentMatched is text inside the matched span.
	SegmentMatched

	// SegmentMismatched is a character inside the span that differed from
	// the title.
	SegmentMismatched
)

// Segment is one typed span of the original string.
type Segment struct {
	Kind SegmentKind
	Text string
}

// Segments splits the original string into ordered spans for highlighting an
// Automatic match. The match's coordinates are translated back through the
// index map of the original's normalized form, so characters dropped by
// normalization stay inside the span they fall into. Concatenating the
// segment texts reproduces the original string exactly.
//
// None and Manual matches have no span to highlight and yield a single plain
// segment.
func Segments(original string, m Match, n Normalized) []Segment {
	if m.Kind != Automatic || m.Length == 0 {
		return []Segment{{Kind: SegmentPlain, Text: original}}
	}

	runes := []rune(original)
	start := n.Map[m.Start]
	end := n.Map[m.Start+m.Length-1] // inclusive

	missed := make(map[int]bool, len(m.Misses))
	for _, idx := range m.Misses {
		missed[n.Map[idx]] = true
	}

	var segments []Segment
	appendSegment := func(kind SegmentKind, text string) {
		if text == "" {
			return
		}
		segments = append(segments, Segment{Kind: kind, Text: text})
	}

	appendSegment(SegmentPlain, string(runes[:start]))

	from := start
	for i := start; i <= end; i++ {
		if !missed[i] {
			continue
		}
		appendSegment(SegmentMatched, string(runes[from:i]))
		appendSegment(SegmentMismatched, string(runes[i:i+1]))
		from = i + 1
	}
	appendSegment(SegmentMatched, string(runes[from:end+1]))

	appendSegment(SegmentPlain, string(runes[end+1:]))

	return segments
}
