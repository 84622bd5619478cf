package plan

import (
	"sort"
	"strconv"

	"github.com/chrysplusplus/albumtag/internal/album"
	"github.com/chrysplusplus/albumtag/internal/review"
	"github.com/chrysplusplus/albumtag/internal/tags"
)

// Plan is the full set of tag values to write and tags to delete for one
// file, computed before any I/O.
type Plan struct {
	// Set maps tag names to the values they should hold.
	Set map[string]string

	// Remove holds the tags to delete.
	Remove map[string]bool
}

// Build computes the write plan for a candidate. An unmatched candidate
// yields an empty plan: nothing set, nothing removed.
//
// A matched candidate plans its title and 1-based track number, plus the
// resolved per-tag directives. FromParent directives substitute parentDir,
// which is the name of the file's parent directory and may differ per file.
// Remove directives override any same-named set.
func Build(c review.Candidate, a *album.Album, opts Options, parentDir string) Plan {
	p := Plan{Set: map[string]string{}, Remove: map[string]bool{}}
	if !c.Matched() {
		return p
	}

	p.Set[tags.TagTitle] = c.Title
	if number, ok := a.TrackNumber(c.Title); ok {
		p.Set[tags.TagTrackNumber] = strconv.Itoa(number)
	}

	p.apply(tags.TagArtist, opts.Artist, parentDir)
	p.apply(tags.TagAlbumArtist, opts.AlbumArtist, parentDir)
	p.apply(tags.TagAlbum, opts.Album, parentDir)

	return p
}

func (p Plan) apply(tag string, opt FieldOption, parentDir string) {
	switch opt.Kind {
	case OptionLiteral:
		p.Set[tag] = opt.Value
	case OptionFromParent:
		p.Set[tag] = parentDir
	case OptionRemove:
		delete(p.Set, tag)
		p.Remove[tag] = true
	}
}

// Delta is the subset of a Plan that actually differs from a file's stored
// tags. An empty delta means the file must not be touched.
type Delta struct {
	// Set maps tag names to the values that differ from what is stored.
	Set map[string]string

	// Remove lists the planned removals whose tags are actually present,
	// sorted for deterministic application.
	Remove []string
}

// Empty reports whether applying the delta would change nothing.
func (d Delta) Empty() bool {
	return len(d.Set) == 0 && len(d.Remove) == 0
}

// Diff compares the plan against a file's currently stored tag values and
// keeps only the writes and removals that would change something.
func (p Plan) Diff(current map[string]string) Delta {
	d := Delta{Set: map[string]string{}}

	for tag, value := range p.Set {
		if current[tag] != value {
			d.Set[tag] = value
		}
	}

	for tag := range p.Remove {
		if _, present := current[tag]; present {
			d.Remove = append(d.Remove, tag)
		}
	}
	sort.Strings(d.Remove)

	return d
}
