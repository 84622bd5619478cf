// Package plan turns a finalized candidate into the set of tag writes and
// removals for its file, and diffs that against what the file already
// stores so unchanged files are never touched.
package plan

import "github.com/chrysplusplus/albumtag/internal/album"

// OptionKind discriminates the four per-tag directive variants.
type OptionKind int

const (
	// OptionUnset means no directive was given; Resolve fills in the album
	// default.
	OptionUnset OptionKind = iota

	// OptionLiteral sets the tag to a fixed value.
	OptionLiteral

	// OptionFromParent sets the tag to the name of the file's parent
	// directory, resolved per file.
	OptionFromParent

	// OptionRemove deletes the tag. Remove always wins over a same-named
	// set.
	OptionRemove
)

// FieldOption is a per-tag directive: unset, a literal value, derive from
// the parent directory, or remove the tag.
type FieldOption struct {
	Kind  OptionKind
	Value string
}

// Literal returns a directive that sets the tag to a fixed value.
func Literal(value string) FieldOption {
	return FieldOption{Kind: OptionLiteral, Value: value}
}

// FromParent returns a directive that derives the tag value from the file's
// parent directory name.
func FromParent() FieldOption {
	return FieldOption{Kind: OptionFromParent}
}

// Remove returns a directive that deletes the tag.
func Remove() FieldOption {
	return FieldOption{Kind: OptionRemove}
}

// Options holds the per-run directives for the overridable tags.
type Options struct {
	Artist      FieldOption
	AlbumArtist FieldOption
	Album       FieldOption
}

// Resolve fills unset directives with the album defaults: the album artist
// for both artist tags, the album title for the album tag. Explicit
// directives are never overridden.
func (o Options) Resolve(a *album.Album) Options {
	resolved := o
	if resolved.Artist.Kind == OptionUnset {
		resolved.Artist = Literal(a.Artist)
	}
	if resolved.AlbumArtist.Kind == OptionUnset {
		resolved.AlbumArtist = Literal(a.Artist)
	}
	if resolved.Album.Kind == OptionUnset {
		resolved.Album = Literal(a.Title)
	}
	return resolved
}
