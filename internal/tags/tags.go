// Package tags is the ID3 tag store. It reads and writes the small set of
// text frames the application cares about, addressed by logical tag names
// rather than frame IDs.
package tags

import (
	"fmt"
	"strings"

	"github.com/bogem/id3v2"
)

// Logical tag names used throughout the application.
const (
	TagArtist      = "artist"
	TagAlbumArtist = "albumartist"
	TagAlbum       = "album"
	TagTitle       = "title"
	TagTrackNumber = "tracknumber"
)

// Names lists all supported tag names in display order.
var Names = []string{TagArtist, TagAlbumArtist, TagAlbum, TagTitle, TagTrackNumber}

// frameIDs maps logical tag names to their ID3v2 text frame IDs.
var frameIDs = map[string]string{
	TagArtist:      "TPE1",
	TagAlbumArtist: "TPE2",
	TagAlbum:       "TALB",
	TagTitle:       "TIT2",
	TagTrackNumber: "TRCK",
}

// FrameID returns the ID3v2 frame ID for a logical tag name. The second
// return value is false for unknown names.
func FrameID(name string) (string, bool) {
	id, ok := frameIDs[name]
	return id, ok
}

// Store reads and writes ID3 tags on MP3 files, one file at a time.
//
// Example:
//
//	store := tags.NewStore()
//	current, err := store.Read("01 prologue.mp3")
//	if err != nil {
//	    return err
//	}
//	if current[tags.TagTitle] != "Prologue" {
//	    err = store.Apply("01 prologue.mp3", map[string]string{tags.TagTitle: "Prologue"}, nil)
//	}
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Read returns the stored value of every supported tag that is set on the
// file. Unset tags are absent from the map.
func (s *Store) Read(path string) (map[string]string, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open tags of %s: %w", path, err)
	}
	defer tag.Close()

	values := make(map[string]string)
	for name, frameID := range frameIDs {
		text := tag.GetTextFrame(frameID).Text
		if text != "" {
			values[name] = text
		}
	}

	return values, nil
}

// Apply writes the given tag values and deletes the given tags, then saves
// the file once. Either the whole apply is saved or an error is returned and
// the file keeps its previous tags.
func (s *Store) Apply(path string, set map[string]string, remove []string) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("failed to open tags of %s: %w", path, err)
	}
	defer tag.Close()

	for name, value := range set {
		frameID, ok := frameIDs[name]
		if !ok {
			return fmt.Errorf("unknown tag name %q", name)
		}
		tag.AddTextFrame(frameID, id3v2.EncodingUTF8, value)
	}

	for _, name := range remove {
		frameID, ok := frameIDs[name]
		if !ok {
			return fmt.Errorf("unknown tag name %q", name)
		}
		tag.DeleteFrames(frameID)
	}

	return tag.Save()
}

// Expand substitutes {tag} placeholders in a format string with stored tag
// values. Tags that are not set render as empty strings.
//
// Example:
//
//	tags.Expand(values, "{title} by {artist}")
func Expand(values map[string]string, format string) string {
	out := format
	for _, name := range Names {
		out = strings.ReplaceAll(out, "{"+name+"}", values[name])
	}
	return out
}
