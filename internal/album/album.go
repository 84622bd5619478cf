// Package album defines the album metadata shared across the application.
package album

// Album holds the canonical metadata for one album: the artist, the album
// title, and the ordered tracklist. The tracklist order defines the 1-based
// track number of every title.
//
// An Album is built once, by the sheet parser, and never mutated afterwards.
//
// Example:
//
//	a := &album.Album{
//	    Artist:    "The Antlers",
//	    Title:     "Hospice",
//	    Tracklist: []string{"Prologue", "Kettering", "Sylvia"},
//	}
//	n, _ := a.TrackNumber("Kettering") // n == 2
type Album struct {
	// Artist is the album artist name.
	Artist string

	// Title is the album title.
	Title string

	// Tracklist contains the track titles in album order.
	Tracklist []string
}

// TrackNumber returns the 1-based track number of a title, determined by its
// position in the tracklist. The second return value is false if the title is
// not part of the tracklist.
func (a *Album) TrackNumber(title string) (int, bool) {
	for i, t := range a.Tracklist {
		if t == title {
			return i + 1, true
		}
	}
	return 0, false
}
