// Package playlist generates M3U playlists from a finalized match set.
package playlist

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/chrysplusplus/albumtag/internal/album"
	"github.com/chrysplusplus/albumtag/internal/fileutil"
	"github.com/chrysplusplus/albumtag/internal/review"
)

// Content builds M3U playlist content from the matched candidates, ordered
// by their track number in the album. Unmatched candidates are skipped.
// Entries are relative filenames, assuming the playlist lives next to the
// files.
func Content(candidates []review.Candidate, a *album.Album) string {
	type entry struct {
		number int
		name   string
	}

	var entries []entry
	for _, c := range candidates {
		if !c.Matched() {
			continue
		}
		number, ok := a.TrackNumber(c.Title)
		if !ok {
			continue
		}
		entries = append(entries, entry{number: number, name: filepath.Base(c.Path)})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].number != entries[j].number {
			return entries[i].number < entries[j].number
		}
		return entries[i].name < entries[j].name
	})

	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(e.name + "\n")
	}
	return sb.String()
}

// FileName returns the playlist filename for an album, sanitized for the
// file system.
func FileName(a *album.Album) string {
	return fileutil.SanitizeFileName(a.Title) + ".m3u"
}

// Write saves the playlist for the matched candidates into a directory.
func Write(dir string, candidates []review.Candidate, a *album.Album) error {
	content := Content(candidates, a)
	return os.WriteFile(filepath.Join(dir, FileName(a)), []byte(content), 0644)
}
