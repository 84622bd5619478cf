// Package sheet parses album sheet files.
//
// An album sheet is a plain text file with bracketed section headers, each
// followed by the lines belonging to that section:
//
//	[artist]
//	The Antlers
//
//	[album]
//	Hospice
//
//	[tracklist]
//	Prologue
//	Kettering
//	Sylvia
//
// Blank lines are ignored. A repeated header resumes appending to the
// existing section instead of starting a new one. A UTF-8 byte order mark on
// the first line is stripped before parsing.
package sheet

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chrysplusplus/albumtag/internal/album"
)

// Required headers for building an Album.
const (
	HeaderArtist    = "artist"
	HeaderAlbum     = "album"
	HeaderTracklist = "tracklist"
)

// Table maps a header name to the ordered lines of its section. Lines that
// appear before the first header are collected under the empty header name.
type Table map[string][]string

// MissingHeaderError reports that a required header is absent or empty.
type MissingHeaderError struct {
	Header string
}

func (e *MissingHeaderError) Error() string {
	return fmt.Sprintf("album sheet has no %s", e.Header)
}

// Read parses sheet text into a Table.
func Read(r io.Reader) (Table, error) {
	table := Table{}
	current := ""

	scanner := bufio.NewScanner(r)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, "\ufeff")
			first = false
		}

		entry := strings.TrimRight(line, " \t\r")
		if entry == "" {
			continue
		}

		if header, ok := parseHeader(entry); ok {
			current = header
			if _, exists := table[header]; !exists {
				table[header] = nil
			}
			continue
		}

		table[current] = append(table[current], entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return table, nil
}

// parseHeader reports whether an entry is a [header] line and returns its name.
func parseHeader(entry string) (string, bool) {
	if strings.HasPrefix(entry, "[") && strings.HasSuffix(entry, "]") {
		return entry[1 : len(entry)-1], true
	}
	return "", false
}

// ParseAlbum builds an Album from a sheet table. The artist, album and
// tracklist headers are required; a *MissingHeaderError is returned when one
// of them is absent or has no lines.
func ParseAlbum(table Table) (*album.Album, error) {
	for _, header := range []string{HeaderArtist, HeaderAlbum, HeaderTracklist} {
		if len(table[header]) == 0 {
			return nil, &MissingHeaderError{Header: header}
		}
	}

	return &album.Album{
		Artist:    table[HeaderArtist][0],
		Title:     table[HeaderAlbum][0],
		Tracklist: table[HeaderTracklist],
	}, nil
}

// Load reads and parses an album sheet file.
func Load(path string) (*album.Album, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	table, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read album sheet: %w", err)
	}

	return ParseAlbum(table)
}
