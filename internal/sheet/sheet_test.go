package sheet

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleSheet = `[artist]
The Antlers

[album]
Hospice

[tracklist]
Prologue
Kettering
Sylvia
`

func TestRead_Sections(t *testing.T) {
	table, err := Read(strings.NewReader(sampleSheet))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if got := table["artist"]; len(got) != 1 || got[0] != "The Antlers" {
		t.Errorf("artist section = %v, want [The Antlers]", got)
	}
	if got := table["tracklist"]; len(got) != 3 {
		t.Errorf("tracklist section has %d lines, want 3", len(got))
	}
}

func TestRead_StripsBOM(t *testing.T) {
	table, err := Read(strings.NewReader("\ufeff[artist]\nSomeone\n"))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got := table["artist"]; len(got) != 1 || got[0] != "Someone" {
		t.Errorf("artist section = %v, want [Someone]; BOM should not corrupt the first header", got)
	}
}

func TestRead_DuplicateHeaderResumes(t *testing.T) {
	input := "[tracklist]\nOne\n[notes]\nirrelevant\n[tracklist]\nTwo\n"
	table, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	got := table["tracklist"]
	if len(got) != 2 || got[0] != "One" || got[1] != "Two" {
		t.Errorf("tracklist section = %v, want [One Two]", got)
	}
}

func TestRead_LinesBeforeFirstHeader(t *testing.T) {
	table, err := Read(strings.NewReader("stray line\n[artist]\nSomeone\n"))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got := table[""]; len(got) != 1 || got[0] != "stray line" {
		t.Errorf("headerless section = %v, want [stray line]", got)
	}
}

func TestParseAlbum(t *testing.T) {
	table, err := Read(strings.NewReader(sampleSheet))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	a, err := ParseAlbum(table)
	if err != nil {
		t.Fatalf("ParseAlbum() error = %v", err)
	}

	if a.Artist != "The Antlers" {
		t.Errorf("Artist = %q, want %q", a.Artist, "The Antlers")
	}
	if a.Title != "Hospice" {
		t.Errorf("Title = %q, want %q", a.Title, "Hospice")
	}
	if n, ok := a.TrackNumber("Kettering"); !ok || n != 2 {
		t.Errorf("TrackNumber(Kettering) = %d, %v, want 2, true", n, ok)
	}
}

func TestParseAlbum_MissingHeader(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no artist", "[album]\nX\n[tracklist]\nY\n", "artist"},
		{"no album", "[artist]\nX\n[tracklist]\nY\n", "album"},
		{"no tracklist", "[artist]\nX\n[album]\nY\n", "tracklist"},
		{"empty tracklist", "[artist]\nX\n[album]\nY\n[tracklist]\n", "tracklist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Read(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}

			_, err = ParseAlbum(table)
			var missing *MissingHeaderError
			if !errors.As(err, &missing) {
				t.Fatalf("ParseAlbum() error = %v, want *MissingHeaderError", err)
			}
			if missing.Header != tt.want {
				t.Errorf("missing header = %q, want %q", missing.Header, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "album.txt")
	if err := os.WriteFile(path, []byte(sampleSheet), 0644); err != nil {
		t.Fatal(err)
	}

	a, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(a.Tracklist) != 3 {
		t.Errorf("Tracklist has %d entries, want 3", len(a.Tracklist))
	}
}
