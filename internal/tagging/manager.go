package tagging

import (
	"fmt"
	"path/filepath"

	"github.com/chrysplusplus/albumtag/internal/album"
	"github.com/chrysplusplus/albumtag/internal/config"
	"github.com/chrysplusplus/albumtag/internal/fileutil"
	"github.com/chrysplusplus/albumtag/internal/match"
	"github.com/chrysplusplus/albumtag/internal/plan"
	"github.com/chrysplusplus/albumtag/internal/playlist"
	"github.com/chrysplusplus/albumtag/internal/review"
	"github.com/chrysplusplus/albumtag/internal/sheet"
)

// Level indicates the severity/type of a progress message.
type Level int

const (
	LevelInfo Level = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// Event represents a progress update during a tagging run.
type Event struct {
	Message string
	Level   Level
}

// TagStore is the tag persistence collaborator the manager writes through.
// *tags.Store implements it; tests substitute an in-memory store.
type TagStore interface {
	// Read returns the stored tag values of a file, with unset tags absent.
	Read(path string) (map[string]string, error)

	// Apply writes the given values and removes the given tags in one save.
	Apply(path string, set map[string]string, remove []string) error
}

// Summary counts the per-file outcomes of one tagging run. Changed counts
// only files where at least one field actually differed.
type Summary struct {
	Changed   int
	Unchanged int
	Failed    int
}

// Manager coordinates a tagging run: load the album sheet, discover audio
// files, auto-match them, hand the match set to a front end for review, and
// apply the reviewed result.
type Manager struct {
	settings *config.Settings
	store    TagStore
	onEvent  func(Event)

	album   *album.Album
	dir     string
	session *review.Session
}

// NewManager creates a new tagging Manager.
func NewManager(settings *config.Settings, store TagStore, onEvent func(Event)) *Manager {
	return &Manager{settings: settings, store: store, onEvent: onEvent}
}

// Initialize parses the album sheet, discovers the audio files in dir and
// matches each file stem against the tracklist. A sheet error is fatal and
// leaves every file untouched. With recursive set, subdirectories of dir
// are scanned too.
func (m *Manager) Initialize(sheetPath, dir string, recursive bool) error {
	a, err := sheet.Load(sheetPath)
	if err != nil {
		return err
	}
	m.album = a
	m.dir = dir
	m.event(Event{Message: fmt.Sprintf("Read album metadata from %s", sheetPath), Level: LevelInfo})

	files, err := fileutil.FindAudio(dir, m.settings.Extensions, recursive)
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", dir, err)
	}
	if len(files) == 0 {
		m.event(Event{Message: fmt.Sprintf("No audio files found in %s", dir), Level: LevelWarning})
	}

	candidates := make([]review.Candidate, 0, len(files))
	for _, file := range files {
		title, mt := match.SelectTitle(fileutil.Stem(file), a.Tracklist)
		candidates = append(candidates, review.Candidate{Path: file, Match: mt, Title: title})
		if title == "" {
			m.event(Event{Message: fmt.Sprintf("No match for %s", filepath.Base(file)), Level: LevelVerbose})
		}
	}

	m.session = review.NewSession(candidates, a.Tracklist)
	return nil
}

// Album returns the parsed album metadata. Valid after Initialize.
func (m *Manager) Album() *album.Album {
	return m.album
}

// Session returns the review session over the auto-matched candidates.
// Valid after Initialize.
func (m *Manager) Session() *review.Session {
	return m.session
}

// Apply builds and applies the write plan for every candidate. It must only
// be called after the review committed: the final candidate set is read from
// the session.
//
// Files are processed strictly sequentially. A file is written only when at
// least one planned field differs from what it stores; a failed write is
// reported and counted but never stops the remaining files.
func (m *Manager) Apply(opts plan.Options) Summary {
	resolved := opts.Resolve(m.album)

	var summary Summary
	for _, c := range m.session.Candidates() {
		switch m.applyFile(c, resolved) {
		case fileChanged:
			summary.Changed++
		case fileUnchanged:
			summary.Unchanged++
		case fileFailed:
			summary.Failed++
		}
	}

	if m.settings.CreatePlaylist {
		if err := playlist.Write(m.dir, m.session.Candidates(), m.album); err != nil {
			m.event(Event{Message: fmt.Sprintf("Error creating playlist: %v", err), Level: LevelWarning})
		} else {
			m.event(Event{Message: fmt.Sprintf("Created playlist %s", playlist.FileName(m.album)), Level: LevelSuccess})
		}
	}

	return summary
}

type fileOutcome int

const (
	fileChanged fileOutcome = iota
	fileUnchanged
	fileFailed
)

func (m *Manager) applyFile(c review.Candidate, opts plan.Options) fileOutcome {
	name := filepath.Base(c.Path)

	if !c.Matched() {
		m.event(Event{Message: fmt.Sprintf("'%s' will remain unchanged", name), Level: LevelVerbose})
		return fileUnchanged
	}

	parent, err := fileutil.ParentName(c.Path)
	if err != nil {
		m.event(Event{Message: fmt.Sprintf("Error resolving parent of %s: %v", name, err), Level: LevelError})
		return fileFailed
	}

	p := plan.Build(c, m.album, opts, parent)

	current, err := m.store.Read(c.Path)
	if err != nil {
		m.event(Event{Message: fmt.Sprintf("Error reading tags of %s: %v", name, err), Level: LevelError})
		return fileFailed
	}

	delta := p.Diff(current)
	if delta.Empty() {
		m.event(Event{Message: fmt.Sprintf("Unchanged: %s", name), Level: LevelVerbose})
		return fileUnchanged
	}

	if err := m.store.Apply(c.Path, delta.Set, delta.Remove); err != nil {
		m.event(Event{Message: fmt.Sprintf("Error writing tags of %s: %v", name, err), Level: LevelError})
		return fileFailed
	}

	m.event(Event{Message: fmt.Sprintf("Updated: %s -> %s", name, c.Title), Level: LevelSuccess})
	return fileChanged
}

func (m *Manager) event(e Event) {
	if m.onEvent != nil {
		m.onEvent(e)
	}
}
