// Package review implements the interactive match-correction workflow as a
// pure state machine. Front ends feed it operator input lines and render its
// state; the package itself performs no I/O.
package review

import (
	"strconv"
	"strings"

	"github.com/chrysplusplus/albumtag/internal/match"
)

// Candidate pairs an audio file with its best-guess (or manually chosen)
// track title and the match that produced it.
type Candidate struct {
	// Path is the audio file's path.
	Path string

	// Match records how Title was determined.
	Match match.Match

	// Title is the resolved track title. Empty means the file has no title
	// and will be left unchanged.
	Title string
}

// Matched reports whether the candidate has a resolved title. Unmatched
// candidates are excluded from all writes.
func (c Candidate) Matched() bool {
	return c.Title != ""
}

// Phase is the session's current input phase.
type Phase int

const (
	// PhaseSelecting waits for the operator to pick a candidate to edit,
	// finish the review, or quit.
	PhaseSelecting Phase = iota

	// PhaseChoosing waits for the operator to pick a replacement title for
	// the selected candidate, unset it, or cancel.
	PhaseChoosing
)

// Outcome is the session's lifecycle state after an input.
type Outcome int

const (
	// OutcomeContinue means the session wants more input.
	OutcomeContinue Outcome = iota

	// OutcomeCommitted means the operator finished the review; the current
	// candidate set is final.
	OutcomeCommitted

	// OutcomeAborted means the operator quit; no changes may be written.
	OutcomeAborted
)

// Event describes what a single input did, so the front end can react.
type Event int

const (
	// EventNone means the input was ignored; re-prompt without noise.
	EventNone Event = iota

	// EventSelected means a candidate was picked for editing.
	EventSelected

	// EventEdited means the selected candidate's title was changed or unset.
	EventEdited

	// EventCancelled means the operator backed out of a title choice.
	EventCancelled

	// EventOutOfRange means an integer input fell outside the valid bounds.
	EventOutOfRange
)

// Step is the result of feeding one input line to the session.
type Step struct {
	Outcome Outcome
	Event   Event

	// Index is the affected candidate index for EventSelected and
	// EventEdited.
	Index int
}

// Session drives one review of a candidate set against a tracklist.
//
// The session starts in PhaseSelecting. Each call to Input advances it:
//
//	s := review.NewSession(candidates, tracklist)
//	for {
//	    step := s.Input(readLine())
//	    if step.Outcome != review.OutcomeContinue {
//	        break
//	    }
//	    // render according to step.Event and s.Phase()
//	}
type Session struct {
	candidates []Candidate
	tracklist  []string
	phase      Phase
	selected   int
}

// NewSession creates a session over the given candidates and tracklist. The
// candidate slice is owned by the session from here on.
func NewSession(candidates []Candidate, tracklist []string) *Session {
	return &Session{candidates: candidates, tracklist: tracklist}
}

// Phase returns the session's current input phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Candidates returns the current candidate set. Callers must not modify it.
func (s *Session) Candidates() []Candidate {
	return s.candidates
}

// Tracklist returns the tracklist the session offers titles from.
func (s *Session) Tracklist() []string {
	return s.tracklist
}

// Selected returns the index of the candidate being edited. Only meaningful
// in PhaseChoosing.
func (s *Session) Selected() int {
	return s.selected
}

// Input feeds one operator input line to the session and returns what it did.
func (s *Session) Input(line string) Step {
	line = strings.TrimSpace(line)

	switch s.phase {
	case PhaseSelecting:
		return s.inputSelecting(line)
	default:
		return s.inputChoosing(line)
	}
}

func (s *Session) inputSelecting(line string) Step {
	if line == "" {
		return Step{Outcome: OutcomeCommitted}
	}
	if isQuit(line) {
		return Step{Outcome: OutcomeAborted}
	}

	choice, err := strconv.Atoi(line)
	if err != nil {
		return Step{Event: EventNone}
	}
	if choice < 1 || choice > len(s.candidates) {
		return Step{Event: EventOutOfRange}
	}

	s.selected = choice - 1
	s.phase = PhaseChoosing
	return Step{Event: EventSelected, Index: s.selected}
}

func (s *Session) inputChoosing(line string) Step {
	if line == "" {
		s.phase = PhaseSelecting
		return Step{Event: EventCancelled, Index: s.selected}
	}
	if isQuit(line) {
		return Step{Outcome: OutcomeAborted}
	}

	choice, err := strconv.Atoi(line)
	if err != nil {
		return Step{Event: EventNone}
	}
	if choice < 0 || choice > len(s.tracklist) {
		return Step{Event: EventOutOfRange}
	}

	c := &s.candidates[s.selected]
	if choice == 0 {
		c.Title = ""
	} else {
		c.Title = s.tracklist[choice-1]
	}
	c.Match = match.ManualMatch()

	s.phase = PhaseSelecting
	return Step{Event: EventEdited, Index: s.selected}
}

func isQuit(line string) bool {
	return strings.EqualFold(line, "q")
}
