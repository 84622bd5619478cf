// Package console implements the line-oriented front end: prompts, match
// highlighting and the interactive review loop.
package console

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"path/filepath"
	"strings"

	"github.com/chrysplusplus/albumtag/internal/fileutil"
	"github.com/chrysplusplus/albumtag/internal/match"
	"github.com/chrysplusplus/albumtag/internal/review"
	"github.com/chrysplusplus/albumtag/internal/tagging"
)

// Prompts and messages of the review loop.
const (
	promptSelectChange  = "Enter number of any selection you want to change: (return finishes, 'q' quits) "
	promptSelectTrack   = "Select the new track number: (return cancels, 'q' quits) "
	messageOutOfRange   = "Selection is outside the available range"
	messageCancelled    = "Cancelled new track selection"
	messageRemoveChoice = "0 - <remove track title>"
)

// Console is a line-oriented prompt/response front end over a reader and a
// writer.
type Console struct {
	in      *bufio.Scanner
	out     io.Writer
	styles  Styles
	verbose bool
}

// New creates a Console. With color disabled, all styles render plain text.
func New(in io.Reader, out io.Writer, color bool) *Console {
	styles := PlainStyles()
	if color {
		styles = DefaultStyles()
	}
	return &Console{in: bufio.NewScanner(in), out: out, styles: styles}
}

// SetVerbose controls whether verbose progress events are printed.
func (c *Console) SetVerbose(verbose bool) {
	c.verbose = verbose
}

// Println writes a plain line.
func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

// Printf writes formatted plain text.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// ReadLine prompts and reads one input line. The second return value is
// false when input is exhausted.
func (c *Console) ReadLine(prompt string) (string, bool) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		fmt.Fprintln(c.out)
		return "", false
	}
	return c.in.Text(), true
}

// Progress renders a tagging progress event with its level's style. Verbose
// events are dropped unless verbose output is enabled.
func (c *Console) Progress(e tagging.Event) {
	if e.Level == tagging.LevelVerbose && !c.verbose {
		return
	}

	style := c.styles.Dim
	switch e.Level {
	case tagging.LevelInfo:
		style = c.styles.Info
	case tagging.LevelWarning:
		style = c.styles.Warning
	case tagging.LevelError:
		style = c.styles.Error
	case tagging.LevelSuccess:
		style = c.styles.Success
	}
	fmt.Fprintln(c.out, style.Render(e.Message))
}

// RenderCandidate formats one candidate for the review listing: the file
// name with its matched span highlighted and each mismatched character
// marked, the chosen title, or a note that the file stays unchanged.
func (c *Console) RenderCandidate(cand review.Candidate, tracklist []string) string {
	name := filepath.Base(cand.Path)

	switch {
	case cand.Match.Kind == match.Manual && cand.Matched():
		return c.styles.Matched.Render(fmt.Sprintf("%s -> %s", name, cand.Title))

	case cand.Matched():
		highlighted := c.renderHighlighted(name, cand.Match)
		return fmt.Sprintf("%s -> %s", highlighted, c.styles.Matched.Render(cand.Title))

	default:
		line := c.styles.Unmatched.Render(fmt.Sprintf("'%s' will remain unchanged", name))
		if closest, ok := match.Closest(fileutil.Stem(name), tracklist); ok {
			line += c.styles.Dim.Render(fmt.Sprintf(" (closest: %s)", closest))
		}
		return line
	}
}

// renderHighlighted styles the file name according to its match segments.
func (c *Console) renderHighlighted(name string, m match.Match) string {
	var b strings.Builder
	for _, seg := range match.Segments(name, m, match.Normalize(name)) {
		switch seg.Kind {
		case match.SegmentMatched:
			b.WriteString(c.styles.Matched.Render(seg.Text))
		case match.SegmentMismatched:
			b.WriteString(c.styles.Mismatched.Render(seg.Text))
		default:
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}

// listCandidates prints the numbered review listing.
func (c *Console) listCandidates(s *review.Session) {
	fmt.Fprintln(c.out)
	for i, cand := range s.Candidates() {
		fmt.Fprintf(c.out, "%d - %s\n", i+1, c.RenderCandidate(cand, s.Tracklist()))
	}
	fmt.Fprintln(c.out)
}

// listTracks prints the numbered title menu for a title choice.
func (c *Console) listTracks(tracklist []string) {
	fmt.Fprintln(c.out, messageRemoveChoice)
	for i, title := range tracklist {
		fmt.Fprintf(c.out, "%d - %s\n", i+1, title)
	}
	fmt.Fprintln(c.out)
}

// RunReview drives a review session until the operator commits or aborts.
// Exhausted input counts as an abort, keeping the no-write guarantee.
func (c *Console) RunReview(s *review.Session) review.Outcome {
	c.listCandidates(s)

	for {
		prompt := promptSelectChange
		if s.Phase() == review.PhaseChoosing {
			prompt = promptSelectTrack
		}

		line, ok := c.ReadLine(prompt)
		if !ok {
			return review.OutcomeAborted
		}

		step := s.Input(line)
		if step.Outcome != review.OutcomeContinue {
			return step.Outcome
		}

		switch step.Event {
		case review.EventSelected:
			fmt.Fprintln(c.out, c.RenderCandidate(s.Candidates()[step.Index], s.Tracklist()))
			c.listTracks(s.Tracklist())

		case review.EventEdited:
			fmt.Fprintln(c.out, c.RenderCandidate(s.Candidates()[step.Index], s.Tracklist()))
			c.listCandidates(s)

		case review.EventCancelled:
			fmt.Fprintln(c.out, messageCancelled)
			c.listCandidates(s)

		case review.EventOutOfRange:
			fmt.Fprintln(c.out, messageOutOfRange)
		}
	}
}

// farewells is the pool of goodbye lines printed after a completed run.
var farewells = []string{
	"See you next time!",
	"Hellothankyouforwatching! Hellothankyouforwatching!",
	"Good-bye!",
	"Thanks for using my script!",
	"Until next time!",
	"See you soon!",
}

// Farewell returns a randomly chosen goodbye line.
func Farewell() string {
	return farewells[rand.Intn(len(farewells))]
}
