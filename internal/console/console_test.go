package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/chrysplusplus/albumtag/internal/match"
	"github.com/chrysplusplus/albumtag/internal/review"
	"github.com/chrysplusplus/albumtag/internal/tagging"
)

var testTracklist = []string{"Prologue", "Kettering", "Sylvia"}

func newTestSession() *review.Session {
	title, m := match.SelectTitle("02 kettering", testTracklist)
	candidates := []review.Candidate{
		{Path: "/music/02 kettering.mp3", Match: m, Title: title},
		{Path: "/music/unknown take.mp3"},
	}
	return review.NewSession(candidates, testTracklist)
}

func runReview(t *testing.T, input string) (review.Outcome, string) {
	t.Helper()
	var out bytes.Buffer
	c := New(strings.NewReader(input), &out, false)
	outcome := c.RunReview(newTestSession())
	return outcome, out.String()
}

func TestRunReview_EmptyInputCommits(t *testing.T) {
	outcome, out := runReview(t, "\n")
	if outcome != review.OutcomeCommitted {
		t.Errorf("outcome = %v, want OutcomeCommitted", outcome)
	}
	if !strings.Contains(out, "02 kettering.mp3") || !strings.Contains(out, "Kettering") {
		t.Errorf("listing missing matched candidate, output:\n%s", out)
	}
	if !strings.Contains(out, "'unknown take.mp3' will remain unchanged") {
		t.Errorf("listing missing unmatched candidate, output:\n%s", out)
	}
}

func TestRunReview_QuitAborts(t *testing.T) {
	outcome, _ := runReview(t, "q\n")
	if outcome != review.OutcomeAborted {
		t.Errorf("outcome = %v, want OutcomeAborted", outcome)
	}
}

func TestRunReview_ExhaustedInputAborts(t *testing.T) {
	outcome, _ := runReview(t, "")
	if outcome != review.OutcomeAborted {
		t.Errorf("outcome = %v, want OutcomeAborted on EOF", outcome)
	}
}

func TestRunReview_EditFlow(t *testing.T) {
	// Select candidate 2, assign it title 3, then finish.
	outcome, out := runReview(t, "2\n3\n\n")
	if outcome != review.OutcomeCommitted {
		t.Fatalf("outcome = %v, want OutcomeCommitted", outcome)
	}
	if !strings.Contains(out, "0 - <remove track title>") {
		t.Errorf("title menu missing the remove choice, output:\n%s", out)
	}
	if !strings.Contains(out, "unknown take.mp3 -> Sylvia") {
		t.Errorf("edited candidate not re-rendered, output:\n%s", out)
	}
}

func TestRunReview_OutOfRangePrintsBoundsError(t *testing.T) {
	_, out := runReview(t, "9\n\n")
	if !strings.Contains(out, "Selection is outside the available range") {
		t.Errorf("missing bounds error, output:\n%s", out)
	}
}

func TestRunReview_NonIntegerIsSilent(t *testing.T) {
	_, out := runReview(t, "huh\n\n")
	if strings.Contains(out, "Selection is outside the available range") {
		t.Errorf("non-integer input should re-prompt silently, output:\n%s", out)
	}
}

func TestRunReview_CancelKeepsCandidate(t *testing.T) {
	// Select candidate 1, cancel, then finish.
	outcome, out := runReview(t, "1\n\n\n")
	if outcome != review.OutcomeCommitted {
		t.Fatalf("outcome = %v, want OutcomeCommitted", outcome)
	}
	if !strings.Contains(out, "Cancelled new track selection") {
		t.Errorf("missing cancel message, output:\n%s", out)
	}
}

func TestRenderCandidate_UnmatchedShowsClosestHint(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out, false)

	line := c.RenderCandidate(review.Candidate{Path: "/music/ketterring.mp3"}, testTracklist)
	if !strings.Contains(line, "closest: Kettering") {
		t.Errorf("RenderCandidate() = %q, want a closest-title hint", line)
	}
}

func TestRenderCandidate_RoundTripsFileName(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out, false)

	title, m := match.SelectTitle("03 - lost at se4", []string{"Lost at Sea"})
	line := c.RenderCandidate(review.Candidate{Path: "03 - lost at se4.mp3", Match: m, Title: title}, []string{"Lost at Sea"})

	// Plain styles insert no markers, so the rendered line contains the
	// file name verbatim.
	if !strings.Contains(line, "03 - lost at se4.mp3") {
		t.Errorf("RenderCandidate() = %q, want the original file name intact", line)
	}
}

func TestProgress_VerboseFiltering(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out, false)

	c.Progress(tagging.Event{Message: "quiet detail", Level: tagging.LevelVerbose})
	if out.Len() != 0 {
		t.Errorf("verbose event printed without verbose mode: %q", out.String())
	}

	c.SetVerbose(true)
	c.Progress(tagging.Event{Message: "quiet detail", Level: tagging.LevelVerbose})
	if !strings.Contains(out.String(), "quiet detail") {
		t.Error("verbose event not printed in verbose mode")
	}
}

func TestFarewell(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		seen[Farewell()] = true
	}
	if len(seen) < 2 {
		t.Error("Farewell() should vary across calls")
	}
}
