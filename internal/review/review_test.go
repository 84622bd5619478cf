package review

import (
	"testing"

	"github.com/chrysplusplus/albumtag/internal/match"
)

var testTracklist = []string{"Prologue", "Kettering", "Sylvia"}

func testCandidates() []Candidate {
	return []Candidate{
		{Path: "01 prologue.mp3", Match: match.Match{Kind: match.Automatic, Length: 8}, Title: "Prologue"},
		{Path: "02 kettering.mp3", Match: match.Match{Kind: match.Automatic, Length: 9}, Title: "Kettering"},
		{Path: "something else.mp3"},
	}
}

func TestSession_CommitOnEmptyInput(t *testing.T) {
	s := NewSession(testCandidates(), testTracklist)

	step := s.Input("")
	if step.Outcome != OutcomeCommitted {
		t.Errorf("Outcome = %v, want OutcomeCommitted", step.Outcome)
	}
}

func TestSession_QuitAborts(t *testing.T) {
	for _, input := range []string{"q", "Q", " q "} {
		t.Run(input, func(t *testing.T) {
			s := NewSession(testCandidates(), testTracklist)
			if step := s.Input(input); step.Outcome != OutcomeAborted {
				t.Errorf("Input(%q).Outcome = %v, want OutcomeAborted", input, step.Outcome)
			}
		})
	}
}

func TestSession_QuitAbortsDuringTitleChoice(t *testing.T) {
	s := NewSession(testCandidates(), testTracklist)
	s.Input("1")

	if step := s.Input("q"); step.Outcome != OutcomeAborted {
		t.Errorf("Outcome = %v, want OutcomeAborted", step.Outcome)
	}
}

func TestSession_SelectThenChoose(t *testing.T) {
	s := NewSession(testCandidates(), testTracklist)

	step := s.Input("3")
	if step.Event != EventSelected || step.Index != 2 {
		t.Fatalf("Step = %+v, want EventSelected for index 2", step)
	}
	if s.Phase() != PhaseChoosing {
		t.Fatalf("Phase = %v, want PhaseChoosing", s.Phase())
	}

	step = s.Input("3")
	if step.Event != EventEdited || step.Index != 2 {
		t.Fatalf("Step = %+v, want EventEdited for index 2", step)
	}
	if s.Phase() != PhaseSelecting {
		t.Errorf("Phase = %v, want PhaseSelecting after an edit", s.Phase())
	}

	c := s.Candidates()[2]
	if c.Title != "Sylvia" {
		t.Errorf("Title = %q, want %q", c.Title, "Sylvia")
	}
	if c.Match.Kind != match.Manual {
		t.Errorf("Match.Kind = %v, want Manual after an operator edit", c.Match.Kind)
	}
}

func TestSession_ZeroUnsetsTitle(t *testing.T) {
	s := NewSession(testCandidates(), testTracklist)
	s.Input("1")

	step := s.Input("0")
	if step.Event != EventEdited {
		t.Fatalf("Event = %v, want EventEdited", step.Event)
	}

	c := s.Candidates()[0]
	if c.Matched() {
		t.Error("candidate should be unmatched after choosing 0")
	}
	if c.Match.Kind != match.Manual {
		t.Errorf("Match.Kind = %v, want Manual", c.Match.Kind)
	}
}

func TestSession_CancelLeavesCandidateUntouched(t *testing.T) {
	s := NewSession(testCandidates(), testTracklist)
	s.Input("2")

	step := s.Input("")
	if step.Event != EventCancelled {
		t.Fatalf("Event = %v, want EventCancelled", step.Event)
	}
	if step.Outcome != OutcomeContinue {
		t.Fatalf("Outcome = %v, want OutcomeContinue; cancel must not finish the review", step.Outcome)
	}
	if s.Phase() != PhaseSelecting {
		t.Errorf("Phase = %v, want PhaseSelecting", s.Phase())
	}

	c := s.Candidates()[1]
	if c.Title != "Kettering" || c.Match.Kind != match.Automatic {
		t.Errorf("candidate %+v was modified by a cancelled edit", c)
	}
}

func TestSession_OutOfRangeInputs(t *testing.T) {
	s := NewSession(testCandidates(), testTracklist)

	for _, input := range []string{"0", "4", "-1"} {
		if step := s.Input(input); step.Event != EventOutOfRange {
			t.Errorf("selecting: Input(%q).Event = %v, want EventOutOfRange", input, step.Event)
		}
	}

	s.Input("1")
	for _, input := range []string{"-1", "4"} {
		if step := s.Input(input); step.Event != EventOutOfRange {
			t.Errorf("choosing: Input(%q).Event = %v, want EventOutOfRange", input, step.Event)
		}
	}
	if s.Phase() != PhaseChoosing {
		t.Errorf("Phase = %v, out-of-range input should not leave PhaseChoosing", s.Phase())
	}
}

func TestSession_NonIntegerInputIsSilentlyIgnored(t *testing.T) {
	s := NewSession(testCandidates(), testTracklist)

	for _, input := range []string{"abc", "1.5", "one"} {
		if step := s.Input(input); step.Event != EventNone || step.Outcome != OutcomeContinue {
			t.Errorf("Input(%q) = %+v, want silent re-prompt", input, step)
		}
	}
}

func TestCandidate_Matched(t *testing.T) {
	if (Candidate{Title: "X"}).Matched() != true {
		t.Error("candidate with a title should be matched")
	}
	if (Candidate{Path: "a.mp3"}).Matched() != false {
		t.Error("candidate without a title should be unmatched")
	}
}
