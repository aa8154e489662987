package drill

import (
	"math/rand"
	"testing"

	"github.com/mverbeek/verbuig/internal/lexicon"
)

func TestStateRunToCompletion(t *testing.T) {
	tenses := []lexicon.Tense{lexicon.Present, lexicon.PresentPerfect}
	state := NewState(tenses, 5, rand.New(rand.NewSource(3)))

	if state.RunID == "" {
		t.Error("empty run id")
	}

	for i := 0; i < 5; i++ {
		q, err := state.NextQuestion()
		if err != nil {
			t.Fatal(err)
		}
		if q == nil {
			t.Fatalf("round %d: no question before count reached", i)
		}
		// answer with the first acceptable form
		if !state.HandleAnswer(q.Display[0]) {
			t.Fatalf("round %d: correct answer %q graded wrong", i, q.Display[0])
		}
		state.Phase = PhaseActive
	}

	q, err := state.NextQuestion()
	if err != nil {
		t.Fatal(err)
	}
	if q != nil {
		t.Error("question served past requested count")
	}
	if state.Phase != PhaseDone {
		t.Errorf("phase = %d, want PhaseDone", state.Phase)
	}

	if state.Asked != 5 || state.Correct != 5 {
		t.Errorf("tally %d/%d, want 5/5", state.Correct, state.Asked)
	}
}

func TestStateTallyMixedAnswers(t *testing.T) {
	state := NewState([]lexicon.Tense{lexicon.SimplePast}, 4, rand.New(rand.NewSource(11)))

	answers := []bool{true, false, true, false}
	for _, answerRight := range answers {
		q, err := state.NextQuestion()
		if err != nil || q == nil {
			t.Fatal(err)
		}
		input := "zeker niet goed"
		if answerRight {
			input = q.Display[0]
		}
		got := state.HandleAnswer(input)
		if got != answerRight {
			t.Errorf("HandleAnswer(%q) = %v, want %v", input, got, answerRight)
		}
		state.Phase = PhaseActive
	}

	if state.Asked != 4 || state.Correct != 2 {
		t.Errorf("tally %d/%d, want 2/4", state.Correct, state.Asked)
	}

	tr := state.PerTense[lexicon.SimplePast]
	if tr == nil || tr.Attempted != 4 || tr.Correct != 2 {
		t.Errorf("per-tense result %+v, want 2/4", tr)
	}
}

func TestBuildSummary(t *testing.T) {
	tenses := []lexicon.Tense{lexicon.Present, lexicon.PastPerfect}
	state := NewState(tenses, 3, rand.New(rand.NewSource(5)))

	for i := 0; i < 3; i++ {
		q, err := state.NextQuestion()
		if err != nil || q == nil {
			t.Fatal(err)
		}
		state.HandleAnswer(q.Display[0])
		state.Phase = PhaseActive
	}

	sum := BuildSummary(state)
	if sum.Asked != 3 || sum.Correct != 3 {
		t.Errorf("summary %d/%d, want 3/3", sum.Correct, sum.Asked)
	}
	if sum.Accuracy != 1.0 {
		t.Errorf("accuracy %f, want 1.0", sum.Accuracy)
	}

	total := 0
	for _, r := range sum.Results {
		if r.Attempted == 0 {
			t.Errorf("summary includes unserved tense %s", r.Tense.Code())
		}
		total += r.Attempted
	}
	if total != 3 {
		t.Errorf("per-tense attempts sum to %d, want 3", total)
	}
}

func TestBuildSummaryEmptyRun(t *testing.T) {
	state := NewState([]lexicon.Tense{lexicon.Present}, 0, rand.New(rand.NewSource(1)))
	sum := BuildSummary(state)
	if sum.Accuracy != 0 || sum.Asked != 0 || len(sum.Results) != 0 {
		t.Errorf("empty run summary: %+v", sum)
	}
}
