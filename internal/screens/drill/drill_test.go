package drill

import (
	"math/rand"
	"testing"

	tea "charm.land/bubbletea/v2"

	drl "github.com/mverbeek/verbuig/internal/drill"
	"github.com/mverbeek/verbuig/internal/lexicon"
	"github.com/mverbeek/verbuig/internal/router"
	"github.com/mverbeek/verbuig/internal/screens/summary"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func newTestScreen(t *testing.T, count int) *DrillScreen {
	t.Helper()
	rng := rand.New(rand.NewSource(42))
	s := New([]lexicon.Tense{lexicon.Present}, count, rng)

	// Drive the first question in, as Init would.
	msg := s.nextQuestion()()
	updated, _ := s.Update(msg)
	return updated.(*DrillScreen)
}

func TestDrillScreen_FirstQuestion(t *testing.T) {
	s := newTestScreen(t, 5)
	if s.state.Current == nil {
		t.Fatal("expected a question after init")
	}
	if s.state.Current.Tense != lexicon.Present {
		t.Errorf("question tense = %v, want Present", s.state.Current.Tense)
	}
	if view := s.View(80, 24); view == "" {
		t.Error("expected non-empty question view")
	}
}

func TestDrillScreen_SubmitEmptyIsIgnored(t *testing.T) {
	s := newTestScreen(t, 5)
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if s.state.Phase != drl.PhaseActive {
		t.Errorf("phase = %v after empty submit, want PhaseActive", s.state.Phase)
	}
	if s.state.Asked != 0 {
		t.Errorf("Asked = %d after empty submit, want 0", s.state.Asked)
	}
}

func TestDrillScreen_SubmitCorrectAnswer(t *testing.T) {
	s := newTestScreen(t, 5)
	s.input.Model.SetValue(s.state.Current.Expected[0])

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if s.state.Phase != drl.PhaseFeedback {
		t.Fatalf("phase = %v after submit, want PhaseFeedback", s.state.Phase)
	}
	if !s.state.LastCorrect {
		t.Error("expected correct grade for an expected answer")
	}
	if view := s.View(80, 24); view == "" {
		t.Error("expected non-empty feedback view")
	}
}

func TestDrillScreen_FeedbackDismissAdvances(t *testing.T) {
	s := newTestScreen(t, 5)
	s.input.Model.SetValue("zeker fout")
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	_, cmd := s.Update(keyPress('x'))
	if cmd == nil {
		t.Fatal("expected a command dismissing feedback")
	}
	if _, ok := cmd().(feedbackDoneMsg); !ok {
		t.Error("expected feedbackDoneMsg on key press during feedback")
	}
}

func TestDrillScreen_QuitConfirm(t *testing.T) {
	s := newTestScreen(t, 5)

	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if !s.quitConfirm {
		t.Fatal("expected quit confirm after Esc")
	}

	s.Update(keyPress('n'))
	if s.quitConfirm {
		t.Error("expected quit confirm dismissed after N")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command ending the round on Y")
	}
	if _, ok := cmd().(roundEndMsg); !ok {
		t.Error("expected roundEndMsg on Y")
	}
}

func TestDrillScreen_RoundEndReplacesWithSummary(t *testing.T) {
	s := newTestScreen(t, 1)
	s.input.Model.SetValue(s.state.Current.Expected[0])
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	_, cmd := s.Update(roundEndMsg{})
	if cmd == nil {
		t.Fatal("expected a command on round end")
	}

	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*summary.SummaryScreen); !ok {
		t.Errorf("expected summary screen, got %T", msg.Screen)
	}
}

func TestDrillScreen_CompletedRoundSignalsEnd(t *testing.T) {
	s := newTestScreen(t, 1)
	s.input.Model.SetValue(s.state.Current.Expected[0])
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	// Dismissing feedback after the last question must end the round.
	_, cmd := s.Update(feedbackDoneMsg{})
	if cmd == nil {
		t.Fatal("expected a command after last feedback")
	}
	if _, ok := cmd().(roundEndMsg); !ok {
		t.Errorf("expected roundEndMsg after final question, got %T", cmd())
	}
}
