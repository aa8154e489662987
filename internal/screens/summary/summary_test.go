package summary

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	drl "github.com/mverbeek/verbuig/internal/drill"
	"github.com/mverbeek/verbuig/internal/lexicon"
	"github.com/mverbeek/verbuig/internal/screen"
)

func testSummary() *drl.Summary {
	return &drl.Summary{
		Duration: 4 * time.Minute,
		Asked:    10,
		Correct:  7,
		Accuracy: 0.7,
		Results: []drl.TenseResult{
			{Tense: lexicon.Present, Attempted: 6, Correct: 5},
			{Tense: lexicon.PresentPerfect, Attempted: 4, Correct: 2},
		},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary(), nil)
	if s.Title() != "Resultaat" {
		t.Errorf("Title = %q, want %q", s.Title(), "Resultaat")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary(), nil)
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty summary view")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testSummary(), nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_Restart(t *testing.T) {
	called := false
	restart := func() screen.Screen {
		called = true
		return New(testSummary(), nil)
	}

	s := New(testSummary(), restart)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter (replace)")
	}
	cmd()
	if !called {
		t.Error("expected restart callback to run on Enter")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary(), nil)
	hints := s.KeyHints()
	if len(hints) != 3 {
		t.Errorf("KeyHints length = %d, want 3", len(hints))
	}
}
