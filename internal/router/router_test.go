package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/mverbeek/verbuig/internal/screen"
)

// stubScreen is a minimal screen.Screen for router tests.
type stubScreen struct {
	name   string
	inited bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.inited = true
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *stubScreen) View(width, height int) string { return s.name }
func (s *stubScreen) Title() string                 { return s.name }

func TestRouter_PushPop(t *testing.T) {
	root := &stubScreen{name: "root"}
	r := New(root)

	if r.Depth() != 1 {
		t.Fatalf("Depth = %d, want 1", r.Depth())
	}

	second := &stubScreen{name: "second"}
	r.Push(second)

	if r.Depth() != 2 {
		t.Errorf("Depth = %d after push, want 2", r.Depth())
	}
	if !second.inited {
		t.Error("expected Init on pushed screen")
	}
	if r.Active() != second {
		t.Error("expected pushed screen to be active")
	}

	r.Pop()
	if r.Active() != root {
		t.Error("expected root active after pop")
	}
}

func TestRouter_PopKeepsRoot(t *testing.T) {
	root := &stubScreen{name: "root"}
	r := New(root)

	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("Depth = %d after popping root, want 1", r.Depth())
	}
}

func TestRouter_Replace(t *testing.T) {
	root := &stubScreen{name: "root"}
	r := New(root)

	second := &stubScreen{name: "second"}
	r.Push(second)

	third := &stubScreen{name: "third"}
	r.Replace(third)

	if r.Depth() != 2 {
		t.Errorf("Depth = %d after replace, want 2", r.Depth())
	}
	if r.Active() != third {
		t.Error("expected replacement screen active")
	}
	if !third.inited {
		t.Error("expected Init on replacement screen")
	}

	r.Pop()
	if r.Active() != root {
		t.Error("expected root under the replaced screen")
	}
}

func TestRouter_NavigationMessages(t *testing.T) {
	root := &stubScreen{name: "root"}
	r := New(root)

	r.Update(PushScreenMsg{Screen: &stubScreen{name: "pushed"}})
	if r.Depth() != 2 {
		t.Errorf("Depth = %d after PushScreenMsg, want 2", r.Depth())
	}

	r.Update(ReplaceScreenMsg{Screen: &stubScreen{name: "swapped"}})
	if r.Active().Title() != "swapped" {
		t.Errorf("active = %q after ReplaceScreenMsg, want swapped", r.Active().Title())
	}

	r.Update(PopScreenMsg{})
	if r.Active() != root {
		t.Error("expected root active after PopScreenMsg")
	}
}
