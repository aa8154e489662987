package drill

import (
	"math/rand"
	"time"

	tea "charm.land/bubbletea/v2"

	drl "github.com/mverbeek/verbuig/internal/drill"
	"github.com/mverbeek/verbuig/internal/lexicon"
	"github.com/mverbeek/verbuig/internal/router"
	"github.com/mverbeek/verbuig/internal/screen"
	"github.com/mverbeek/verbuig/internal/screens/summary"
	"github.com/mverbeek/verbuig/internal/ui/components"
	"github.com/mverbeek/verbuig/internal/ui/layout"
)

// DrillScreen implements screen.Screen for an active practice round.
type DrillScreen struct {
	state       *drl.State
	tenses      []lexicon.Tense
	count       int
	rng         *rand.Rand
	input       components.TextInput
	quitConfirm bool
	errMsg      string
}

var _ screen.Screen = (*DrillScreen)(nil)
var _ screen.KeyHintProvider = (*DrillScreen)(nil)

// New creates a DrillScreen for a fresh round.
func New(tenses []lexicon.Tense, count int, rng *rand.Rand) *DrillScreen {
	return &DrillScreen{
		state:  drl.NewState(tenses, count, rng),
		tenses: tenses,
		count:  count,
		rng:    rng,
		input:  components.NewTextInput("Typ de werkwoordsvorm...", false, 40),
	}
}

func (s *DrillScreen) Init() tea.Cmd {
	return tea.Batch(
		s.nextQuestion(),
		s.input.Init(),
		tickCmd(),
	)
}

func (s *DrillScreen) Title() string {
	return "Oefenen"
}

func (s *DrillScreen) KeyHints() []layout.KeyHint {
	if s.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Stop round"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.state.Phase == drl.PhaseFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Stop"},
	}
}

func (s *DrillScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.quitConfirm {
		return renderQuitConfirm(width)
	}
	if s.state.Phase == drl.PhaseFeedback {
		return s.renderFeedback(width)
	}
	return s.renderQuestionView(width)
}

func (s *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionReadyMsg:
		return s.handleQuestionReady(msg)

	case timerTickMsg:
		return s.handleTimerTick()

	case feedbackDoneMsg:
		return s.handleFeedbackDone()

	case roundEndMsg:
		return s.handleRoundEnd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.state.Phase == drl.PhaseActive && !s.quitConfirm {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// nextQuestion picks the next question from the pool.
func (s *DrillScreen) nextQuestion() tea.Cmd {
	return func() tea.Msg {
		q, err := s.state.NextQuestion()
		if err != nil {
			return questionReadyMsg{Err: err}
		}
		if q == nil {
			return roundEndMsg{}
		}
		return questionReadyMsg{Question: q}
	}
}

func (s *DrillScreen) handleQuestionReady(msg questionReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.input = components.NewTextInput("Typ de werkwoordsvorm...", false, 40)
	return s, s.input.Init()
}

func (s *DrillScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if s.state.Phase == drl.PhaseDone {
		return s, nil
	}
	s.state.Elapsed = time.Since(s.state.StartTime)
	return s, tickCmd()
}

func (s *DrillScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	s.state.Phase = drl.PhaseActive
	return s, s.nextQuestion()
}

func (s *DrillScreen) handleRoundEnd() (screen.Screen, tea.Cmd) {
	s.state.Elapsed = time.Since(s.state.StartTime)
	sum := drl.BuildSummary(s.state)
	tenses := s.tenses
	count := s.count
	rng := s.rng
	restart := func() screen.Screen {
		return New(tenses, count, rng)
	}

	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: summary.New(sum, restart),
		}
	}
}

func (s *DrillScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			s.quitConfirm = false
			return s, func() tea.Msg { return roundEndMsg{} }
		case "n", "N", "esc":
			s.quitConfirm = false
			return s, nil
		}
		return s, nil
	}

	if s.state.Phase == drl.PhaseFeedback {
		return s, func() tea.Msg { return feedbackDoneMsg{} }
	}

	if s.state.Phase == drl.PhaseActive {
		switch key {
		case "esc":
			s.quitConfirm = true
			return s, nil
		case "enter":
			return s.submitAnswer()
		}

		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// submitAnswer grades the current answer and shows feedback.
func (s *DrillScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	if s.state.Current == nil {
		return s, nil
	}

	raw := s.input.Value()
	if drl.Normalize(raw) == "" {
		return s, nil
	}

	correct := s.state.HandleAnswer(raw)
	s.input.Submit(correct)

	return s, nil
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
