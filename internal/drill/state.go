package drill

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/mverbeek/verbuig/internal/lexicon"
)

// Phase represents the current phase of a drill run.
type Phase int

const (
	PhaseActive   Phase = iota // serving questions
	PhaseFeedback              // showing answer feedback
	PhaseDone                  // all questions served
)

// TenseResult tracks per-tense performance within a single run.
type TenseResult struct {
	Tense     lexicon.Tense
	Attempted int
	Correct   int
}

// State tracks the runtime state of an active drill run. It lives for one
// run only; nothing is persisted across sessions.
type State struct {
	// RunID is the UUID for this run.
	RunID string

	// Tenses is the learner's tense selection, in menu order.
	Tenses []lexicon.Tense

	// Total is the requested number of questions.
	Total int

	// Asked and Correct count served questions and right answers.
	Asked   int
	Correct int

	// PerTense tracks results keyed by tense for the summary screen.
	PerTense map[lexicon.Tense]*TenseResult

	// Current is the active question (nil between rounds).
	Current *Question

	// LastCorrect records whether the most recent answer was right.
	LastCorrect bool

	// LastAnswer is the learner's raw input for the feedback view.
	LastAnswer string

	Phase     Phase
	StartTime time.Time
	Elapsed   time.Duration

	rng *rand.Rand
}

// NewState creates run state for the given tense selection and question
// count. The rand source is injected so tests can fix the sequence of
// template and verb choices.
func NewState(tenses []lexicon.Tense, total int, rng *rand.Rand) *State {
	perTense := make(map[lexicon.Tense]*TenseResult, len(tenses))
	for _, t := range tenses {
		perTense[t] = &TenseResult{Tense: t}
	}
	return &State{
		RunID:     uuid.New().String(),
		Tenses:    tenses,
		Total:     total,
		PerTense:  perTense,
		Phase:     PhaseActive,
		StartTime: time.Now(),
		rng:       rng,
	}
}

// NextQuestion picks a tense uniformly from the selection and builds the
// next question. Returns nil, nil when the requested count is reached.
func (s *State) NextQuestion() (*Question, error) {
	if s.Asked >= s.Total {
		s.Phase = PhaseDone
		return nil, nil
	}
	tense := s.Tenses[s.rng.Intn(len(s.Tenses))]
	q, err := Pick(tense, s.rng)
	if err != nil {
		return nil, err
	}
	s.Current = q
	return q, nil
}

// HandleAnswer grades the learner's raw answer against the current
// question and updates the tally. Returns the grade.
func (s *State) HandleAnswer(raw string) bool {
	q := s.Current
	if q == nil {
		return false
	}

	correct := Grade(q, raw)
	s.LastCorrect = correct
	s.LastAnswer = raw
	s.Asked++
	if correct {
		s.Correct++
	}

	tr := s.PerTense[q.Tense]
	if tr == nil {
		tr = &TenseResult{Tense: q.Tense}
		s.PerTense[q.Tense] = tr
	}
	tr.Attempted++
	if correct {
		tr.Correct++
	}

	s.Phase = PhaseFeedback
	return correct
}

// Summary holds the data displayed on the summary screen.
type Summary struct {
	Duration time.Duration
	Asked    int
	Correct  int
	Accuracy float64
	Results  []TenseResult
}

// BuildSummary creates a Summary from the run state. Results follow the
// learner's tense selection order; tenses never served are skipped.
func BuildSummary(s *State) *Summary {
	var results []TenseResult
	for _, t := range s.Tenses {
		if tr := s.PerTense[t]; tr != nil && tr.Attempted > 0 {
			results = append(results, *tr)
		}
	}

	var accuracy float64
	if s.Asked > 0 {
		accuracy = float64(s.Correct) / float64(s.Asked)
	}

	return &Summary{
		Duration: s.Elapsed,
		Asked:    s.Asked,
		Correct:  s.Correct,
		Accuracy: accuracy,
		Results:  results,
	}
}
