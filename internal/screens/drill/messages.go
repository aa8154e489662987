package drill

import (
	"time"

	drl "github.com/mverbeek/verbuig/internal/drill"
)

// questionReadyMsg is sent when the next question has been picked.
type questionReadyMsg struct {
	Question *drl.Question
	Err      error
}

// timerTickMsg is sent every second to refresh the elapsed-time display.
type timerTickMsg time.Time

// feedbackDoneMsg is sent when the learner dismisses the feedback overlay.
type feedbackDoneMsg struct{}

// roundEndMsg is sent to trigger the end-of-round flow.
type roundEndMsg struct{}
