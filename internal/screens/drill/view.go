package drill

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mverbeek/verbuig/internal/lexicon"
	"github.com/mverbeek/verbuig/internal/ui/theme"
)

// renderQuestionView renders the active question display.
func (s *DrillScreen) renderQuestionView(width int) string {
	q := s.state.Current
	if q == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Nieuwe vraag...")
	}

	var b strings.Builder

	// Progress line.
	mins := int(s.state.Elapsed.Minutes())
	secs := int(s.state.Elapsed.Seconds()) % 60
	timerStr := fmt.Sprintf("%d:%02d", mins, secs)

	infoLeft := theme.TenseBadge.Render(q.Tense.Code()) +
		lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Render(" "+q.Tense.Label())

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Vraag %d/%d  %s %d  %s",
			s.state.Asked+1,
			s.state.Total,
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			s.state.Correct,
			timerStr,
		))

	infoLine := "  " + infoLeft
	rightPad := width - lipgloss.Width(infoLine) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Sentence with the blank.
	sentenceStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(sentenceStyle.Render(q.Text))
	b.WriteString("\n\n")

	// Verb under drill.
	verbLine := fmt.Sprintf("werkwoord: %s   onderwerp: %s",
		q.Infinitive, lexicon.PronounLabel(q.Pronoun))
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Render(verbLine))
	b.WriteString("\n")

	if q.Hint != "" {
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render(q.Hint))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	answerLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Antwoord: " + s.input.View())
	b.WriteString(answerLine)

	return b.String()
}

// renderFeedback renders the feedback overlay after an answer.
func (s *DrillScreen) renderFeedback(width int) string {
	q := s.state.Current

	var b strings.Builder
	b.WriteString("\n\n")

	if s.state.LastCorrect {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Goed!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Helaas"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Jouw antwoord: %s", s.state.LastAnswer)))
	}

	if q != nil {
		b.WriteString("\n\n")

		label := "Goede antwoord"
		if len(q.Display) > 1 {
			label = "Goede antwoorden"
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(fmt.Sprintf("%s: %s", label, strings.Join(q.Display, " / "))))

		if q.Tense.IsPerfect() && len(q.Display) > 1 {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Accent).
				Render("Dit werkwoord kan met hebben én zijn."))
		}

		if q.Explanation != "" {
			b.WriteString("\n\n")
			expStyle := lipgloss.NewStyle().
				Width(min(width-8, 70)).
				Foreground(theme.Text)
			exp := expStyle.Render(q.Explanation)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Druk op een toets om door te gaan..."))

	return b.String()
}

// renderQuitConfirm renders the stop-round confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Ronde afbreken?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Je ziet dan meteen je score tot nu toe."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Ja, stop de ronde"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] Nee, ga door"))

	return b.String()
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Fout: %s\n\n  Druk op een toets om terug te gaan.", errMsg))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
