package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	drl "github.com/mverbeek/verbuig/internal/drill"
	"github.com/mverbeek/verbuig/internal/router"
	"github.com/mverbeek/verbuig/internal/screen"
	"github.com/mverbeek/verbuig/internal/ui/components"
	"github.com/mverbeek/verbuig/internal/ui/layout"
	"github.com/mverbeek/verbuig/internal/ui/theme"
)

// SummaryScreen displays the end-of-round score breakdown.
type SummaryScreen struct {
	summary *drl.Summary
	restart func() screen.Screen
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen. The restart callback builds a fresh
// round with the same settings.
func New(summary *drl.Summary, restart func() screen.Screen) *SummaryScreen {
	return &SummaryScreen{summary: summary, restart: restart}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Resultaat"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Play again"},
		{Key: "Esc", Description: "Home"},
		{Key: "Q", Description: "Quit"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "enter":
		if s.restart != nil {
			next := s.restart()
			return s, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: next}
			}
		}
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "q", "Q":
		return s, tea.Quit
	}

	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Ronde klaar!"))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Duur: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Vragen: %d        Goed: %d        Score: %.0f%%",
		sum.Asked, sum.Correct, sum.Accuracy*100)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	barWidth := min(width-20, 50)
	bar := components.NewProgressBar("", sum.Accuracy, false, barWidth)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Per tijd")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, tr := range sum.Results {
		if tr.Attempted == 0 {
			continue
		}

		pct := 0.0
		if tr.Attempted > 0 {
			pct = float64(tr.Correct) / float64(tr.Attempted)
		}

		line := fmt.Sprintf("  %-8s %-28s %d/%d goed   %.0f%%",
			tr.Tense.Code(), tr.Tense.Label(), tr.Correct, tr.Attempted, pct*100)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if tr.Correct == tr.Attempted {
			style = style.Foreground(theme.Success)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Enter: nog een ronde   Esc: terug   Q: afsluiten"))

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
