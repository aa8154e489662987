package verbs

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mverbeek/verbuig/internal/lexicon"
	"github.com/mverbeek/verbuig/internal/router"
	"github.com/mverbeek/verbuig/internal/screen"
	"github.com/mverbeek/verbuig/internal/ui/layout"
	"github.com/mverbeek/verbuig/internal/ui/theme"
)

// VerbsScreen is a scrollable reference list of all verbs.
type VerbsScreen struct {
	verbs  []lexicon.Verb
	offset int
}

var _ screen.Screen = (*VerbsScreen)(nil)
var _ screen.KeyHintProvider = (*VerbsScreen)(nil)

// New creates a VerbsScreen listing the whole lexicon.
func New() *VerbsScreen {
	return &VerbsScreen{
		verbs: lexicon.AllVerbs(),
	}
}

func (v *VerbsScreen) Init() tea.Cmd {
	return nil
}

func (v *VerbsScreen) Title() string {
	return "Werkwoorden"
}

func (v *VerbsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "PgUp/PgDn", Description: "Page"},
		{Key: "Esc", Description: "Back"},
	}
}

func (v *VerbsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if v.offset > 0 {
			v.offset--
		}
	case "down", "j":
		if v.offset < len(v.verbs)-1 {
			v.offset++
		}
	case "pgup":
		v.offset -= 10
		if v.offset < 0 {
			v.offset = 0
		}
	case "pgdown":
		v.offset += 10
		if v.offset > len(v.verbs)-1 {
			v.offset = len(v.verbs) - 1
		}
	case "esc", "q":
		return v, func() tea.Msg { return router.PopScreenMsg{} }
	}

	return v, nil
}

func (v *VerbsScreen) View(width, height int) string {
	var b strings.Builder

	header := fmt.Sprintf("  %-14s %-16s %-12s %-14s %-14s %s",
		"infinitief", "betekenis", "soort", "o.t.t. (ik)", "o.v.t. (ik)", "perfectum")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(header))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n")

	// Rows visible in the remaining content area.
	visible := height - 3
	if visible < 1 {
		visible = 1
	}

	end := v.offset + visible
	if end > len(v.verbs) {
		end = len(v.verbs)
	}

	for _, verb := range v.verbs[v.offset:end] {
		present, _ := verb.FiniteForm(lexicon.Present, lexicon.Ik)
		past, _ := verb.FiniteForm(lexicon.SimplePast, lexicon.Ik)

		var auxParts []string
		for _, aux := range verb.Auxiliaries {
			form, _ := lexicon.AuxForm(aux, lexicon.Present, lexicon.Hij)
			auxParts = append(auxParts, form)
		}
		perfect := strings.Join(auxParts, "/") + " " + verb.PastParticiple

		line := fmt.Sprintf("  %-14s %-16s %-12s %-14s %-14s %s",
			verb.Infinitive, verb.Gloss, string(verb.Kind), present, past, perfect)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if len(verb.Auxiliaries) > 1 {
			style = style.Foreground(theme.Accent)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %d–%d van %d werkwoorden", v.offset+1, end, len(v.verbs))))

	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
