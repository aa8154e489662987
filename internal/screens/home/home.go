package home

import (
	"fmt"
	"math/rand"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mverbeek/verbuig/internal/lexicon"
	"github.com/mverbeek/verbuig/internal/router"
	"github.com/mverbeek/verbuig/internal/screen"
	drillscreen "github.com/mverbeek/verbuig/internal/screens/drill"
	"github.com/mverbeek/verbuig/internal/screens/verbs"
	"github.com/mverbeek/verbuig/internal/ui/components"
	"github.com/mverbeek/verbuig/internal/ui/layout"
	"github.com/mverbeek/verbuig/internal/ui/theme"
)

// focus zones on the home screen, cycled with tab.
const (
	focusTenses = iota
	focusCount
	focusMenu
)

var countChoices = []int{5, 10, 15, 20, 25}

// HomeScreen is the main entry screen: pick tenses, pick a round
// length, start practising.
type HomeScreen struct {
	checklist  components.Checklist
	menu       components.Menu
	countIndex int
	focus      int
	rng        *rand.Rand
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen with the given initial selection.
func New(tenses []lexicon.Tense, count int, rng *rand.Rand) *HomeScreen {
	preselected := make(map[lexicon.Tense]bool, len(tenses))
	for _, t := range tenses {
		preselected[t] = true
	}

	var items []components.ChecklistItem
	for _, t := range lexicon.AllTenses() {
		items = append(items, components.ChecklistItem{
			Label:   fmt.Sprintf("%-8s %s", t.Code(), t.Label()),
			Detail:  t.Example(),
			Checked: preselected[t],
		})
	}

	countIndex := 1 // default 10
	for i, c := range countChoices {
		if c == count {
			countIndex = i
			break
		}
	}

	h := &HomeScreen{
		checklist:  components.NewChecklist(items),
		countIndex: countIndex,
		focus:      focusTenses,
		rng:        rng,
	}

	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "OEFENEN", Action: h.startDrill},
		{Label: "WERKWOORDEN", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: verbs.New()}
			}
		}},
		{Label: "AFSLUITEN", Action: func() tea.Cmd {
			return tea.Quit
		}},
	})

	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	switch h.focus {
	case focusTenses:
		return []layout.KeyHint{
			{Key: "Space", Description: "Toggle"},
			{Key: "Tab", Description: "Next section"},
			{Key: "Enter", Description: "Start"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case focusCount:
		return []layout.KeyHint{
			{Key: "←→", Description: "Length"},
			{Key: "Tab", Description: "Next section"},
			{Key: "Enter", Description: "Start"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
}

// selectedTenses returns the checked tenses in display order.
func (h *HomeScreen) selectedTenses() []lexicon.Tense {
	all := lexicon.AllTenses()
	var out []lexicon.Tense
	for _, i := range h.checklist.CheckedIndexes() {
		out = append(out, all[i])
	}
	return out
}

func (h *HomeScreen) startDrill() tea.Cmd {
	tenses := h.selectedTenses()
	if len(tenses) == 0 {
		return nil
	}
	count := countChoices[h.countIndex]
	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: drillscreen.New(tenses, count, h.rng),
		}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	switch kmsg.String() {
	case "tab":
		h.focus = (h.focus + 1) % 3
		return h, nil
	case "shift+tab":
		h.focus = (h.focus + 2) % 3
		return h, nil
	}

	switch h.focus {
	case focusTenses:
		if kmsg.String() == "enter" {
			return h, h.startDrill()
		}
		var cmd tea.Cmd
		h.checklist, cmd = h.checklist.Update(msg)
		return h, cmd

	case focusCount:
		switch kmsg.String() {
		case "left", "h":
			if h.countIndex > 0 {
				h.countIndex--
			}
		case "right", "l":
			if h.countIndex < len(countChoices)-1 {
				h.countIndex++
			}
		case "enter":
			return h, h.startDrill()
		}
		return h, nil

	default:
		var cmd tea.Cmd
		h.menu, cmd = h.menu.Update(msg)
		return h, cmd
	}
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("VERBUIG"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Nederlandse werkwoorden oefenen"))
	b.WriteString("\n\n")

	b.WriteString(h.sectionHeader("Tijden", h.focus == focusTenses, width))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.checklist.View()))
	b.WriteString("\n")

	b.WriteString(h.sectionHeader("Aantal vragen", h.focus == focusCount, width))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.renderCountPicker()))
	b.WriteString("\n\n")

	b.WriteString(h.sectionHeader("Menu", h.focus == focusMenu, width))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	if h.checklist.CheckedCount() == 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("Kies minstens één tijd"))
	}

	return b.String()
}

func (h *HomeScreen) sectionHeader(label string, active bool, width int) string {
	style := lipgloss.NewStyle().Foreground(theme.TextDim)
	if active {
		style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render("── "+label+" ──"))
}

func (h *HomeScreen) renderCountPicker() string {
	var parts []string
	for i, c := range countChoices {
		s := fmt.Sprintf(" %d ", c)
		if i == h.countIndex {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("["+strings.TrimSpace(s)+"]"))
		} else {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render(s))
		}
	}
	return strings.Join(parts, " ")
}
