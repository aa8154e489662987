package app

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mverbeek/verbuig/internal/lexicon"
	"github.com/mverbeek/verbuig/internal/router"
	"github.com/mverbeek/verbuig/internal/screen"
	"github.com/mverbeek/verbuig/internal/screens/drill"
	"github.com/mverbeek/verbuig/internal/screens/home"
	"github.com/mverbeek/verbuig/internal/ui/layout"
)

// Options configures a run of the TUI.
type Options struct {
	// Tenses to drill. Empty means all four.
	Tenses []lexicon.Tense

	// Count of questions per round.
	Count int

	// Seed for the question picker. Zero means time-based.
	Seed int64

	// AutoStart skips the home screen and goes straight into a round.
	AutoStart bool
}

// DefaultCount is the question count used when none is given.
const DefaultCount = 10

func (o Options) normalized() Options {
	if len(o.Tenses) == 0 {
		o.Tenses = lexicon.AllTenses()
	}
	if o.Count <= 0 {
		o.Count = DefaultCount
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	return o
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	opts = opts.normalized()
	rng := rand.New(rand.NewSource(opts.Seed))

	var initial screen.Screen
	if opts.AutoStart {
		initial = drill.New(opts.Tenses, opts.Count, rng)
	} else {
		initial = home.New(opts.Tenses, opts.Count, rng)
	}

	return AppModel{
		router: router.New(initial),
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, "", m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
