package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mverbeek/verbuig/internal/ui/theme"
)

// ChecklistItem is a single toggleable row in a Checklist.
type ChecklistItem struct {
	Label   string
	Detail  string
	Checked bool
}

// Checklist is a multi-select toggle list. Space toggles the highlighted
// row; at least one row is expected to stay checked, which callers
// enforce via CheckedCount.
type Checklist struct {
	Items    []ChecklistItem
	Selected int
}

// NewChecklist creates a checklist with the given items.
func NewChecklist(items []ChecklistItem) Checklist {
	return Checklist{
		Items:    items,
		Selected: 0,
	}
}

// Init returns nil.
func (c Checklist) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and toggling.
func (c Checklist) Update(msg tea.Msg) (Checklist, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Items)-1 {
			c.Selected++
		}
	case "space", " ":
		if c.Selected >= 0 && c.Selected < len(c.Items) {
			c.Items[c.Selected].Checked = !c.Items[c.Selected].Checked
		}
	}

	return c, nil
}

// CheckedCount returns how many rows are checked.
func (c Checklist) CheckedCount() int {
	n := 0
	for _, item := range c.Items {
		if item.Checked {
			n++
		}
	}
	return n
}

// CheckedIndexes returns the indexes of all checked rows, in order.
func (c Checklist) CheckedIndexes() []int {
	var idx []int
	for i, item := range c.Items {
		if item.Checked {
			idx = append(idx, i)
		}
	}
	return idx
}

// View renders the checklist.
func (c Checklist) View() string {
	var s string
	for i, item := range c.Items {
		box := "[ ]"
		if item.Checked {
			box = "[x]"
		}

		prefix := "  "
		if i == c.Selected {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s %s", prefix, box, item.Label)

		var styled string
		if i == c.Selected {
			styled = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line)
		} else if item.Checked {
			styled = lipgloss.NewStyle().Foreground(theme.Text).Render(line)
		} else {
			styled = lipgloss.NewStyle().Foreground(theme.TextDim).Render(line)
		}

		if item.Detail != "" {
			styled += "  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(item.Detail)
		}

		s += styled + "\n"
	}
	return s
}
