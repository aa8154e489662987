package drill

import (
	"fmt"
	"strings"

	"github.com/mverbeek/verbuig/internal/lexicon"
)

// Blank is the marker in a template sentence where the answer goes.
const Blank = "____"

// Template is one prepared drill sentence. Each template is bound to a
// single tense and a fixed pronoun; the pronoun never varies at runtime.
type Template struct {
	ID      string
	Text    string // sentence containing exactly one Blank
	Tense   lexicon.Tense
	Pronoun lexicon.Pronoun

	// AllowedVerbs restricts the verb choice to infinitives that fit the
	// sentence. Empty means every verb in the lexicon is eligible.
	AllowedVerbs []string

	// Hint is the short label shown alongside the prompt, e.g. "o.t.t.".
	Hint string

	// Note is an optional authoring remark, not shown to the learner.
	Note string
}

// templates holds the seeded template set, validated by init().
var templates []Template

// byTense indexes templates by tense, preserving seed order.
var byTense map[lexicon.Tense][]Template

func init() {
	templates = seedTemplates()
	if err := validateTemplates(templates); err != nil {
		panic(fmt.Sprintf("drill: %v", err))
	}
	byTense = make(map[lexicon.Tense][]Template)
	for _, t := range templates {
		byTense[t.Tense] = append(byTense[t.Tense], t)
	}
}

// TemplatesFor returns all templates for a tense in seed order. Non-empty
// for each of the four tenses (enforced at load time).
func TemplatesFor(tense lexicon.Tense) []Template {
	out := make([]Template, len(byTense[tense]))
	copy(out, byTense[tense])
	return out
}

// validateTemplates performs all structural checks on the template set.
// Returns a combined error describing every problem found, or nil.
func validateTemplates(ts []Template) error {
	var errs []string

	seen := make(map[string]bool, len(ts))
	perTense := make(map[lexicon.Tense]int)
	for _, t := range ts {
		if t.ID == "" {
			errs = append(errs, "template with empty id")
			continue
		}
		if seen[t.ID] {
			errs = append(errs, fmt.Sprintf("duplicate template id: %q", t.ID))
		}
		seen[t.ID] = true
		perTense[t.Tense]++

		if n := strings.Count(t.Text, Blank); n != 1 {
			errs = append(errs, fmt.Sprintf("template %q: %d blanks, want exactly 1", t.ID, n))
		}
		if t.Hint == "" {
			errs = append(errs, fmt.Sprintf("template %q: empty hint", t.ID))
		}
		for _, inf := range t.AllowedVerbs {
			if !lexicon.Has(inf) {
				errs = append(errs, fmt.Sprintf("template %q: unknown verb %q", t.ID, inf))
			}
		}
	}

	for _, tense := range lexicon.AllTenses() {
		if perTense[tense] == 0 {
			errs = append(errs, fmt.Sprintf("no templates for tense %s", tense.Code()))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("template validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
