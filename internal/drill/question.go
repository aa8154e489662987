// Package drill selects drill questions from the static template set,
// normalizes answers, and grades them against the acceptable set computed
// by the conjugation resolver.
package drill

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/mverbeek/verbuig/internal/conjugate"
	"github.com/mverbeek/verbuig/internal/lexicon"
)

var (
	// ErrNoTemplateForTense indicates an empty template pool for a tense.
	// Load-time validation makes this unreachable with the shipped data,
	// but it stays a defined failure rather than an index panic.
	ErrNoTemplateForTense = errors.New("no templates for tense")

	// ErrTemplateMalformed indicates a selected template with a broken
	// tense, pronoun, or verb binding.
	ErrTemplateMalformed = errors.New("malformed template")
)

// Question is one drill round, built fresh per round and discarded after
// grading.
type Question struct {
	TemplateID string
	Text       string
	Tense      lexicon.Tense
	Pronoun    lexicon.Pronoun
	Infinitive string

	// Expected holds the normalized acceptable answers; Display holds the
	// parallel presentation forms, same order and cardinality.
	Expected []string
	Display  []string

	Explanation string
	Hint        string
}

// Pick chooses a template and a compatible verb uniformly at random for
// the requested tense and builds the full question. rng is injected so a
// fixed seed yields a fixed question sequence.
func Pick(tense lexicon.Tense, rng *rand.Rand) (*Question, error) {
	pool := TemplatesFor(tense)
	if len(pool) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoTemplateForTense, tense.Code())
	}
	tmpl := pool[rng.Intn(len(pool))]

	verbs := tmpl.AllowedVerbs
	if len(verbs) == 0 {
		verbs = lexicon.Infinitives()
	}
	infinitive := verbs[rng.Intn(len(verbs))]

	return build(tmpl, infinitive)
}

// build assembles the Question for a template and verb.
func build(tmpl Template, infinitive string) (*Question, error) {
	expected, display, err := expectedAnswers(infinitive, tmpl.Tense, tmpl.Pronoun)
	if err != nil {
		return nil, fmt.Errorf("%w: template %q: %v", ErrTemplateMalformed, tmpl.ID, err)
	}

	explanation := fmt.Sprintf("Tijd: %s (%s). Onderwerp: %s. Werkwoord: %s.",
		tmpl.Tense.Code(), tmpl.Tense.Label(), lexicon.PronounLabel(tmpl.Pronoun), infinitive)

	return &Question{
		TemplateID:  tmpl.ID,
		Text:        tmpl.Text,
		Tense:       tmpl.Tense,
		Pronoun:     tmpl.Pronoun,
		Infinitive:  infinitive,
		Expected:    expected,
		Display:     display,
		Explanation: explanation,
		Hint:        tmpl.Hint,
	}, nil
}

// expectedAnswers computes every acceptable answer for a verb, tense and
// pronoun. Simple tenses yield the single finite form; perfect tenses
// yield one phrase per declared auxiliary. Both lists are deduplicated on
// the normalized form, preserving first-seen order.
func expectedAnswers(infinitive string, tense lexicon.Tense, p lexicon.Pronoun) (expected, display []string, err error) {
	var candidates []string
	if tense.IsPerfect() {
		candidates, err = conjugate.PerfectPhrases(infinitive, tense, p)
	} else {
		var form string
		form, err = conjugate.FiniteForm(infinitive, tense, p)
		candidates = []string{form}
	}
	if err != nil {
		return nil, nil, err
	}

	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		n := Normalize(c)
		if seen[n] {
			continue
		}
		seen[n] = true
		expected = append(expected, n)
		display = append(display, c)
	}
	return expected, display, nil
}
