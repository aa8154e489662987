// Package conjugate computes expected verb forms from the lexicon: finite
// forms for the simple tenses and auxiliary + participle phrases for the
// perfect tenses.
package conjugate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mverbeek/verbuig/internal/lexicon"
)

var (
	// ErrUnknownVerb indicates a lookup of an infinitive that is not in
	// the lexicon. Verbs are only ever chosen from the lexicon itself, so
	// hitting this is a data-integrity bug, not a user error.
	ErrUnknownVerb = errors.New("unknown verb")

	// ErrInvalidTense indicates a function was invoked with a tense
	// outside its supported subset.
	ErrInvalidTense = errors.New("invalid tense for operation")
)

// FiniteForm returns the single conjugated form of a verb for a simple
// tense (Present or SimplePast) and pronoun.
func FiniteForm(infinitive string, tense lexicon.Tense, p lexicon.Pronoun) (string, error) {
	verb, err := lexicon.Get(infinitive)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownVerb, infinitive)
	}
	form, ok := verb.FiniteForm(tense, p)
	if !ok {
		return "", fmt.Errorf("%w: %s is not a simple tense", ErrInvalidTense, tense.Code())
	}
	return form, nil
}

// PerfectPhrases returns every acceptable "<auxiliary form> <participle>"
// phrase for a perfect tense and pronoun, one per declared auxiliary in
// declaration order. Phrases that render identically are deduplicated,
// keeping first-seen order; the result always has 1 or 2 entries.
func PerfectPhrases(infinitive string, tense lexicon.Tense, p lexicon.Pronoun) ([]string, error) {
	verb, err := lexicon.Get(infinitive)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVerb, infinitive)
	}
	auxTense, ok := tense.AuxTense()
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a perfect tense", ErrInvalidTense, tense.Code())
	}

	var phrases []string
	seen := make(map[string]bool, len(verb.Auxiliaries))
	for _, aux := range verb.Auxiliaries {
		auxForm, ok := lexicon.AuxForm(aux, auxTense, p)
		if !ok {
			return nil, fmt.Errorf("no %s form of %q for %q", auxTense.Code(), aux, lexicon.PronounLabel(p))
		}
		phrase := auxForm + " " + verb.PastParticiple
		key := strings.ToLower(phrase)
		if seen[key] {
			continue
		}
		seen[key] = true
		phrases = append(phrases, phrase)
	}
	return phrases, nil
}

// canonicalZijnVerbs is the fixed set of motion/change-of-state verbs that
// prefer zijn when they declare both auxiliaries. A judgment call carried
// as data, not an algorithm to generalize.
var canonicalZijnVerbs = map[string]bool{
	"gaan":       true,
	"komen":      true,
	"blijven":    true,
	"worden":     true,
	"vallen":     true,
	"beginnen":   true,
	"opstaan":    true,
	"terugkomen": true,
}

// PrimaryAuxiliary picks a single auxiliary for explanatory text. Grading
// never uses this: PerfectPhrases always accepts every declared auxiliary.
func PrimaryAuxiliary(infinitive string) (lexicon.Auxiliary, error) {
	verb, err := lexicon.Get(infinitive)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownVerb, infinitive)
	}
	if len(verb.Auxiliaries) == 1 {
		return verb.Auxiliaries[0], nil
	}
	if verb.TakesAux(lexicon.Zijn) && canonicalZijnVerbs[verb.Infinitive] {
		return lexicon.Zijn, nil
	}
	return lexicon.Hebben, nil
}
