// Package lexicon holds the static verb dataset: verb entries with their
// finite forms and past participles, the conjugation tables for the
// auxiliaries hebben and zijn, and the tense and pronoun enumerations.
// Everything is seeded at init, validated once, and immutable afterwards.
package lexicon

import (
	"fmt"
	"sort"
)

// lex holds the seeded verbs with precomputed indices.
type lex struct {
	verbs       []Verb
	byInfinitive map[string]*Verb
	infinitives []string // sorted
}

// l is the package-level singleton, set by init().
var l *lex

func init() {
	verbs := seedVerbs()
	if err := validateVerbs(verbs); err != nil {
		// Defects in the seed tables are programming errors, not runtime
		// conditions; fail at process start.
		panic(fmt.Sprintf("lexicon: %v", err))
	}
	l = build(verbs)
}

func build(verbs []Verb) *lex {
	lx := &lex{
		verbs:        verbs,
		byInfinitive: make(map[string]*Verb, len(verbs)),
	}
	for i := range lx.verbs {
		lx.byInfinitive[lx.verbs[i].Infinitive] = &lx.verbs[i]
	}
	lx.infinitives = make([]string, 0, len(verbs))
	for inf := range lx.byInfinitive {
		lx.infinitives = append(lx.infinitives, inf)
	}
	sort.Strings(lx.infinitives)
	return lx
}

// Get returns the verb entry for an infinitive.
func Get(infinitive string) (Verb, error) {
	v, ok := l.byInfinitive[infinitive]
	if !ok {
		return Verb{}, fmt.Errorf("unknown verb: %q", infinitive)
	}
	return *v, nil
}

// Has reports whether an infinitive exists in the lexicon.
func Has(infinitive string) bool {
	_, ok := l.byInfinitive[infinitive]
	return ok
}

// Infinitives returns all verb keys in sorted order.
func Infinitives() []string {
	out := make([]string, len(l.infinitives))
	copy(out, l.infinitives)
	return out
}

// AllVerbs returns all verb entries sorted by infinitive.
func AllVerbs() []Verb {
	out := make([]Verb, 0, len(l.infinitives))
	for _, inf := range l.infinitives {
		out = append(out, *l.byInfinitive[inf])
	}
	return out
}

// Count returns the number of verbs in the lexicon.
func Count() int {
	return len(l.verbs)
}
