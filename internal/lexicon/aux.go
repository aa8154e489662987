package lexicon

// Auxiliary is one of the two helper verbs used to build perfect tenses.
type Auxiliary string

const (
	Hebben Auxiliary = "hebben"
	Zijn   Auxiliary = "zijn"
)

// auxForms holds the finite forms of the two auxiliaries for both simple
// tenses. Fixed reference data; fully populated, never mutated after load.
var auxForms = map[Auxiliary]map[Tense]map[Pronoun]string{
	Hebben: {
		Present: {
			Ik:     "heb",
			Jij:    "hebt",
			U:      "heeft",
			Hij:    "heeft",
			Wij:    "hebben",
			Jullie: "hebben",
			ZijMv:  "hebben",
		},
		SimplePast: {
			Ik:     "had",
			Jij:    "had",
			U:      "had",
			Hij:    "had",
			Wij:    "hadden",
			Jullie: "hadden",
			ZijMv:  "hadden",
		},
	},
	Zijn: {
		Present: {
			Ik:     "ben",
			Jij:    "bent",
			U:      "bent",
			Hij:    "is",
			Wij:    "zijn",
			Jullie: "zijn",
			ZijMv:  "zijn",
		},
		SimplePast: {
			Ik:     "was",
			Jij:    "was",
			U:      "was",
			Hij:    "was",
			Wij:    "waren",
			Jullie: "waren",
			ZijMv:  "waren",
		},
	},
}

// AuxForm returns the finite form of an auxiliary for a simple tense and
// pronoun. ok is false if tense is not a simple tense.
func AuxForm(aux Auxiliary, tense Tense, p Pronoun) (form string, ok bool) {
	byTense, ok := auxForms[aux]
	if !ok {
		return "", false
	}
	byPronoun, ok := byTense[tense]
	if !ok {
		return "", false
	}
	form, ok = byPronoun[p]
	return form, ok
}
