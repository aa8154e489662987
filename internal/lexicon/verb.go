package lexicon

// VerbKind classifies how a verb inflects.
type VerbKind string

const (
	KindRegular   VerbKind = "regular"
	KindIrregular VerbKind = "irregular"
	KindSeparable VerbKind = "separable"
)

// Forms maps each of the seven pronouns to a finite surface form.
// Index by Pronoun; all seven slots are populated for every verb.
type Forms [pronounCount]string

// Verb is one lexicon entry, keyed by its infinitive.
type Verb struct {
	Infinitive string
	Gloss      string // English translation, for the verb reference table
	Kind       VerbKind

	// Auxiliaries lists the perfect-tense helper verbs this verb takes,
	// in declaration order. 1 or 2 entries, no duplicates.
	Auxiliaries []Auxiliary

	// PastParticiple has any separable prefix already fused
	// (opstaan -> "opgestaan").
	PastParticiple string

	// Prefix is the separable particle, empty for non-separable verbs.
	Prefix string

	PresentForms Forms
	PastForms    Forms
}

// FiniteForm returns the surface form for a simple tense and pronoun.
// ok is false for perfect tenses.
func (v *Verb) FiniteForm(tense Tense, p Pronoun) (string, bool) {
	switch tense {
	case Present:
		return v.PresentForms[p], true
	case SimplePast:
		return v.PastForms[p], true
	default:
		return "", false
	}
}

// TakesAux reports whether aux is among the verb's declared auxiliaries.
func (v *Verb) TakesAux(aux Auxiliary) bool {
	for _, a := range v.Auxiliaries {
		if a == aux {
			return true
		}
	}
	return false
}
