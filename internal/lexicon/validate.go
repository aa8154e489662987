package lexicon

import (
	"fmt"
	"strings"
)

// validateVerbs performs all structural checks on the seeded verb set.
// Returns a combined error describing every problem found, or nil.
func validateVerbs(verbs []Verb) error {
	var errs []string

	seen := make(map[string]bool, len(verbs))
	for _, v := range verbs {
		if v.Infinitive == "" {
			errs = append(errs, "verb with empty infinitive")
			continue
		}
		if seen[v.Infinitive] {
			errs = append(errs, fmt.Sprintf("duplicate verb: %q", v.Infinitive))
		}
		seen[v.Infinitive] = true

		if v.PastParticiple == "" {
			errs = append(errs, fmt.Sprintf("verb %q: empty past participle", v.Infinitive))
		}

		switch len(v.Auxiliaries) {
		case 1:
		case 2:
			if v.Auxiliaries[0] == v.Auxiliaries[1] {
				errs = append(errs, fmt.Sprintf("verb %q: duplicate auxiliary %q", v.Infinitive, v.Auxiliaries[0]))
			}
		default:
			errs = append(errs, fmt.Sprintf("verb %q: %d auxiliaries, want 1 or 2", v.Infinitive, len(v.Auxiliaries)))
		}
		for _, aux := range v.Auxiliaries {
			if aux != Hebben && aux != Zijn {
				errs = append(errs, fmt.Sprintf("verb %q: unknown auxiliary %q", v.Infinitive, aux))
			}
		}

		if v.Kind == KindSeparable && v.Prefix == "" {
			errs = append(errs, fmt.Sprintf("verb %q: separable without prefix", v.Infinitive))
		}
		if v.Kind == KindSeparable && !strings.HasPrefix(v.PastParticiple, v.Prefix) {
			errs = append(errs, fmt.Sprintf("verb %q: participle %q does not start with prefix %q",
				v.Infinitive, v.PastParticiple, v.Prefix))
		}

		for _, p := range Pronouns() {
			if v.PresentForms[p] == "" {
				errs = append(errs, fmt.Sprintf("verb %q: missing present form for %q", v.Infinitive, PronounLabel(p)))
			}
			if v.PastForms[p] == "" {
				errs = append(errs, fmt.Sprintf("verb %q: missing past form for %q", v.Infinitive, PronounLabel(p)))
			}
		}
	}

	// The auxiliary tables themselves must be gap-free: every perfect
	// phrase is built from them.
	for _, aux := range []Auxiliary{Hebben, Zijn} {
		for _, tense := range []Tense{Present, SimplePast} {
			for _, p := range Pronouns() {
				if form, ok := AuxForm(aux, tense, p); !ok || form == "" {
					errs = append(errs, fmt.Sprintf("auxiliary %q: missing %s form for %q",
						aux, tense.Code(), PronounLabel(p)))
				}
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("verb table validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
