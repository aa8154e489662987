package conjugate

import (
	"errors"
	"strings"
	"testing"

	"github.com/mverbeek/verbuig/internal/lexicon"
)

func TestFiniteForm(t *testing.T) {
	tests := []struct {
		verb    string
		tense   lexicon.Tense
		pronoun lexicon.Pronoun
		want    string
	}{
		{"werken", lexicon.Present, lexicon.Ik, "werk"},
		{"werken", lexicon.Present, lexicon.Hij, "werkt"},
		{"werken", lexicon.SimplePast, lexicon.Wij, "werkten"},
		{"zijn", lexicon.Present, lexicon.Hij, "is"},
		{"gaan", lexicon.SimplePast, lexicon.Ik, "ging"},
		{"opstaan", lexicon.Present, lexicon.Ik, "sta"},
		{"opstaan", lexicon.SimplePast, lexicon.Hij, "stond"},
	}

	for _, tc := range tests {
		got, err := FiniteForm(tc.verb, tc.tense, tc.pronoun)
		if err != nil {
			t.Errorf("FiniteForm(%q, %s, %s): %v", tc.verb, tc.tense.Code(), lexicon.PronounLabel(tc.pronoun), err)
			continue
		}
		if got != tc.want {
			t.Errorf("FiniteForm(%q, %s, %s) = %q, want %q",
				tc.verb, tc.tense.Code(), lexicon.PronounLabel(tc.pronoun), got, tc.want)
		}
	}
}

func TestFiniteFormErrors(t *testing.T) {
	if _, err := FiniteForm("bestaatniet", lexicon.Present, lexicon.Ik); !errors.Is(err, ErrUnknownVerb) {
		t.Errorf("unknown verb: got %v, want ErrUnknownVerb", err)
	}
	if _, err := FiniteForm("werken", lexicon.PresentPerfect, lexicon.Ik); !errors.Is(err, ErrInvalidTense) {
		t.Errorf("perfect tense: got %v, want ErrInvalidTense", err)
	}
}

func TestPerfectPhrases(t *testing.T) {
	tests := []struct {
		verb    string
		tense   lexicon.Tense
		pronoun lexicon.Pronoun
		want    []string
	}{
		// dual-auxiliary verb: both phrases, declaration order
		{"lopen", lexicon.PresentPerfect, lexicon.Ik, []string{"heb gelopen", "ben gelopen"}},
		{"lopen", lexicon.PastPerfect, lexicon.Wij, []string{"hadden gelopen", "waren gelopen"}},
		{"rijden", lexicon.PresentPerfect, lexicon.Hij, []string{"heeft gereden", "is gereden"}},
		// single auxiliary
		{"werken", lexicon.PresentPerfect, lexicon.Ik, []string{"heb gewerkt"}},
		{"komen", lexicon.PastPerfect, lexicon.ZijMv, []string{"waren gekomen"}},
		// separable: prefix fused into the participle
		{"opstaan", lexicon.PastPerfect, lexicon.Hij, []string{"was opgestaan"}},
		{"meebrengen", lexicon.PresentPerfect, lexicon.Jullie, []string{"hebben meegebracht"}},
	}

	for _, tc := range tests {
		got, err := PerfectPhrases(tc.verb, tc.tense, tc.pronoun)
		if err != nil {
			t.Errorf("PerfectPhrases(%q, %s, %s): %v", tc.verb, tc.tense.Code(), lexicon.PronounLabel(tc.pronoun), err)
			continue
		}
		if len(got) != len(tc.want) {
			t.Errorf("PerfectPhrases(%q, %s, %s) = %v, want %v",
				tc.verb, tc.tense.Code(), lexicon.PronounLabel(tc.pronoun), got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("PerfectPhrases(%q, %s, %s)[%d] = %q, want %q",
					tc.verb, tc.tense.Code(), lexicon.PronounLabel(tc.pronoun), i, got[i], tc.want[i])
			}
		}
	}
}

func TestPerfectPhrasesErrors(t *testing.T) {
	if _, err := PerfectPhrases("bestaatniet", lexicon.PresentPerfect, lexicon.Ik); !errors.Is(err, ErrUnknownVerb) {
		t.Errorf("unknown verb: got %v, want ErrUnknownVerb", err)
	}
	if _, err := PerfectPhrases("werken", lexicon.Present, lexicon.Ik); !errors.Is(err, ErrInvalidTense) {
		t.Errorf("simple tense: got %v, want ErrInvalidTense", err)
	}
}

// Every verb yields between 1 and 2 phrases per pronoun, each of the form
// "<auxiliary form> <past participle>", one per distinct auxiliary.
func TestPerfectPhrasesShape(t *testing.T) {
	for _, v := range lexicon.AllVerbs() {
		for _, tense := range []lexicon.Tense{lexicon.PresentPerfect, lexicon.PastPerfect} {
			auxTense, _ := tense.AuxTense()
			for _, p := range lexicon.Pronouns() {
				phrases, err := PerfectPhrases(v.Infinitive, tense, p)
				if err != nil {
					t.Fatalf("%s/%s/%s: %v", v.Infinitive, tense.Code(), lexicon.PronounLabel(p), err)
				}
				if len(phrases) < 1 || len(phrases) > 2 {
					t.Fatalf("%s/%s/%s: %d phrases", v.Infinitive, tense.Code(), lexicon.PronounLabel(p), len(phrases))
				}
				if len(phrases) != len(v.Auxiliaries) {
					// only allowed when two auxiliaries render identically
					a0, _ := lexicon.AuxForm(v.Auxiliaries[0], auxTense, p)
					a1, _ := lexicon.AuxForm(v.Auxiliaries[1], auxTense, p)
					if a0 != a1 {
						t.Errorf("%s/%s/%s: %d phrases for %d auxiliaries",
							v.Infinitive, tense.Code(), lexicon.PronounLabel(p), len(phrases), len(v.Auxiliaries))
					}
				}
				for _, phrase := range phrases {
					if !strings.HasSuffix(phrase, " "+v.PastParticiple) {
						t.Errorf("%s/%s/%s: phrase %q does not end in participle %q",
							v.Infinitive, tense.Code(), lexicon.PronounLabel(p), phrase, v.PastParticiple)
					}
				}
			}
		}
	}
}

func TestPrimaryAuxiliary(t *testing.T) {
	tests := []struct {
		verb string
		want lexicon.Auxiliary
	}{
		{"werken", lexicon.Hebben}, // single aux
		{"gaan", lexicon.Zijn},     // single aux
		{"lopen", lexicon.Hebben},  // dual aux, not a canonical zijn-verb
		{"rijden", lexicon.Hebben}, // dual aux, not a canonical zijn-verb
		{"opstaan", lexicon.Zijn},
		{"terugkomen", lexicon.Zijn},
	}

	for _, tc := range tests {
		got, err := PrimaryAuxiliary(tc.verb)
		if err != nil {
			t.Errorf("PrimaryAuxiliary(%q): %v", tc.verb, err)
			continue
		}
		if got != tc.want {
			t.Errorf("PrimaryAuxiliary(%q) = %s, want %s", tc.verb, got, tc.want)
		}
	}
}

// The display heuristic must never narrow the accepted-answer set: for a
// dual-auxiliary verb, PerfectPhrases keeps returning both phrases no
// matter what PrimaryAuxiliary says.
func TestPrimaryAuxiliaryDoesNotNarrowAnswers(t *testing.T) {
	for _, verb := range []string{"lopen", "rijden"} {
		if _, err := PrimaryAuxiliary(verb); err != nil {
			t.Fatal(err)
		}
		phrases, err := PerfectPhrases(verb, lexicon.PresentPerfect, lexicon.Ik)
		if err != nil {
			t.Fatal(err)
		}
		if len(phrases) != 2 {
			t.Errorf("%s: accepted set narrowed to %v", verb, phrases)
		}
	}
}
