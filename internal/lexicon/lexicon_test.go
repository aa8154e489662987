package lexicon

import "testing"

func TestSeedValidates(t *testing.T) {
	if err := validateVerbs(seedVerbs()); err != nil {
		t.Fatalf("seed data invalid: %v", err)
	}
}

func TestFiniteFormsFullyPopulated(t *testing.T) {
	for _, v := range AllVerbs() {
		for _, p := range Pronouns() {
			for _, tense := range []Tense{Present, SimplePast} {
				form, ok := v.FiniteForm(tense, p)
				if !ok {
					t.Fatalf("%s: FiniteForm rejected simple tense %s", v.Infinitive, tense.Code())
				}
				if form == "" {
					t.Errorf("%s: empty %s form for %s", v.Infinitive, tense.Code(), PronounLabel(p))
				}
			}
		}
	}
}

func TestFiniteFormRejectsPerfectTenses(t *testing.T) {
	v, err := Get("werken")
	if err != nil {
		t.Fatal(err)
	}
	for _, tense := range []Tense{PresentPerfect, PastPerfect} {
		if _, ok := v.FiniteForm(tense, Ik); ok {
			t.Errorf("FiniteForm accepted perfect tense %s", tense.Code())
		}
	}
}

func TestAuxTableComplete(t *testing.T) {
	for _, aux := range []Auxiliary{Hebben, Zijn} {
		for _, tense := range []Tense{Present, SimplePast} {
			for _, p := range Pronouns() {
				form, ok := AuxForm(aux, tense, p)
				if !ok || form == "" {
					t.Errorf("missing %s %s form for %s", aux, tense.Code(), PronounLabel(p))
				}
			}
		}
	}
}

func TestAuxFormRejectsPerfectTense(t *testing.T) {
	if _, ok := AuxForm(Hebben, PresentPerfect, Ik); ok {
		t.Error("AuxForm accepted a perfect tense")
	}
}

func TestAuxiliariesWellFormed(t *testing.T) {
	for _, v := range AllVerbs() {
		n := len(v.Auxiliaries)
		if n < 1 || n > 2 {
			t.Errorf("%s: %d auxiliaries", v.Infinitive, n)
		}
		if n == 2 && v.Auxiliaries[0] == v.Auxiliaries[1] {
			t.Errorf("%s: duplicate auxiliary", v.Infinitive)
		}
		if v.PastParticiple == "" {
			t.Errorf("%s: empty past participle", v.Infinitive)
		}
	}
}

func TestGetUnknownVerb(t *testing.T) {
	if _, err := Get("fietsenmaken"); err == nil {
		t.Error("expected error for unknown infinitive")
	}
}

func TestInfinitivesSorted(t *testing.T) {
	infs := Infinitives()
	if len(infs) != Count() {
		t.Fatalf("Infinitives() returned %d entries, want %d", len(infs), Count())
	}
	for i := 1; i < len(infs); i++ {
		if infs[i-1] >= infs[i] {
			t.Errorf("not sorted at %d: %q >= %q", i, infs[i-1], infs[i])
		}
	}
}

func TestValidateCatchesDefects(t *testing.T) {
	bad := []Verb{
		{Infinitive: "kapot", Kind: KindRegular}, // no aux, no participle, no forms
	}
	if err := validateVerbs(bad); err == nil {
		t.Error("expected validation error for defective entry")
	}

	dup := seedVerbs()
	dup = append(dup, dup[0])
	if err := validateVerbs(dup); err == nil {
		t.Error("expected validation error for duplicate infinitive")
	}
}
