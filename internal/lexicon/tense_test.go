package lexicon

import "testing"

func TestAuxTense(t *testing.T) {
	tests := []struct {
		tense  Tense
		want   Tense
		wantOK bool
	}{
		{Present, 0, false},
		{SimplePast, 0, false},
		{PresentPerfect, Present, true},
		{PastPerfect, SimplePast, true},
	}

	for _, tc := range tests {
		got, ok := tc.tense.AuxTense()
		if ok != tc.wantOK {
			t.Errorf("%s: AuxTense ok = %v, want %v", tc.tense.Code(), ok, tc.wantOK)
			continue
		}
		if ok && got != tc.want {
			t.Errorf("%s: AuxTense = %s, want %s", tc.tense.Code(), got.Code(), tc.want.Code())
		}
	}
}

func TestParseTense(t *testing.T) {
	tests := []struct {
		input   string
		want    Tense
		wantErr bool
	}{
		{"ott", Present, false},
		{"ovt", SimplePast, false},
		{"vtt", PresentPerfect, false},
		{"vvt", PastPerfect, false},
		{"o.t.t.", Present, false},
		{"v.v.t.", PastPerfect, false},
		{"", 0, true},
		{"ottt", 0, true},
		{"futurum", 0, true},
	}

	for _, tc := range tests {
		got, err := ParseTense(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseTense(%q): expected error", tc.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTense(%q): %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseTense(%q) = %s, want %s", tc.input, got.Code(), tc.want.Code())
		}
	}
}

func TestTenseLabels(t *testing.T) {
	for _, tense := range AllTenses() {
		if tense.Code() == "" {
			t.Errorf("tense %d: empty code", tense)
		}
		if tense.Label() == "" {
			t.Errorf("%s: empty label", tense.Code())
		}
		if tense.Example() == "" {
			t.Errorf("%s: empty example", tense.Code())
		}
	}
}
