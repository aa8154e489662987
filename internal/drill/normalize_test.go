package drill

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"gewerkt", "gewerkt"},
		{"Gewerkt!", "gewerkt"},
		{"  GEWERKT?!  ", "gewerkt"},
		{"Ben gelopen.", "ben gelopen"},
		{"heb   \t gelopen", "heb gelopen"},
		{"was opgestaan;", "was opgestaan"},
		{"werkte...", "werkte"},
		{"", ""},
		{"   ", ""},
		{"?!.,", ""},
		{"ging.", "ging"},
	}

	for _, tc := range tests {
		if got := Normalize(tc.input); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Gewerkt!", "  Ben   gelopen. ", "", "   ", "heb gelopen", "?!"}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
