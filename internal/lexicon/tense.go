package lexicon

import "fmt"

// Tense identifies one of the four drilled tenses.
type Tense int

const (
	Present        Tense = iota // o.t.t. — onvoltooid tegenwoordige tijd
	SimplePast                  // o.v.t. — onvoltooid verleden tijd
	PresentPerfect              // v.t.t. — voltooid tegenwoordige tijd
	PastPerfect                 // v.v.t. — voltooid verleden tijd
)

// AllTenses returns the four tenses in menu order.
func AllTenses() []Tense {
	return []Tense{Present, SimplePast, PresentPerfect, PastPerfect}
}

// Code returns the conventional Dutch abbreviation, e.g. "o.t.t.".
func (t Tense) Code() string {
	switch t {
	case Present:
		return "o.t.t."
	case SimplePast:
		return "o.v.t."
	case PresentPerfect:
		return "v.t.t."
	case PastPerfect:
		return "v.v.t."
	default:
		return ""
	}
}

// Label returns the full Dutch name of the tense.
func (t Tense) Label() string {
	switch t {
	case Present:
		return "tegenwoordige tijd"
	case SimplePast:
		return "onvoltooid verleden tijd"
	case PresentPerfect:
		return "voltooid tegenwoordige tijd"
	case PastPerfect:
		return "voltooid verleden tijd"
	default:
		return ""
	}
}

// Example returns a short illustrative conjugation for menu display.
func (t Tense) Example() string {
	switch t {
	case Present:
		return "ik werk"
	case SimplePast:
		return "ik werkte"
	case PresentPerfect:
		return "ik heb gewerkt / ik ben gekomen"
	case PastPerfect:
		return "ik had gewerkt / ik was gekomen"
	default:
		return ""
	}
}

// IsPerfect reports whether t is a compound (auxiliary + participle) tense.
func (t Tense) IsPerfect() bool {
	return t == PresentPerfect || t == PastPerfect
}

// AuxTense returns the simple tense in which the auxiliary of a perfect
// tense is itself conjugated. ok is false for the simple tenses, which
// carry no such reference.
func (t Tense) AuxTense() (aux Tense, ok bool) {
	switch t {
	case PresentPerfect:
		return Present, true
	case PastPerfect:
		return SimplePast, true
	default:
		return 0, false
	}
}

// ParseTense maps a short flag value ("ott", "ovt", "vtt", "vvt" — the
// dotted forms are accepted too) to a Tense.
func ParseTense(s string) (Tense, error) {
	switch s {
	case "ott", "o.t.t.":
		return Present, nil
	case "ovt", "o.v.t.":
		return SimplePast, nil
	case "vtt", "v.t.t.":
		return PresentPerfect, nil
	case "vvt", "v.v.t.":
		return PastPerfect, nil
	default:
		return 0, fmt.Errorf("unknown tense %q (want ott, ovt, vtt or vvt)", s)
	}
}
