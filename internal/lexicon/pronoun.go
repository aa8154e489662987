package lexicon

// Pronoun identifies one of the seven fixed subject pronoun slots.
// Values are opaque keys; PronounLabel gives the display form.
type Pronoun int

const (
	Ik      Pronoun = iota // 1st singular
	Jij                    // 2nd informal singular (jij/je)
	U                      // 2nd formal
	Hij                    // 3rd singular (hij/zij/het)
	Wij                    // 1st plural (wij/we)
	Jullie                 // 2nd plural
	ZijMv                  // 3rd plural (zij/ze)

	pronounCount = 7
)

// Pronouns returns all seven pronouns in conventional paradigm order.
func Pronouns() []Pronoun {
	return []Pronoun{Ik, Jij, U, Hij, Wij, Jullie, ZijMv}
}

// PronounLabel returns the display form of a pronoun, e.g. "hij/zij/het".
func PronounLabel(p Pronoun) string {
	switch p {
	case Ik:
		return "ik"
	case Jij:
		return "jij/je"
	case U:
		return "u"
	case Hij:
		return "hij/zij/het"
	case Wij:
		return "wij/we"
	case Jullie:
		return "jullie"
	case ZijMv:
		return "zij/ze"
	default:
		return ""
	}
}
