package drill

import "github.com/mverbeek/verbuig/internal/lexicon"

// seedTemplates returns the prepared sentence set. Separable verbs get
// two variants for the simple tenses: one without and one with the
// detached particle at the end of the clause.
func seedTemplates() []Template {
	return []Template{
		// Present (o.t.t.)
		{ID: "ott_1", Text: "Ik ____ elke dag om acht uur.", Tense: lexicon.Present, Pronoun: lexicon.Ik, AllowedVerbs: []string{"opstaan"}, Hint: "o.t.t.", Note: "separable: particle at end for o.t.t."},
		{ID: "ott_1b", Text: "Ik ____ elke dag om acht uur op.", Tense: lexicon.Present, Pronoun: lexicon.Ik, AllowedVerbs: []string{"opstaan"}, Hint: "o.t.t."},
		{ID: "ott_2", Text: "Hij ____ in Amsterdam.", Tense: lexicon.Present, Pronoun: lexicon.Hij, AllowedVerbs: []string{"wonen"}, Hint: "o.t.t."},
		{ID: "ott_3", Text: "Wij ____ Nederlands in de avond.", Tense: lexicon.Present, Pronoun: lexicon.Wij, AllowedVerbs: []string{"leren", "studeren"}, Hint: "o.t.t."},
		{ID: "ott_4", Text: "Zij ____ elke vrijdag voetbal.", Tense: lexicon.Present, Pronoun: lexicon.ZijMv, AllowedVerbs: []string{"spelen"}, Hint: "o.t.t."},
		{ID: "ott_5", Text: "Jullie ____ vaak naar films.", Tense: lexicon.Present, Pronoun: lexicon.Jullie, AllowedVerbs: []string{"kijken"}, Hint: "o.t.t."},
		{ID: "ott_6", Text: "U ____ de afwas.", Tense: lexicon.Present, Pronoun: lexicon.U, AllowedVerbs: []string{"doen", "afwassen"}, Hint: "o.t.t."},
		{ID: "ott_6b", Text: "U ____ de afwas af.", Tense: lexicon.Present, Pronoun: lexicon.U, AllowedVerbs: []string{"afwassen"}, Hint: "o.t.t."},
		{ID: "ott_7", Text: "Jij ____ koffie in de ochtend.", Tense: lexicon.Present, Pronoun: lexicon.Jij, AllowedVerbs: []string{"drinken", "maken"}, Hint: "o.t.t."},
		{ID: "ott_8", Text: "Ik ____ in een ziekenhuis.", Tense: lexicon.Present, Pronoun: lexicon.Ik, AllowedVerbs: []string{"werken"}, Hint: "o.t.t."},
		{ID: "ott_9", Text: "Hij ____ snel naar het station.", Tense: lexicon.Present, Pronoun: lexicon.Hij, AllowedVerbs: []string{"lopen", "rijden", "gaan", "fietsen"}, Hint: "o.t.t."},
		{ID: "ott_10", Text: "Wij ____ het boek samen.", Tense: lexicon.Present, Pronoun: lexicon.Wij, AllowedVerbs: []string{"lezen"}, Hint: "o.t.t."},
		{ID: "ott_11", Text: "Zij ____ elke dag om zes uur.", Tense: lexicon.Present, Pronoun: lexicon.ZijMv, AllowedVerbs: []string{"komen", "opstaan"}, Hint: "o.t.t."},
		{ID: "ott_12", Text: "Ik ____ mijn vrienden in het weekend.", Tense: lexicon.Present, Pronoun: lexicon.Ik, AllowedVerbs: []string{"bellen", "opbellen"}, Hint: "o.t.t.", Note: "use opbellen for the separable variant"},
		{ID: "ott_13", Text: "Jullie ____ altijd op tijd.", Tense: lexicon.Present, Pronoun: lexicon.Jullie, AllowedVerbs: []string{"komen", "zijn"}, Hint: "o.t.t."},

		// Simple past (o.v.t.)
		{ID: "ovt_1", Text: "Gisteren ____ ik naar het park.", Tense: lexicon.SimplePast, Pronoun: lexicon.Ik, AllowedVerbs: []string{"lopen", "gaan", "fietsen", "rijden"}, Hint: "o.v.t."},
		{ID: "ovt_2", Text: "Vorige week ____ hij een auto.", Tense: lexicon.SimplePast, Pronoun: lexicon.Hij, AllowedVerbs: []string{"kopen"}, Hint: "o.v.t."},
		{ID: "ovt_3", Text: "Toen ____ wij in Utrecht.", Tense: lexicon.SimplePast, Pronoun: lexicon.Wij, AllowedVerbs: []string{"wonen"}, Hint: "o.v.t."},
		{ID: "ovt_4", Text: "Gisteren ____ jullie de afwas.", Tense: lexicon.SimplePast, Pronoun: lexicon.Jullie, AllowedVerbs: []string{"doen", "afwassen"}, Hint: "o.v.t."},
		{ID: "ovt_4b", Text: "Gisteren ____ jullie de afwas af.", Tense: lexicon.SimplePast, Pronoun: lexicon.Jullie, AllowedVerbs: []string{"afwassen"}, Hint: "o.v.t."},
		{ID: "ovt_5", Text: "Vorig jaar ____ zij naar Nederland.", Tense: lexicon.SimplePast, Pronoun: lexicon.ZijMv, AllowedVerbs: []string{"komen"}, Hint: "o.v.t."},
		{ID: "ovt_6", Text: "Eerder ____ ik weinig Nederlands.", Tense: lexicon.SimplePast, Pronoun: lexicon.Ik, AllowedVerbs: []string{"weten", "spreken"}, Hint: "o.v.t."},
		{ID: "ovt_7", Text: "Vanochtend ____ hij vroeg op.", Tense: lexicon.SimplePast, Pronoun: lexicon.Hij, AllowedVerbs: []string{"opstaan"}, Hint: "o.v.t."},
		{ID: "ovt_8", Text: "Gisteravond ____ we tot laat door.", Tense: lexicon.SimplePast, Pronoun: lexicon.Wij, AllowedVerbs: []string{"werken", "studeren"}, Hint: "o.v.t."},

		// Present perfect (v.t.t.)
		{ID: "vtt_1", Text: "Ik ____ al ontbeten.", Tense: lexicon.PresentPerfect, Pronoun: lexicon.Ik, AllowedVerbs: []string{"eten"}, Hint: "v.t.t."},
		{ID: "vtt_2", Text: "Hij ____ het boek gelezen.", Tense: lexicon.PresentPerfect, Pronoun: lexicon.Hij, AllowedVerbs: []string{"lezen"}, Hint: "v.t.t."},
		{ID: "vtt_3", Text: "Wij ____ gisteren een film gekeken.", Tense: lexicon.PresentPerfect, Pronoun: lexicon.Wij, AllowedVerbs: []string{"kijken"}, Hint: "v.t.t."},
		{ID: "vtt_4", Text: "Zij ____ met de auto naar huis gereden.", Tense: lexicon.PresentPerfect, Pronoun: lexicon.ZijMv, AllowedVerbs: []string{"rijden"}, Hint: "v.t.t."},
		{ID: "vtt_5", Text: "Jullie ____ de bloemen gekocht.", Tense: lexicon.PresentPerfect, Pronoun: lexicon.Jullie, AllowedVerbs: []string{"kopen"}, Hint: "v.t.t."},
		{ID: "vtt_6", Text: "U ____ alles zelf gedaan.", Tense: lexicon.PresentPerfect, Pronoun: lexicon.U, AllowedVerbs: []string{"doen"}, Hint: "v.t.t."},
		{ID: "vtt_7", Text: "Hij ____ te laat gekomen.", Tense: lexicon.PresentPerfect, Pronoun: lexicon.Hij, AllowedVerbs: []string{"komen"}, Hint: "v.t.t."},
		{ID: "vtt_8", Text: "Ik ____ om zeven uur opgestaan.", Tense: lexicon.PresentPerfect, Pronoun: lexicon.Ik, AllowedVerbs: []string{"opstaan"}, Hint: "v.t.t."},
		{ID: "vtt_9", Text: "Wij ____ het pakket meegebracht.", Tense: lexicon.PresentPerfect, Pronoun: lexicon.Wij, AllowedVerbs: []string{"meebrengen"}, Hint: "v.t.t."},
		{ID: "vtt_10", Text: "Zij ____ de tassen meegenomen.", Tense: lexicon.PresentPerfect, Pronoun: lexicon.ZijMv, AllowedVerbs: []string{"meenemen"}, Hint: "v.t.t."},

		// Past perfect (v.v.t.)
		{ID: "vvt_1", Text: "Toen ik aankwam, ____ hij al gegeten.", Tense: lexicon.PastPerfect, Pronoun: lexicon.Hij, AllowedVerbs: []string{"eten"}, Hint: "v.v.t."},
		{ID: "vvt_2", Text: "Wij ____ het werk al gedaan voordat hij kwam.", Tense: lexicon.PastPerfect, Pronoun: lexicon.Wij, AllowedVerbs: []string{"doen"}, Hint: "v.v.t."},
		{ID: "vvt_3", Text: "Zij ____ al naar buiten gegaan toen het regende.", Tense: lexicon.PastPerfect, Pronoun: lexicon.ZijMv, AllowedVerbs: []string{"gaan"}, Hint: "v.v.t."},
		{ID: "vvt_4", Text: "Ik ____ mijn telefoon niet meegenomen.", Tense: lexicon.PastPerfect, Pronoun: lexicon.Ik, AllowedVerbs: []string{"meenemen"}, Hint: "v.v.t."},
		{ID: "vvt_5", Text: "Jullie ____ het huiswerk al gemaakt.", Tense: lexicon.PastPerfect, Pronoun: lexicon.Jullie, AllowedVerbs: []string{"maken"}, Hint: "v.v.t."},
		{ID: "vvt_6", Text: "Hij ____ te lang gebleven.", Tense: lexicon.PastPerfect, Pronoun: lexicon.Hij, AllowedVerbs: []string{"blijven"}, Hint: "v.v.t."},
		{ID: "vvt_7", Text: "We ____ hem al opgebeld voordat we vertrokken.", Tense: lexicon.PastPerfect, Pronoun: lexicon.Wij, AllowedVerbs: []string{"opbellen"}, Hint: "v.v.t."},
		{ID: "vvt_8", Text: "Zij ____ net teruggekomen toen de bel ging.", Tense: lexicon.PastPerfect, Pronoun: lexicon.ZijMv, AllowedVerbs: []string{"terugkomen"}, Hint: "v.v.t."},
	}
}
