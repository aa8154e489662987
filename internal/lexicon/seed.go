package lexicon

// seedVerbs returns the full verb dataset: common regular verbs, the
// high-frequency irregulars, and a handful of separable verbs.
// Form order follows Pronouns(): ik, jij/je, u, hij/zij/het, wij/we,
// jullie, zij/ze.
func seedVerbs() []Verb {
	return []Verb{
		// Regular verbs
		{
			Infinitive:     "werken",
			Gloss:          "to work",
			Kind:           KindRegular,
			Auxiliaries:    []Auxiliary{Hebben},
			PastParticiple: "gewerkt",
			PresentForms:   Forms{"werk", "werkt", "werkt", "werkt", "werken", "werken", "werken"},
			PastForms:      Forms{"werkte", "werkte", "werkte", "werkte", "werkten", "werkten", "werkten"},
		},
		{
			Infinitive:     "maken",
			Gloss:          "to make",
			Kind:           KindRegular,
			Auxiliaries:    []Auxiliary{Hebben},
			PastParticiple: "gemaakt",
			PresentForms:   Forms{"maak", "maakt", "maakt", "maakt", "maken", "maken", "maken"},
			PastForms:      Forms{"maakte", "maakte", "maakte", "maakte", "maakten", "maakten", "maakten"},
		},
		{
			Infinitive:     "spelen",
			Gloss:          "to play",
			Kind:           KindRegular,
			Auxiliaries:    []Auxiliary{Hebben},
			PastParticiple: "gespeeld",
			PresentForms:   Forms{"speel", "speelt", "speelt", "speelt", "spelen", "spelen", "spelen"},
			PastForms:      Forms{"speelde", "speelde", "speelde", "speelde", "speelden", "speelden", "speelden"},
		},
		{
			Infinitive:     "leren",
			Gloss:          "to learn/teach",
			Kind:           KindRegular,
			Auxiliaries:    []Auxiliary{Hebben},
			PastParticiple: "geleerd",
			PresentForms:   Forms{"leer", "leert", "leert", "leert", "leren", "leren", "leren"},
			PastForms:      Forms{"leerde", "leerde", "leerde", "leerde", "leerden", "leerden", "leerden"},
		},
		{
			Infinitive:     "wonen",
			Gloss:          "to live (reside)",
			Kind:           KindRegular,
			Auxiliaries:    []Auxiliary{Hebben},
			PastParticiple: "gewoond",
			PresentForms:   Forms{"woon", "woont", "woont", "woont", "wonen", "wonen", "wonen"},
			PastForms:      Forms{"woonde", "woonde", "woonde", "woonde", "woonden", "woonden", "woonden"},
		},
		{
			Infinitive:     "praten",
			Gloss:          "to talk",
			Kind:           KindRegular,
			Auxiliaries:    []Auxiliary{Hebben},
			PastParticiple: "gepraat",
			PresentForms:   Forms{"praat", "praat", "praat", "praat", "praten", "praten", "praten"},
			PastForms:      Forms{"praatte", "praatte", "praatte", "praatte", "praatten", "praatten", "praatten"},
		},
		{
			Infinitive:     "bellen",
			Gloss:          "to call",
			Kind:           KindRegular,
			Auxiliaries:    []Auxiliary{Hebben},
			PastParticiple: "gebeld",
			PresentForms:   Forms{"bel", "belt", "belt", "belt", "bellen", "bellen", "bellen"},
			PastForms:      Forms{"belde", "belde", "belde", "belde", "belden", "belden", "belden"},
		},
		{
			Infinitive:     "koken",
			Gloss:          "to cook",
			Kind:           KindRegular,
			Auxiliaries:    []Auxiliary{Hebben},
			PastParticiple: "gekookt",
			PresentForms:   Forms{"kook", "kookt", "kookt", "kookt", "koken", "koken", "koken"},
			PastForms:      Forms{"kookte", "kookte", "kookte", "kookte", "kookten", "kookten", "kookten"},
		},
		{
			Infinitive:     "studeren",
			Gloss:          "to study",
			Kind:           KindRegular,
			Auxiliaries:    []Auxiliary{Hebben},
			PastParticiple: "gestudeerd",
			PresentForms:   Forms{"studeer", "studeert", "studeert", "studeert", "studeren", "studeren", "studeren"},
			PastForms:      Forms{"studeerde", "studeerde", "studeerde", "studeerde", "studeerden", "studeerden", "studeerden"},
		},
		{
			Infinitive:     "reizen",
			Gloss:          "to travel",
			Kind:           KindRegular,
			Auxiliaries:    []Auxiliary{Hebben},
			PastParticiple: "gereisd",
			PresentForms:   Forms{"reis", "reist", "reist", "reist", "reizen", "reizen", "reizen"},
			PastForms:      Forms{"reisde", "reisde", "reisde", "reisde", "reisden", "reisden", "reisden"},
		},
		{
			Infinitive:     "zetten",
			Gloss:          "to put/place",
			Kind:           KindRegular,
			Auxiliaries:    []Auxiliary{Hebben},
			PastParticiple: "gezet",
			PresentForms:   Forms{"zet", "zet", "zet", "zet", "zetten", "zetten", "zetten"},
			PastForms:      Forms{"zette", "zette", "zette", "zette", "zetten", "zetten", "zetten"},
		},
		{
			Infinitive:     "fietsen",
			Gloss:          "to cycle",
			Kind:           KindRegular,
			Auxiliaries:    []Auxiliary{Hebben},
			PastParticiple: "gefietst",
			PresentForms:   Forms{"fiets", "fietst", "fietst", "fietst", "fietsen", "fietsen", "fietsen"},
			PastForms:      Forms{"fietste", "fietste", "fietste", "fietste", "fietsten", "fietsten", "fietsten"},
		},

		// Irregular verbs
		{
			Infinitive:     "zijn",
			Gloss:          "to be",
			Kind:           KindIrregular,
			Auxiliaries:    []Auxiliary{Zijn},
			PastParticiple: "geweest",
			PresentForms:   Forms{"ben", "bent", "bent", "is", "zijn", "zijn", "zijn"},
			PastForms:      Forms{"was", "was", "was", "was", "waren", "waren", "waren"},
		},
		{
			Infinitive:     "hebben",
			Gloss:          "to have",
			Kind:           KindIrregular,
			Auxiliaries:    []Auxiliary{Hebben},
			PastParticiple: "gehad",
			PresentForms:   Forms{"heb", "hebt", "heeft", "heeft", "hebben", "hebben", "hebben"},
			PastForms:      Forms{"had", "had", "had", "had", "hadden", "hadden", "hadden"},
		},
		{
			Infinitive:     "gaan",
			Gloss:          "to go",
			Kind:           KindIrregular,
			Auxiliaries:    []Auxiliary{Zijn},
			PastParticiple: "gegaan",
			PresentForms:   Forms{"ga", "gaat", "gaat", "gaat", "gaan", "gaan", "gaan"},
			PastForms:      Forms{"ging", "ging", "ging", "ging", "gingen", "gingen", "gingen"},
		},
		{
			Infinitive:     "komen",
			Gloss:          "to come",
			Kind:           KindIrregular,
			Auxiliaries:    []Auxiliary{Zijn},
			PastParticiple: "gekomen",
			PresentForms:   Forms{"kom", "komt", "komt", "komt", "komen", "komen", "komen"},
			PastForms:      Forms{"kwam", "kwam", "kwam", "kwam", "kwamen", "kwamen", "kwamen"},
		},
		{
			Infinitive:     "blijven",
			Gloss:          "to stay",
			Kind:           KindIrregular,
			Auxiliaries:    []Auxiliary{Zijn},
			PastParticiple: "gebleven",
			PresentForms:   Forms{"blijf", "blijft", "blijft", "blijft", "blijven", "blijven", "blijven"},
			PastForms:      Forms{"bleef", "bleef", "bleef", "bleef", "bleven", "bleven", "bleven"},
		},
		{
			Infinitive:     "worden",
			Gloss:          "to become",
			Kind:           KindIrregular,
			Auxiliaries:    []Auxiliary{Zijn},
			PastParticiple: "geworden",
			PresentForms:   Forms{"word", "wordt", "wordt", "wordt", "worden", "worden", "worden"},
			PastForms:      Forms{"werd", "werd", "werd", "werd", "werden", "werden", "werden"},
		},
		{
			Infinitive:     "vallen",
			Gloss:          "to fall",
			Kind:           KindIrregular,
			Auxiliaries:    []Auxiliary{Zijn},
			PastParticiple: "gevallen",
			PresentForms:   Forms{"val", "valt", "valt", "valt", "vallen", "vallen", "vallen"},
			PastForms:      Forms{"viel", "viel", "viel", "viel", "vielen", "vielen", "vielen"},
		},
		{
			Infinitive:     "beginnen",
			Gloss:          "to begin",
			Kind:           KindIrregular,
			Auxiliaries:    []Auxiliary{Zijn},
			PastParticiple: "begonnen",
			PresentForms:   Forms{"begin", "begint", "begint", "begint", "beginnen", "beginnen", "beginnen"},
			PastForms:      Forms{"begon", "begon", "begon", "begon", "begonnen", "begonnen", "begonnen"},
		},
		{
			Infinitive:     "lopen",
			Gloss:          "to walk",
			Kind:           KindIrregular,
			Auxiliaries:    []Auxiliary{Hebben, Zijn},
			PastParticiple: "gelopen",
			PresentForms:   Forms{"loop", "loopt", "loopt", "loopt", "lopen", "lopen", "lopen"},
			PastForms:      Forms{"liep", "liep", "liep", "liep", "liepen", "liepen", "liepen"},
		},
		{
			Infinitive:     "rijden",
			Gloss:          "to drive/ride",
			Kind:           KindIrregular,
			Auxiliaries:    []Auxiliary{Hebben, Zijn},
			PastParticiple: "gereden",
			PresentForms:   Forms{"rijd", "rijdt", "rijdt", "rijdt", "rijden", "rijden", "rijden"},
			PastForms:      Forms{"reed", "reed", "reed", "reed", "reden", "reden", "reden"},
		},
		{
			Infinitive:     "kijken",
			Gloss:          "to look/watch",
			Kind:           KindIrregular,
			Auxiliaries:    []Auxiliary{Hebben},
			PastParticiple: "gekeken",
			PresentForms:   Forms{"kijk", "kijkt", "kijkt", "kijkt", "kijken", "kijken", "kijken"},
			PastForms:      Forms{"keek", "keek", "keek", "keek", "keken", "keken", "keken"},
		},
		{
			Infinitive:     "kopen",
			Gloss:          "to buy",
			Kind:           KindIrregular,
			Auxiliaries:    []Auxiliary{Hebben},
			PastParticiple: "gekocht",
			PresentForms:   Forms{"koop", "koopt", "koopt", "koopt", "kopen", "kopen", "kopen"},
			PastForms:      Forms{"kocht", "kocht", "kocht", "kocht", "kochten", "kochten", "kochten"},
		},
		{
			Infinitive:     "denken",
			Gloss:          "to think",
			Kind:           KindIrregular,
			Auxiliaries:    []Auxiliary{Hebben},
			PastParticiple: "gedacht",
			PresentForms:   Forms{"denk", "denkt", "denkt", "denkt", "denken", "denken", "denken"},
			PastForms:      Forms{"dacht", "dacht", "dacht", "dacht", "dachten", "dachten", "dachten"},
		},
		{
			Infinitive:     "geven",
			Gloss:          "to give",
			Kind:           KindIrregular,
			Auxiliaries:    []Auxiliary{Hebben},
			PastParticiple: "gegeven",
			PresentForms:   Forms{"geef", "geeft", "geeft", "geeft", "geven", "geven", "geven"},
			PastForms:      Forms{"gaf", "gaf", "gaf", "gaf", "gaven", "gaven", "gaven"},
		},
		{
			Infinitive:     "zien",
			Gloss:          "to see",
			Kind:           KindIrregular,
			Auxiliaries:    []Auxiliary{Hebben},
			PastParticiple: "gezien",
			PresentForms:   Forms{"zie", "ziet", "ziet", "ziet", "zien", "zien", "zien"},
			PastForms:      Forms{"zag", "zag", "zag", "zag", "zagen", "zagen", "zagen"},
		},
		{
			Infinitive:     "vinden",
			Gloss:          "to find",
			Kind:           KindIrregular,
			Auxiliaries:    []Auxiliary{Hebben},
			PastParticiple: "gevonden",
			PresentForms:   Forms{"vind", "vindt", "vindt", "vindt", "vinden", "vinden", "vinden"},
			PastForms:      Forms{"vond", "vond", "vond", "vond", "vonden", "vonden", "vonden"},
		},
		{
			Infinitive:     "weten",
			Gloss:          "to know",
			Kind:           KindIrregular,
			Auxiliaries:    []Auxiliary{Hebben},
			PastParticiple: "geweten",
			PresentForms:   Forms{"weet", "weet", "weet", "weet", "weten", "weten", "weten"},
			PastForms:      Forms{"wist", "wist", "wist", "wist", "wisten", "wisten", "wisten"},
		},
		{
			Infinitive:     "nemen",
			Gloss:          "to take",
			Kind:           KindIrregular,
			Auxiliaries:    []Auxiliary{Hebben},
			PastParticiple: "genomen",
			PresentForms:   Forms{"neem", "neemt", "neemt", "neemt", "nemen", "nemen", "nemen"},
			PastForms:      Forms{"nam", "nam", "nam", "nam", "namen", "namen", "namen"},
		},
		{
			Infinitive:     "drinken",
			Gloss:          "to drink",
			Kind:           KindIrregular,
			Auxiliaries:    []Auxiliary{Hebben},
			PastParticiple: "gedronken",
			PresentForms:   Forms{"drink", "drinkt", "drinkt", "drinkt", "drinken", "drinken", "drinken"},
			PastForms:      Forms{"dronk", "dronk", "dronk", "dronk", "dronken", "dronken", "dronken"},
		},
		{
			Infinitive:     "slapen",
			Gloss:          "to sleep",
			Kind:           KindIrregular,
			Auxiliaries:    []Auxiliary{Hebben},
			PastParticiple: "geslapen",
			PresentForms:   Forms{"slaap", "slaapt", "slaapt", "slaapt", "slapen", "slapen", "slapen"},
			PastForms:      Forms{"sliep", "sliep", "sliep", "sliep", "sliepen", "sliepen", "sliepen"},
		},
		{
			Infinitive:     "houden",
			Gloss:          "to hold/like",
			Kind:           KindIrregular,
			Auxiliaries:    []Auxiliary{Hebben},
			PastParticiple: "gehouden",
			PresentForms:   Forms{"houd", "houdt", "houdt", "houdt", "houden", "houden", "houden"},
			PastForms:      Forms{"hield", "hield", "hield", "hield", "hielden", "hielden", "hielden"},
		},
		{
			Infinitive:     "staan",
			Gloss:          "to stand",
			Kind:           KindIrregular,
			Auxiliaries:    []Auxiliary{Hebben},
			PastParticiple: "gestaan",
			PresentForms:   Forms{"sta", "staat", "staat", "staat", "staan", "staan", "staan"},
			PastForms:      Forms{"stond", "stond", "stond", "stond", "stonden", "stonden", "stonden"},
		},
		{
			Infinitive:     "lezen",
			Gloss:          "to read",
			Kind:           KindIrregular,
			Auxiliaries:    []Auxiliary{Hebben},
			PastParticiple: "gelezen",
			PresentForms:   Forms{"lees", "leest", "leest", "leest", "lezen", "lezen", "lezen"},
			PastForms:      Forms{"las", "las", "las", "las", "lazen", "lazen", "lazen"},
		},
		{
			Infinitive:     "schrijven",
			Gloss:          "to write",
			Kind:           KindIrregular,
			Auxiliaries:    []Auxiliary{Hebben},
			PastParticiple: "geschreven",
			PresentForms:   Forms{"schrijf", "schrijft", "schrijft", "schrijft", "schrijven", "schrijven", "schrijven"},
			PastForms:      Forms{"schreef", "schreef", "schreef", "schreef", "schreven", "schreven", "schreven"},
		},
		{
			Infinitive:     "spreken",
			Gloss:          "to speak",
			Kind:           KindIrregular,
			Auxiliaries:    []Auxiliary{Hebben},
			PastParticiple: "gesproken",
			PresentForms:   Forms{"spreek", "spreekt", "spreekt", "spreekt", "spreken", "spreken", "spreken"},
			PastForms:      Forms{"sprak", "sprak", "sprak", "sprak", "spraken", "spraken", "spraken"},
		},
		{
			Infinitive:     "doen",
			Gloss:          "to do",
			Kind:           KindIrregular,
			Auxiliaries:    []Auxiliary{Hebben},
			PastParticiple: "gedaan",
			PresentForms:   Forms{"doe", "doet", "doet", "doet", "doen", "doen", "doen"},
			PastForms:      Forms{"deed", "deed", "deed", "deed", "deden", "deden", "deden"},
		},
		{
			Infinitive:     "eten",
			Gloss:          "to eat",
			Kind:           KindIrregular,
			Auxiliaries:    []Auxiliary{Hebben},
			PastParticiple: "gegeten",
			PresentForms:   Forms{"eet", "eet", "eet", "eet", "eten", "eten", "eten"},
			PastForms:      Forms{"at", "at", "at", "at", "aten", "aten", "aten"},
		},
		{
			Infinitive:     "helpen",
			Gloss:          "to help",
			Kind:           KindIrregular,
			Auxiliaries:    []Auxiliary{Hebben},
			PastParticiple: "geholpen",
			PresentForms:   Forms{"help", "helpt", "helpt", "helpt", "helpen", "helpen", "helpen"},
			PastForms:      Forms{"hielp", "hielp", "hielp", "hielp", "hielpen", "hielpen", "hielpen"},
		},

		// Separable verbs. Finite forms are the bare stem; templates carry
		// the detached particle at the end of the clause.
		{
			Infinitive:     "opstaan",
			Gloss:          "to get up",
			Kind:           KindSeparable,
			Auxiliaries:    []Auxiliary{Zijn},
			PastParticiple: "opgestaan",
			Prefix:         "op",
			PresentForms:   Forms{"sta", "staat", "staat", "staat", "staan", "staan", "staan"},
			PastForms:      Forms{"stond", "stond", "stond", "stond", "stonden", "stonden", "stonden"},
		},
		{
			Infinitive:     "afwassen",
			Gloss:          "to do the dishes",
			Kind:           KindSeparable,
			Auxiliaries:    []Auxiliary{Hebben},
			PastParticiple: "afgewassen",
			Prefix:         "af",
			PresentForms:   Forms{"was", "wast", "wast", "wast", "wassen", "wassen", "wassen"},
			PastForms:      Forms{"waste", "waste", "waste", "waste", "wasten", "wasten", "wasten"},
		},
		{
			Infinitive:     "opbellen",
			Gloss:          "to call (on the phone)",
			Kind:           KindSeparable,
			Auxiliaries:    []Auxiliary{Hebben},
			PastParticiple: "opgebeld",
			Prefix:         "op",
			PresentForms:   Forms{"bel", "belt", "belt", "belt", "bellen", "bellen", "bellen"},
			PastForms:      Forms{"belde", "belde", "belde", "belde", "belden", "belden", "belden"},
		},
		{
			Infinitive:     "terugkomen",
			Gloss:          "to come back",
			Kind:           KindSeparable,
			Auxiliaries:    []Auxiliary{Zijn},
			PastParticiple: "teruggekomen",
			Prefix:         "terug",
			PresentForms:   Forms{"kom", "komt", "komt", "komt", "komen", "komen", "komen"},
			PastForms:      Forms{"kwam", "kwam", "kwam", "kwam", "kwamen", "kwamen", "kwamen"},
		},
		{
			Infinitive:     "meenemen",
			Gloss:          "to take along",
			Kind:           KindSeparable,
			Auxiliaries:    []Auxiliary{Hebben},
			PastParticiple: "meegenomen",
			Prefix:         "mee",
			PresentForms:   Forms{"neem", "neemt", "neemt", "neemt", "nemen", "nemen", "nemen"},
			PastForms:      Forms{"nam", "nam", "nam", "nam", "namen", "namen", "namen"},
		},
		{
			Infinitive:     "meebrengen",
			Gloss:          "to bring along",
			Kind:           KindSeparable,
			Auxiliaries:    []Auxiliary{Hebben},
			PastParticiple: "meegebracht",
			Prefix:         "mee",
			PresentForms:   Forms{"breng", "brengt", "brengt", "brengt", "brengen", "brengen", "brengen"},
			PastForms:      Forms{"bracht", "bracht", "bracht", "bracht", "brachten", "brachten", "brachten"},
		},
	}
}
