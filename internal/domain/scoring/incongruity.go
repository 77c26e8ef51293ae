package scoring

import (
	"strings"

	"github.com/humorlab/humorlab/internal/domain"
	"github.com/humorlab/humorlab/internal/domain/text"
)

// domainPair is two semantic domains that should not meet in one sentence.
type domainPair struct {
	name string
	a, b text.Lexicon
}

var incongruityPairs = []domainPair{
	{
		name: "high_low",
		a: text.NewLexicon("szanowny", "uprzejmie", "niniejszym", "egzystencj*", "filozof*",
			"metafizy*", "transcendent*", "kontempl*"),
		b: text.NewLexicon("kurde", "spoko", "siema", "ziom*", "no weź", "masakra", "lol", "gówn*"),
	},
	{name: "tech_human", a: techTerms, b: emotionTerms},
	{
		name: "corporate_everyday",
		a: text.NewLexicon("firma", "firmy", "firmie", "korpo*", "korporacj*", "prezes*",
			"zarząd*", "kpi", "deadline*", "meeting*", "synerg*", "formularz*", "klient*"),
		b: text.NewLexicon("działk*", "kapust*", "obiad*", "babci*", "babcia", "teściow*",
			"piwo", "piwa", "grill*", "ogórk*", "kot", "kota", "pies", "psa"),
	},
	{
		name: "digital_physical",
		a: text.NewLexicon("cyfrow*", "wirtual*", "online", "chmur*", "plik*", "wifi",
			"internet*", "aplikacj*"),
		b: text.NewLexicon("ciało", "ciała", "ręk*", "nog*", "ścian*", "krzesł*", "kamień",
			"kamienia", "łopat*", "benzyn*", "gwóźdź"),
	},
	{
		name: "science_chaos",
		a: text.NewLexicon("algorytm*", "dane", "danych", "statysty*", "logik*", "matematy*",
			"nauk*", "obliczen*"),
		b: text.NewLexicon("chaos*", "bałagan*", "przypadk*", "magi*", "los", "losu",
			"zabobon*", "horoskop*", "wróżk*"),
	},
}

// semanticClashes are specific word pairs known to collide.
var semanticClashes = [][2]string{
	{"kod*", "samotn*"},
	{"cyfrow*", "śmier*"},
	{"serwer*", "depresj*"},
	{"algorytm*", "miłoś*"},
	{"ai", "uczuci*"},
	{"api", "samotn*"},
	{"internet*", "umier*"},
	{"router*", "tęskn*"},
}

var clashLexicons = func() [][2]text.Lexicon {
	out := make([][2]text.Lexicon, len(semanticClashes))
	for i, c := range semanticClashes {
		out[i] = [2]text.Lexicon{text.NewLexicon(c[0]), text.NewLexicon(c[1])}
	}
	return out
}()

// ScoreIncongruity rewards collisions between mutually exclusive domains,
// above all technology described in terms of human feelings.
func ScoreIncongruity(doc *text.Document, _ map[string]any) (domain.TheoryScore, error) {
	var t tally
	tokens := doc.Tokens

	var collided []string
	for _, p := range incongruityPairs {
		if p.a.Any(tokens) && p.b.Any(tokens) {
			t.add(2.5, "pair:"+p.name, "")
			collided = append(collided, strings.ReplaceAll(p.name, "_", "/"))
		}
	}
	if len(collided) > 0 {
		t.notes = append(t.notes, "domains collide: "+strings.Join(collided, ", "))
	}

	if c := contrastMarkers.Matches(tokens); len(c) > 0 {
		t.add(1.5, "contrast:"+c[0], "explicit contrast marker")
	}

	hasTech := techTerms.Any(tokens)
	if hasTech && emotionTerms.Any(tokens) {
		t.add(2, "anthropomorphization", "technology given human emotions")
	}

	for i, c := range clashLexicons {
		if c[0].Any(tokens) && c[1].Any(tokens) {
			t.add(1.5, "clash:"+semanticClashes[i][0]+"+"+semanticClashes[i][1], "known semantic clash")
			break
		}
	}

	if hasTech && despairTerms.Any(tokens) {
		t.add(3, "tech_despair", "technical problem meets existential despair")
	}

	return t.finish("no conflicting domains found"), nil
}
