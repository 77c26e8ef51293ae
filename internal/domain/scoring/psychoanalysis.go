package scoring

import (
	"strings"

	"github.com/humorlab/humorlab/internal/domain"
	"github.com/humorlab/humorlab/internal/domain/text"
)

type mentalState struct {
	name  string
	words text.Lexicon
}

var mentalStates = []mentalState{
	{"despair", text.NewLexicon("rozpacz*", "beznadziej*", "nie ma sensu", "śmier*", "umier*", "pustk*", "nicoś*", "grób")},
	{"anger", text.NewLexicon("wkurz*", "wściek*", "złoś*", "nienawidz*", "irytuj*", "furi*", "szlag")},
	{"sadness", text.NewLexicon("smut*", "płacz*", "łz*", "samotn*", "tęskn*", "żal")},
	{"fear", text.NewLexicon("boję", "boi*", "strach*", "lęk*", "panik*", "przeraż*")},
	{"self_deprecation", text.NewLexicon("jestem beznadziejny", "jestem głupi", "jestem idiot*",
		"znowu ja", "nic mi nie wychodzi", "jak zwykle ja", "nieudacznik*", "porażk*", "frajer*")},
	{"projection", text.NewLexicon("wszyscy", "oni", "inni", "każdy", "nikt mnie")},
}

var (
	defenseMechanisms = text.NewLexicon(
		"chyba", "może", "w sumie", "to nie tak", "tylko żartuję", "nie żeby",
		"właściwie", "w zasadzie",
	)
	firstPerson = text.NewLexicon(
		"ja", "mnie", "mi", "mój", "moja", "moje", "mojego", "mną", "jestem",
		"czuję", "myślę",
	)
	blamePatterns = text.NewLexicon(
		"to twoja wina", "twoja wina", "przez ciebie", "przez was", "to wasza wina",
	)
	metaCommentary = text.NewLexicon(
		"ten żart", "to żart", "ten dowcip", "puent*", "haha", "xd", "nie śmieszne",
	)
)

const (
	maxDefenses    = 3
	maxSelfMention = 4
)

// ScorePsychoanalysis reads the narrator's state of mind: named emotions,
// defensive hedging, self-reference, blame and commentary on the joke itself.
func ScorePsychoanalysis(doc *text.Document, _ map[string]any) (domain.TheoryScore, error) {
	var t tally
	tokens := doc.Tokens

	var states []string
	for _, s := range mentalStates {
		if s.words.Any(tokens) {
			t.add(2, "state:"+s.name, "")
			states = append(states, strings.ReplaceAll(s.name, "_", "-"))
		}
	}
	if len(states) > 0 {
		t.notes = append(t.notes, "speaker shows "+strings.Join(states, ", "))
	}

	if d := defenseMechanisms.Matches(tokens); len(d) > 0 {
		t.add(float64(capCount(len(d), maxDefenses))*1.5, "defense:"+d[0], "hedging as a defense mechanism")
	}

	if n := firstPerson.Count(tokens); n > 0 {
		t.add(float64(capCount(n, maxSelfMention))*0.5, "first_person", "narrator talks about themselves")
	}

	if blamePatterns.Any(tokens) {
		t.add(2, "blame_projection", "blame is projected onto others")
	}

	if metaCommentary.Any(tokens) {
		t.add(2.5, "meta_commentary", "the joke comments on itself")
	}

	return t.finish("no psychological subtext found"), nil
}
