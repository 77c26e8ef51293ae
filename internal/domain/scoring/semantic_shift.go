package scoring

import (
	"strings"

	"github.com/humorlab/humorlab/internal/domain"
	"github.com/humorlab/humorlab/internal/domain/text"
)

var (
	ambiguousWords = text.NewLexicon(
		"zamek", "zamku", "klucz*", "mysz*", "okno", "okna", "pióro", "chmur*",
		"sieć", "sieci", "wirus*", "pamięć", "pamięci", "bug", "język*", "ogon*",
		"korzeń", "pająk*", "cloud", "mouse", "window*",
	)
	metaphorMarkers = text.NewLexicon(
		"jak", "jakby", "niczym", "przypomina", "wygląda jak", "brzmi jak",
		"jest jak", "podobnie", "like",
	)
)

// literalizations pair a figurative phrase with words that take it literally.
var literalizations = [][2]text.Lexicon{
	{text.NewLexicon("nie mam internetu"), text.NewLexicon("umier*", "śmier*", "duszę", "oddech*")},
	{text.NewLexicon("złamane serce"), text.NewLexicon("kardiolog*", "gips*", "szpital*")},
	{text.NewLexicon("chmur*"), text.NewLexicon("deszcz*", "parasol*", "burz*")},
	{text.NewLexicon("wirus*"), text.NewLexicon("lekarz*", "szczepi*", "gorączk*", "katar*")},
	{text.NewLexicon("mysz*"), text.NewLexicon("kot", "kota", "ser", "sera")},
	{text.NewLexicon("sieć", "sieci"), text.NewLexicon("ryb*", "rybak*")},
	{text.NewLexicon("wypalenie", "wypalony", "wypalona"), text.NewLexicon("strażak*", "gaśnic*")},
}

const (
	maxAmbiguous = 3
	maxMetaphors = 2
)

// ScoreSemanticShift detects words used in two senses, metaphor markers,
// quoted irony and metaphors taken literally.
func ScoreSemanticShift(doc *text.Document, _ map[string]any) (domain.TheoryScore, error) {
	var t tally
	tokens := doc.Tokens

	amb := ambiguousWords.Matches(tokens)
	for _, w := range amb[:capCount(len(amb), maxAmbiguous)] {
		t.add(1.5, "ambiguous:"+w, "")
	}
	if len(amb) > 0 {
		t.notes = append(t.notes, "ambiguous words: "+strings.Join(amb, ", "))
	}

	mets := metaphorMarkers.Matches(tokens)
	for _, m := range mets[:capCount(len(mets), maxMetaphors)] {
		t.add(2, "metaphor:"+m, "")
	}
	if len(mets) > 0 {
		t.notes = append(t.notes, "comparison or metaphor marker")
	}

	if hasQuotePair(doc.Raw) {
		t.add(1.5, "quotes", "quoted phrase suggests a shifted meaning")
	}

	for _, l := range literalizations {
		if l[0].Any(tokens) && l[1].Any(tokens) {
			t.add(2.5, "literalization", "metaphor taken literally")
			break
		}
	}

	if strings.Contains(doc.Raw, "(") && strings.Contains(doc.Raw, ")") {
		t.add(1, "aside", "parenthetical aside")
	}

	return t.finish("no shift of meaning found"), nil
}

func hasQuotePair(raw string) bool {
	if strings.Count(raw, `"`) >= 2 {
		return true
	}
	return (strings.Contains(raw, "„") && strings.Contains(raw, "”")) ||
		(strings.Contains(raw, "«") && strings.Contains(raw, "»"))
}
