package scoring

import (
	"fmt"

	"github.com/humorlab/humorlab/internal/domain"
	"github.com/humorlab/humorlab/internal/domain/text"
)

// humorAtom is one micro-device. Atoms are counted by words, by raw
// punctuation patterns, or by a custom detector.
type humorAtom struct {
	name   string
	weight float64
	words  text.Lexicon
	marks  []string
	detect func(*text.Document) int
}

var humorAtoms = []humorAtom{
	{name: "hyperbole", weight: 1.0, words: hyperboleTerms},
	{name: "contrast", weight: 1.5, words: contrastMarkers},
	{name: "anticlimax", weight: 1.5, words: text.NewLexicon("i nic", "ale nic", "to nic", "i tyle", "koniec końców", "w sumie")},
	{name: "self_deprecation", weight: 1.2, words: text.NewLexicon("jestem głupi", "jestem beznadziejny", "jak zwykle ja", "znowu ja", "moja wina", "nieudacznik*", "porażk*", "frajer*")},
	{name: "sarcasm", weight: 1.8, words: text.NewLexicon("oczywiście", "jasne", "brawo", "genialnie", "super", "świetnie", "wspaniale", "no pewnie", "gratulacje")},
	{name: "absurd_syntax", weight: 1.0, marks: []string{"???", "!?", "?!", "!!!"}},
	{name: "register_shift", weight: 1.5, detect: func(doc *text.Document) int {
		if registerShift(doc.Tokens) {
			return 1
		}
		return 0
	}},
}

const (
	maxAtomCount    = 3
	atomVarietyMin  = 3
	emptyAtomsFloor = 1.0
)

func (a humorAtom) count(doc *text.Document) int {
	switch {
	case a.detect != nil:
		return a.detect(doc)
	case len(a.marks) > 0:
		return doc.CountMarks(a.marks...)
	default:
		return a.words.Count(doc.Tokens)
	}
}

// ScoreHumorAtoms sums weighted counts of humor micro-devices. Text without
// any atom still gets a small floor score.
func ScoreHumorAtoms(doc *text.Document, _ map[string]any) (domain.TheoryScore, error) {
	var t tally
	kinds := 0
	for _, a := range humorAtoms {
		n := capCount(a.count(doc), maxAtomCount)
		if n == 0 {
			continue
		}
		kinds++
		t.add(float64(n)*a.weight, fmt.Sprintf("%s:%d", a.name, n), "")
	}

	if kinds == 0 {
		t.add(emptyAtomsFloor, "", "")
		return t.finish("no humor atoms found"), nil
	}
	t.notes = append(t.notes, fmt.Sprintf("humor atom kinds: %d", kinds))
	if kinds >= atomVarietyMin {
		t.add(1.5, "atom_variety", "rich mix of devices")
	}
	return t.finish(""), nil
}
