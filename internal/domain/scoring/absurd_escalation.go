package scoring

import (
	"fmt"

	"github.com/humorlab/humorlab/internal/domain"
	"github.com/humorlab/humorlab/internal/domain/text"
)

type absurdTier struct {
	level int
	words text.Lexicon
}

// absurdTiers run from mild oddity to cosmic nothingness, highest first.
var absurdTiers = []absurdTier{
	{10, text.NewLexicon("egzystencj*", "nicoś*", "pustk*", "wieczn*", "nieskończon*", "śmier*", "bóg", "boga", "eternity")},
	{7, text.NewLexicon("kosmiczn*", "kosmos*", "wszechświat*", "galakty*", "cywilizacj*", "ludzkoś*", "universe")},
	{5, text.NewLexicon("niemożliw*", "katastrof*", "apokalip*", "koniec świata", "chaos*", "padł*", "wybuch*")},
	{3, text.NewLexicon("absurd*", "niedorzeczn*", "szalon*", "bez sensu", "crazy")},
	{1, text.NewLexicon("dziwn*", "nietypow*", "zabawn*", "śmieszn*", "weird", "funny")},
}

var escalationMarkers = text.NewLexicon(
	"potem", "następnie", "w dodatku", "co gorsza", "na domiar złego", "do tego",
	"nawet", "wreszcie", "teraz", "już",
)

var cosmicDespair = text.NewLexicon(
	"pustk*", "nicoś*", "śmier*", "umier*", "samotn*", "rozpacz*", "wieczn*",
	"kosmiczn*", "beznadziej*",
)

const (
	maxEscalationMarkers = 3
	maxHyperboles        = 3
)

// ScoreAbsurdEscalation rates how far the absurdity climbs and whether it
// climbs steadily from sentence to sentence.
func ScoreAbsurdEscalation(doc *text.Document, _ map[string]any) (domain.TheoryScore, error) {
	var t tally

	if peak := absurdLevel(doc.Tokens); peak > 0 {
		t.add(float64(peak)*0.8, fmt.Sprintf("absurd_level:%d", peak), fmt.Sprintf("absurdity peaks at level %d", peak))
	}

	if m := escalationMarkers.Matches(doc.Tokens); len(m) > 0 {
		n := capCount(len(m), maxEscalationMarkers)
		t.add(float64(n)*1.5, "escalation_markers", "escalation signalled by \""+m[0]+"\"")
	}

	if len(doc.Sentences) >= 2 {
		levels := make([]int, len(doc.Sentences))
		for i, s := range doc.Sentences {
			levels[i] = absurdLevel(s.Tokens)
		}
		if nonDecreasing(levels) && levels[len(levels)-1] > levels[0] {
			t.add(2, "monotonic_escalation", "absurdity grows with every sentence")
		}
	}

	if techFailure.Any(doc.Tokens) && cosmicDespair.Any(doc.Tokens) {
		t.add(2.5, "tech_failure_despair", "a technical failure escalates into existential despair")
	}

	if h := hyperboleTerms.Matches(doc.Tokens); len(h) > 0 {
		t.add(float64(capCount(len(h), maxHyperboles)), "hyperbole", "hyperbolic language")
	}

	return t.finish("no escalation of the absurd"), nil
}

// absurdLevel returns the highest tier matched by tokens, or 0.
func absurdLevel(tokens []string) int {
	for _, tier := range absurdTiers {
		if tier.words.Any(tokens) {
			return tier.level
		}
	}
	return 0
}

func nonDecreasing(xs []int) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i] < xs[i-1] {
			return false
		}
	}
	return true
}
