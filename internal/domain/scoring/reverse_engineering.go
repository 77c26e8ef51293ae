package scoring

import (
	"strings"

	"github.com/humorlab/humorlab/internal/domain"
	"github.com/humorlab/humorlab/internal/domain/text"
)

type mechanism struct {
	name  string
	words text.Lexicon
	mark  string
}

const (
	mechAnthropomorphization = "anthropomorphization"
	mechEverydayFrustration  = "everyday_frustration"
	mechAbsurdTransfer       = "absurd_transfer"
	mechAggressiveTone       = "aggressive_tone"
	mechRhetoricalQuestion   = "rhetorical_question"
	mechMetaCommentary       = "meta_commentary"
)

var mechanisms = []mechanism{
	{name: mechAnthropomorphization, words: text.NewLexicon("czuj*", "myśl*", "marzy", "płacz*", "tęskn*", "obraż*", "kocha*", "samotn*", "umier*")},
	{name: mechEverydayFrustration, words: text.NewLexicon("nie działa", "znowu", "jak zawsze", "jak zwykle", "kolejk*", "korek", "korki", "poniedział*", "spóźni*", "zepsu*", "nie odpowiada", "rachun*")},
	{name: mechAbsurdTransfer, words: text.NewLexicon("to jak", "jakby", "niczym", "jako byt", "w roli")},
	{name: mechAggressiveTone, words: text.NewLexicon("do cholery", "kurde", "szlag", "wkurz*", "wściek*", "dość"), mark: "!"},
	{name: mechRhetoricalQuestion, words: text.NewLexicon("dlaczego", "czemu", "po co", "czy ktoś", "serio"), mark: "?"},
	{name: mechMetaCommentary, words: text.NewLexicon("ten żart", "to żart", "żart*", "puent*", "haha", "xd", "dowcip*")},
}

// replicablePairs are mechanism combinations that transfer well to new topics.
var replicablePairs = [][2]string{
	{mechAnthropomorphization, mechEverydayFrustration},
	{mechAbsurdTransfer, mechAggressiveTone},
	{mechRhetoricalQuestion, mechMetaCommentary},
}

var templateTokens = []string{"{", "[", "<x>", "<y>", "<variable>"}

const (
	maxMechanismMarkers = 2
	mechanismVarietyMin = 3
	emptyMechanismFloor = 2.0
)

// ScoreReverseEngineering extracts the mechanism behind the joke and checks
// whether it could be reused as a template.
func ScoreReverseEngineering(doc *text.Document, _ map[string]any) (domain.TheoryScore, error) {
	var t tally
	found := map[string]bool{}
	var names []string

	for _, m := range mechanisms {
		n := len(m.words.Matches(doc.Tokens))
		if m.mark != "" && strings.Contains(doc.Raw, m.mark) {
			n++
		}
		if n == 0 {
			continue
		}
		found[m.name] = true
		names = append(names, m.name)
		t.add(float64(capCount(n, maxMechanismMarkers))*1.5, "mechanism:"+m.name, "")
	}

	if len(names) == 0 {
		t.add(emptyMechanismFloor, "", "")
		return t.finish("no reusable mechanism found"), nil
	}
	t.notes = append(t.notes, "mechanisms: "+strings.Join(names, ", "))

	if len(names) >= mechanismVarietyMin {
		t.add(2, "mechanism_variety", "several mechanisms work together")
	}

	if len(names) >= 2 && (hasTemplate(doc.Lower) || hasReplicablePair(found)) {
		t.add(1.5, "replicable", "pattern can be reused as a template")
	}

	return t.finish(""), nil
}

func hasTemplate(lower string) bool {
	for _, tok := range templateTokens {
		if strings.Contains(lower, tok) {
			return true
		}
	}
	return false
}

func hasReplicablePair(found map[string]bool) bool {
	for _, p := range replicablePairs {
		if found[p[0]] && found[p[1]] {
			return true
		}
	}
	return false
}
