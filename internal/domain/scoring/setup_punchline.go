package scoring

import (
	"strings"
	"unicode/utf8"

	"github.com/humorlab/humorlab/internal/domain"
	"github.com/humorlab/humorlab/internal/domain/text"
)

var (
	setupMarkers = text.NewLexicon(
		"kiedy", "gdy", "jeśli", "jeżeli", "zawsze", "często", "zazwyczaj",
		"normalnie", "zwykle", "wczoraj", "dziś", "dzisiaj", "rano",
		"pewnego dnia", "przychodzi", "when", "every time", "yesterday",
	)
	twistMarkers = text.NewLexicon(
		"ale", "jednak", "niestety", "okazuje się", "nagle", "wtedy", "więc",
		"zamiast", "niż", "a tu", "tymczasem", "but", "suddenly", "instead",
	)
	punchlineMarks = []string{"—", "–", "...", "…", ":", "!"}
)

const (
	longOpening     = 20
	shortJoke       = 50
	longJoke        = 300
	shorterEnding   = 0.7
	afterQuestionGT = 10
)

// ScoreSetupPunchline looks for the three structural zones of a joke: a
// setup, a twist and a punchline, preferring a short final sentence.
func ScoreSetupPunchline(doc *text.Document, _ map[string]any) (domain.TheoryScore, error) {
	var t tally
	lens := doc.SentenceLengths()

	setup := setupMarkers.Matches(doc.Tokens)
	switch {
	case len(setup) > 0:
		t.add(3, "setup:"+setup[0], "setup introduced with \""+setup[0]+"\"")
	case len(lens) >= 2 && lens[0] > longOpening:
		t.add(3, "setup:long_opening", "long opening sentence works as setup")
	}

	if twist := twistMarkers.Matches(doc.Tokens); len(twist) > 0 {
		t.add(3, "twist:"+twist[0], "twist signalled by \""+twist[0]+"\"")
	}

	if hasPunchline(doc, lens) {
		t.add(3, "punchline", "punchline zone detected")
	}

	if len(lens) >= 2 {
		t.add(1, "multi_sentence", "")
		if strings.Contains(doc.Last().Text, "!") || isShortestLast(lens) {
			t.add(0.5, "punchline_last", "punchline lands in the last sentence")
		}
	} else if strings.Contains(doc.Last().Text, "!") {
		t.add(0.5, "punchline_last", "")
	}

	switch n := doc.Len(); {
	case n < shortJoke:
		t.add(-1, "", "very short text limits structure")
	case n > longJoke:
		t.add(-0.5, "", "long text dilutes the punchline")
	}

	return t.finish("no setup-punchline structure found"), nil
}

func hasPunchline(doc *text.Document, lens []int) bool {
	if doc.HasMark(punchlineMarks...) {
		return true
	}
	if k := len(lens); k >= 2 && float64(lens[k-1]) < shorterEnding*float64(lens[k-2]) {
		return true
	}
	if _, after, ok := strings.Cut(doc.Raw, "?"); ok && utf8.RuneCountInString(strings.TrimSpace(after)) > afterQuestionGT {
		return true
	}
	return false
}

func isShortestLast(lens []int) bool {
	last := lens[len(lens)-1]
	for _, l := range lens[:len(lens)-1] {
		if l <= last {
			return false
		}
	}
	return true
}
