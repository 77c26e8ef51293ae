package text

import (
	"strings"
	"unicode/utf8"
)

// Sentence is one segment of a Document.
type Sentence struct {
	Text   string
	Tokens []string
}

// Len is the sentence length in runes.
func (s Sentence) Len() int {
	return utf8.RuneCountInString(s.Text)
}

// Document is the preprocessed form of a single input. It is built once per
// analysis and read concurrently by every analyzer, so it must not be mutated
// after NewDocument returns.
type Document struct {
	Raw       string
	Lower     string
	Tokens    []string
	Sentences []Sentence
}

func NewDocument(raw string) *Document {
	raw = strings.TrimSpace(nfc(raw))
	doc := &Document{
		Raw:    raw,
		Lower:  lower(raw),
		Tokens: Tokens(raw),
	}
	for _, s := range Sentences(raw) {
		doc.Sentences = append(doc.Sentences, Sentence{Text: s, Tokens: Tokens(s)})
	}
	return doc
}

// Len is the document length in runes.
func (d *Document) Len() int {
	return utf8.RuneCountInString(d.Raw)
}

// SentenceLengths returns the rune length of each sentence in order.
func (d *Document) SentenceLengths() []int {
	out := make([]int, len(d.Sentences))
	for i, s := range d.Sentences {
		out[i] = s.Len()
	}
	return out
}

// Last returns the final sentence, or an empty one for an empty document.
func (d *Document) Last() Sentence {
	if len(d.Sentences) == 0 {
		return Sentence{}
	}
	return d.Sentences[len(d.Sentences)-1]
}

// CountMarks counts raw occurrences of each punctuation pattern in the
// original text. Overlapping patterns are counted independently.
func (d *Document) CountMarks(marks ...string) int {
	n := 0
	for _, m := range marks {
		n += strings.Count(d.Raw, m)
	}
	return n
}

// HasMark reports whether any of marks occurs in the original text.
func (d *Document) HasMark(marks ...string) bool {
	for _, m := range marks {
		if strings.Contains(d.Raw, m) {
			return true
		}
	}
	return false
}
