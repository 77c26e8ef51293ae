package text

import "strings"

// Lexicon is an ordered set of marker phrases matched against token streams.
// Each phrase is one or more lower-case words; a word ending in '*' matches
// any token starting with the rest of the word.
type Lexicon struct {
	phrases []phrase
}

type phrase struct {
	text  string
	words []string
}

func NewLexicon(entries ...string) Lexicon {
	l := Lexicon{phrases: make([]phrase, 0, len(entries))}
	for _, e := range entries {
		words := strings.Fields(Normalize(e))
		if len(words) == 0 {
			continue
		}
		l.phrases = append(l.phrases, phrase{text: strings.Join(words, " "), words: words})
	}
	return l
}

// Matches returns the distinct phrases found in tokens, in lexicon order.
func (l Lexicon) Matches(tokens []string) []string {
	var out []string
	for _, p := range l.phrases {
		if p.occurrences(tokens) > 0 {
			out = append(out, p.text)
		}
	}
	return out
}

// Count returns the total number of phrase occurrences in tokens.
func (l Lexicon) Count(tokens []string) int {
	n := 0
	for _, p := range l.phrases {
		n += p.occurrences(tokens)
	}
	return n
}

// Any reports whether at least one phrase occurs in tokens.
func (l Lexicon) Any(tokens []string) bool {
	for _, p := range l.phrases {
		if p.occurrences(tokens) > 0 {
			return true
		}
	}
	return false
}

// Find returns the matched words of every phrase occurrence in tokens, in text
// order. Occurrences do not overlap; at each position the first phrase in
// lexicon order wins. The result is never nil.
func (l Lexicon) Find(tokens []string) []string {
	out := []string{}
	for i := 0; i < len(tokens); {
		n := 0
		for _, p := range l.phrases {
			if i+len(p.words) <= len(tokens) && p.matchAt(tokens, i) {
				n = len(p.words)
				break
			}
		}
		if n == 0 {
			i++
			continue
		}
		out = append(out, strings.Join(tokens[i:i+n], " "))
		i += n
	}
	return out
}

func (l Lexicon) Len() int { return len(l.phrases) }

func (p phrase) occurrences(tokens []string) int {
	n := 0
	for i := 0; i+len(p.words) <= len(tokens); i++ {
		if p.matchAt(tokens, i) {
			n++
		}
	}
	return n
}

func (p phrase) matchAt(tokens []string, i int) bool {
	for k, w := range p.words {
		if !wordMatches(w, tokens[i+k]) {
			return false
		}
	}
	return true
}

func wordMatches(word, token string) bool {
	if prefix, ok := strings.CutSuffix(word, "*"); ok {
		return strings.HasPrefix(token, prefix)
	}
	return word == token
}
