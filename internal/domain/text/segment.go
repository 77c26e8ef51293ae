package text

import (
	"strings"
	"unicode"

	"github.com/fatih/camelcase"
)

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?' || r == '…'
}

// Sentences splits s after each run of terminal punctuation that is followed
// by whitespace or the end of the text. Punctuation stays with its sentence.
func Sentences(s string) []string {
	runes := []rune(s)
	var out []string
	start := 0
	for i := 0; i < len(runes); i++ {
		if !isTerminator(runes[i]) {
			continue
		}
		j := i
		for j+1 < len(runes) && isTerminator(runes[j+1]) {
			j++
		}
		if j+1 == len(runes) || unicode.IsSpace(runes[j+1]) {
			if frag := strings.TrimSpace(string(runes[start : j+1])); frag != "" {
				out = append(out, frag)
			}
			start = j + 1
		}
		i = j
	}
	if start < len(runes) {
		if frag := strings.TrimSpace(string(runes[start:])); frag != "" {
			out = append(out, frag)
		}
	}
	return out
}

// Tokens returns the lower-cased letter/digit runs of s. Hashtags written in
// CamelCase are split into their words, so #SerwerUmarł yields "serwer", "umarł".
func Tokens(s string) []string {
	runes := []rune(nfc(s))
	var out []string
	for i := 0; i < len(runes); {
		if !isWordRune(runes[i]) {
			i++
			continue
		}
		j := i
		for j < len(runes) && isWordRune(runes[j]) {
			j++
		}
		word := string(runes[i:j])
		if i > 0 && runes[i-1] == '#' {
			for _, part := range camelcase.Split(word) {
				out = append(out, lower(part))
			}
		} else {
			out = append(out, lower(word))
		}
		i = j
	}
	return out
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
