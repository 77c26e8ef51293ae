package text

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalize returns s in NFC form, lower-cased with Polish casing rules.
// A Caser carries state, so each call builds its own.
func Normalize(s string) string {
	return lower(nfc(s))
}

func nfc(s string) string {
	return norm.NFC.String(s)
}

func lower(s string) string {
	return cases.Lower(language.Polish).String(s)
}
