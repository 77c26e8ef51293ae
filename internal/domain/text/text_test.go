package text_test

import (
	"testing"

	"github.com/humorlab/humorlab/internal/domain/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_PolishLowercase(t *testing.T) {
	assert.Equal(t, "żółć i śmierć", text.Normalize("ŻÓŁĆ i ŚMIERĆ"))
}

func TestSentences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"single without terminator", "bez kropki", []string{"bez kropki"}},
		{"two sentences", "Serwer leży. Spoko!", []string{"Serwer leży.", "Spoko!"}},
		{"ellipsis run", "Czekam... I nic?!", []string{"Czekam...", "I nic?!"}},
		{"decimal stays", "Wersja 2.0 padła.", []string{"Wersja 2.0 padła."}},
		{"only punctuation", "?!", []string{"?!"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, text.Sentences(tt.in))
		})
	}
}

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{"api", "nie", "odpowiada"}, text.Tokens("API nie odpowiada!"))
	assert.Equal(t, []string{"serwer", "umarł", "dziś"}, text.Tokens("#SerwerUmarł dziś"))
	assert.Empty(t, text.Tokens("... ?!"))
}

func TestLexicon_PrefixAndPhrase(t *testing.T) {
	lex := text.NewLexicon("serwer*", "baza danych", "ai")
	tokens := text.Tokens("Serwery i baza danych, a AI milczy. Serwerownia też.")

	assert.Equal(t, []string{"serwer*", "baza danych", "ai"}, lex.Matches(tokens))
	assert.Equal(t, 4, lex.Count(tokens))
	assert.True(t, lex.Any(tokens))
	assert.False(t, lex.Any(text.Tokens("aigle")))
}

func TestLexicon_Find(t *testing.T) {
	lex := text.NewLexicon("serwer*", "baza danych", "ai")
	tokens := text.Tokens("Serwery i baza danych, a AI milczy. Serwerownia też.")

	assert.Equal(t, []string{"serwery", "baza danych", "ai", "serwerownia"}, lex.Find(tokens))
	assert.NotNil(t, lex.Find(nil))
	assert.Empty(t, lex.Find(text.Tokens("nic tu nie ma")))
}

func TestNewDocument(t *testing.T) {
	doc := text.NewDocument("  Szanowny Panie, serwer leży. Spoko!  ")
	require.Len(t, doc.Sentences, 2)
	assert.Equal(t, "Szanowny Panie, serwer leży. Spoko!", doc.Raw)
	assert.Equal(t, []int{28, 6}, doc.SentenceLengths())
	assert.Equal(t, "Spoko!", doc.Last().Text)
	assert.Equal(t, 1, doc.CountMarks("!"))
	assert.True(t, doc.HasMark(","))
}

func TestNewDocument_Empty(t *testing.T) {
	doc := text.NewDocument("")
	assert.Empty(t, doc.Sentences)
	assert.Equal(t, 0, doc.Last().Len())
	assert.Equal(t, 0, doc.Len())
}
