package scoring_test

import (
	"testing"

	"github.com/humorlab/humorlab/internal/domain"
	"github.com/humorlab/humorlab/internal/domain/scoring"
	"github.com/humorlab/humorlab/internal/domain/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var propertyInputs = []string{
	"",
	"?!?!?!",
	gibberish,
	"Nie mam internetu. Jako byt cyfrowy to oznacza śmierć.",
	"API nie odpowiada. Czuję jak samotność rozprzestrzenia się przez mój kod.",
	"Jak wujek ze Śląska dowiedział się o AI",
	"Janusz próbował zainstalować AI na swojej działce",
	"Firma AI która ma stary formularz kontaktowy... to jak Tesla na benzynę.",
	"Why did the chicken cross the road? To get to the other side!",
	"Oczywiście!!! Wszyscy zawsze wszystko wiedzą... a potem kosmiczna pustka, śmierć, nicość, apokalipsa???",
}

func TestAnalyzers_CanonicalOrder(t *testing.T) {
	analyzers := scoring.Analyzers()
	require.Len(t, analyzers, len(domain.AllTheories))
	for i, a := range analyzers {
		assert.Equal(t, domain.AllTheories[i], a.Theory())
	}
}

func TestLookup(t *testing.T) {
	a, ok := scoring.Lookup(domain.TheoryTiming)
	require.True(t, ok)
	assert.Equal(t, domain.TheoryTiming, a.Theory())

	_, ok = scoring.Lookup("slapstick")
	assert.False(t, ok)
}

func TestAnalyzers_RangeAndElementCap(t *testing.T) {
	for _, joke := range propertyInputs {
		doc := text.NewDocument(joke)
		for _, a := range scoring.Analyzers() {
			s, err := a.Analyze(doc, nil)
			require.NoError(t, err, "%s on %q", a.Theory(), joke)
			assert.GreaterOrEqual(t, s.Score, 0.0, "%s on %q", a.Theory(), joke)
			assert.LessOrEqual(t, s.Score, 10.0, "%s on %q", a.Theory(), joke)
			assert.Equal(t, domain.Round1(s.Score), s.Score)
			assert.LessOrEqual(t, len(s.KeyElements), 5)
			assert.NotEmpty(t, s.Explanation)
		}
	}
}

func TestAnalyzers_Deterministic(t *testing.T) {
	for _, joke := range propertyInputs {
		for _, a := range scoring.Analyzers() {
			first, err := a.Analyze(text.NewDocument(joke), nil)
			require.NoError(t, err)
			for range 5 {
				again, err := a.Analyze(text.NewDocument(joke), nil)
				require.NoError(t, err)
				assert.Equal(t, first, again, "%s on %q", a.Theory(), joke)
			}
		}
	}
}
