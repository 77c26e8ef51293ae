package scoring_test

import (
	"testing"

	"github.com/humorlab/humorlab/internal/domain"
	"github.com/humorlab/humorlab/internal/domain/scoring"
	"github.com/humorlab/humorlab/internal/domain/text"
	"github.com/stretchr/testify/require"
)

const gibberish = "asdfghjkl qwerty zxcvbn uiop mnbvcx"

func score(t *testing.T, fn scoring.AnalyzeFunc, joke string) domain.TheoryScore {
	t.Helper()
	return scoreCtx(t, fn, joke, nil)
}

func scoreCtx(t *testing.T, fn scoring.AnalyzeFunc, joke string, ctx map[string]any) domain.TheoryScore {
	t.Helper()
	s, err := fn(text.NewDocument(joke), ctx)
	require.NoError(t, err)
	return s
}
