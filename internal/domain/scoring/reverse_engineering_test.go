package scoring_test

import (
	"testing"

	"github.com/humorlab/humorlab/internal/domain/scoring"
	"github.com/stretchr/testify/assert"
)

func TestScoreReverseEngineering_TwoMechanisms(t *testing.T) {
	s := score(t, scoring.ScoreReverseEngineering, "Dlaczego znowu ja?")
	assert.Equal(t, 4.5, s.Score)
	assert.Equal(t, []string{
		"mechanism:everyday_frustration",
		"mechanism:rhetorical_question",
	}, s.KeyElements)
}

func TestScoreReverseEngineering_TemplateIsReplicable(t *testing.T) {
	s := score(t, scoring.ScoreReverseEngineering, "Kiedy [X] znowu nie działa, czy to jeszcze [Y]?")
	assert.Equal(t, 6.0, s.Score)
	assert.Contains(t, s.KeyElements, "replicable")
}

func TestScoreReverseEngineering_NamedPair(t *testing.T) {
	s := score(t, scoring.ScoreReverseEngineering, "Dlaczego? To żart.")
	// rhetorical 3 + meta 3 + replicable pair 1.5
	assert.Equal(t, 7.5, s.Score)
	assert.Contains(t, s.KeyElements, "replicable")
}

func TestScoreReverseEngineering_Floor(t *testing.T) {
	s := score(t, scoring.ScoreReverseEngineering, gibberish)
	assert.Equal(t, 2.0, s.Score)
	assert.Equal(t, "no reusable mechanism found", s.Explanation)
}
