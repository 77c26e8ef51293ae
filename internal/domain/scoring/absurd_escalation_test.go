package scoring_test

import (
	"testing"

	"github.com/humorlab/humorlab/internal/domain/scoring"
	"github.com/stretchr/testify/assert"
)

func TestScoreAbsurdEscalation_SteadyClimb(t *testing.T) {
	s := score(t, scoring.ScoreAbsurdEscalation,
		"Normalnie serwer działa. Dziś padł i dziwnie milczy. Teraz to już kosmiczna pustka!")

	assert.Equal(t, 10.0, s.Score)
	assert.Equal(t, []string{
		"absurd_level:10",
		"escalation_markers",
		"monotonic_escalation",
		"tech_failure_despair",
	}, s.KeyElements)
}

func TestScoreAbsurdEscalation_FallingLevelsGetNoBonus(t *testing.T) {
	s := score(t, scoring.ScoreAbsurdEscalation, "To katastrofa. A to tylko dziwne.")
	// peak level 5 * 0.8, no monotonic bonus
	assert.Equal(t, 4.0, s.Score)
	assert.NotContains(t, s.KeyElements, "monotonic_escalation")
}

func TestScoreAbsurdEscalation_Hyperbole(t *testing.T) {
	s := score(t, scoring.ScoreAbsurdEscalation, "Wszyscy zawsze mówią milion rzeczy i nigdy nic.")
	// four hyperboles capped at three
	assert.Equal(t, 3.0, s.Score)
}

func TestScoreAbsurdEscalation_NoSignals(t *testing.T) {
	s := score(t, scoring.ScoreAbsurdEscalation, gibberish)
	assert.Equal(t, 0.0, s.Score)
}
