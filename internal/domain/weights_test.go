package domain_test

import (
	"testing"

	"github.com/humorlab/humorlab/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestWeightedScore_Arithmetic(t *testing.T) {
	weights := map[domain.TheoryID]float64{
		domain.TheoryIncongruity: 0.5,
		domain.TheoryTiming:      0.5,
	}
	scores := map[domain.TheoryID]float64{
		domain.TheoryIncongruity: 8,
		domain.TheoryTiming:      4,
		domain.TheoryArchetype:   10, // not in the table, ignored
	}
	assert.Equal(t, 60, domain.WeightedScore(scores, weights))
}

func TestWeightedScore_Clamped(t *testing.T) {
	weights := map[domain.TheoryID]float64{domain.TheoryIncongruity: 2}
	assert.Equal(t, 100, domain.WeightedScore(map[domain.TheoryID]float64{domain.TheoryIncongruity: 10}, weights))
	assert.Equal(t, 0, domain.WeightedScore(map[domain.TheoryID]float64{}, weights))
}

func TestGoalScore(t *testing.T) {
	scores := map[domain.TheoryID]float64{}
	for _, id := range domain.AllTheories {
		scores[id] = 10
	}
	assert.Equal(t, 100, domain.GoalScore(domain.GoalReach, scores))
	assert.Equal(t, 100, domain.GoalScore(domain.GoalMonetization, scores))
	assert.Equal(t, 100, domain.GoalScore(domain.GoalViral, scores))
	assert.Equal(t, domain.NeutralGoalScore, domain.GoalScore("engagement", scores))
}

func TestGoalWeights_ReachTable(t *testing.T) {
	reach := domain.GoalWeights[domain.GoalReach]
	assert.InDelta(t, 0.35, reach[domain.TheorySetupPunchline], 0.001)
	assert.InDelta(t, 0.30, reach[domain.TheoryArchetype], 0.001)
	assert.Len(t, reach, 4)
}
