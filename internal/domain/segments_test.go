package domain_test

import (
	"fmt"
	"testing"

	"github.com/humorlab/humorlab/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestTargetSegments_Default(t *testing.T) {
	assert.Equal(t, []string{domain.DefaultSegment}, domain.TargetSegments(map[domain.TheoryID]float64{}))
}

func TestTargetSegments_RuleOrder(t *testing.T) {
	scores := map[domain.TheoryID]float64{
		domain.TheoryAbsurdEscalation: 9,
		domain.TheoryIncongruity:      7,
		domain.TheoryPsychoanalysis:   6,
		domain.TheoryArchetype:        7,
	}
	assert.Equal(t, []string{
		"Tech Enthusiasts",
		"Early Adopters",
		"Young Demographics (18-34)",
	}, domain.TargetSegments(scores))
}

func TestTargetSegments_ThresholdIsInclusive(t *testing.T) {
	scores := map[domain.TheoryID]float64{
		domain.TheorySetupPunchline: 7,
		domain.TheoryArchetype:      6,
	}
	assert.Equal(t, []string{"Curious Normies"}, domain.TargetSegments(scores))

	scores[domain.TheoryArchetype] = 5.9
	assert.Equal(t, []string{domain.DefaultSegment}, domain.TargetSegments(scores))
}

func TestRecommendations_WeakTheoriesFirstThenSpecific(t *testing.T) {
	scores := map[domain.TheoryID]float64{}
	for _, id := range domain.AllTheories {
		scores[id] = 8
	}
	scores[domain.TheoryArchetype] = 4.5
	scores[domain.TheorySetupPunchline] = 5.5

	recs := domain.Recommendations(scores)
	assert.Equal(t, []string{
		"Strengthen Archetype: currently 4.5/10",
		"Sharpen the structure: a clear setup followed by a short, unexpected punchline",
	}, recs)
}

func TestRecommendations_CappedAtFive(t *testing.T) {
	scores := map[domain.TheoryID]float64{}
	for _, id := range domain.AllTheories {
		scores[id] = 1
	}
	recs := domain.Recommendations(scores)
	assert.Len(t, recs, domain.MaxRecommendations)
	for i, id := range domain.AllTheories[:5] {
		assert.Equal(t, fmt.Sprintf("Strengthen %s: currently 1.0/10", id.DisplayName()), recs[i])
	}
}

func TestRecommendations_StrongJokeHasNone(t *testing.T) {
	scores := map[domain.TheoryID]float64{}
	for _, id := range domain.AllTheories {
		scores[id] = 9
	}
	assert.Empty(t, domain.Recommendations(scores))
}
