package domain

import "math"

// Goal names a composite metric computed from weighted theory scores.
type Goal string

const (
	GoalReach        Goal = "reach"
	GoalMonetization Goal = "monetization"
	GoalViral        Goal = "viral"
)

// NeutralGoalScore is returned for a goal without a weight table.
const NeutralGoalScore = 50

// GoalWeights maps each goal to a partial theory weight table. Weights need
// not sum to 1. The table is read-only.
var GoalWeights = map[Goal]map[TheoryID]float64{
	GoalReach: {
		TheorySetupPunchline: 0.35,
		TheoryArchetype:      0.30,
		TheoryIncongruity:    0.20,
		TheoryTiming:         0.15,
	},
	GoalMonetization: {
		TheoryPsychoanalysis:   0.40,
		TheoryArchetype:        0.25,
		TheoryIncongruity:      0.20,
		TheoryAbsurdEscalation: 0.15,
	},
	GoalViral: {
		TheoryAbsurdEscalation: 0.40,
		TheoryArchetype:        0.25,
		TheorySemanticShift:    0.20,
		TheoryTiming:           0.15,
	},
}

// WeightedScore computes clamp(round(sum(score*weight)*10), 0, 100) over the
// theories present in weights. Scores absent from scores count as zero.
func WeightedScore(scores map[TheoryID]float64, weights map[TheoryID]float64) int {
	var raw float64
	for _, id := range AllTheories {
		if w, ok := weights[id]; ok {
			raw += scores[id] * w
		}
	}
	return int(Clamp(math.Round(raw*10), 0, 100))
}

// GoalScore returns the weighted score for goal, or NeutralGoalScore when the
// goal has no weight table.
func GoalScore(goal Goal, scores map[TheoryID]float64) int {
	weights, ok := GoalWeights[goal]
	if !ok {
		return NeutralGoalScore
	}
	return WeightedScore(scores, weights)
}

// RawScores flattens theory scores to their numeric values.
func RawScores(scores map[TheoryID]TheoryScore) map[TheoryID]float64 {
	out := make(map[TheoryID]float64, len(scores))
	for id, s := range scores {
		out[id] = s.Score
	}
	return out
}
