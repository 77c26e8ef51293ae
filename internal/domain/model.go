package domain

import (
	"encoding/json"
	"math"
)

// TheoryID names one of the nine fixed humor theories.
type TheoryID string

const (
	TheorySetupPunchline     TheoryID = "setup_punchline"
	TheoryIncongruity        TheoryID = "incongruity"
	TheorySemanticShift      TheoryID = "semantic_shift"
	TheoryTiming             TheoryID = "timing"
	TheoryAbsurdEscalation   TheoryID = "absurd_escalation"
	TheoryPsychoanalysis     TheoryID = "psychoanalysis"
	TheoryArchetype          TheoryID = "archetype"
	TheoryHumorAtoms         TheoryID = "humor_atoms"
	TheoryReverseEngineering TheoryID = "reverse_engineering"
)

// AllTheories is the canonical theory order. Iteration, tie-breaks and
// recommendation order all follow it.
var AllTheories = []TheoryID{
	TheorySetupPunchline,
	TheoryIncongruity,
	TheorySemanticShift,
	TheoryTiming,
	TheoryAbsurdEscalation,
	TheoryPsychoanalysis,
	TheoryArchetype,
	TheoryHumorAtoms,
	TheoryReverseEngineering,
}

func (id TheoryID) Valid() bool {
	for _, t := range AllTheories {
		if t == id {
			return true
		}
	}
	return false
}

// TheoryScore is the output of a single theory analyzer.
type TheoryScore struct {
	Score       float64  `json:"score"`
	Explanation string   `json:"explanation"`
	KeyElements []string `json:"key_elements"`
}

// AnalysisResult aggregates all nine theory scores for one joke.
type AnalysisResult struct {
	JokeText                string                   `json:"joke_text"`
	TheoryScores            map[TheoryID]TheoryScore `json:"theory_scores"`
	DominantTheory          TheoryID                 `json:"dominant_theory"`
	OverallScore            float64                  `json:"overall_score"`
	ReachEstimate           int                      `json:"reach_estimate"`
	MonetizationScore       int                      `json:"monetization_score"`
	ViralScore              int                      `json:"viral_score"`
	RecommendedImprovements []string                 `json:"recommended_improvements"`
	TargetSegments          []string                 `json:"target_segments"`
}

func (r AnalysisResult) Grade() string { return GradeFor(r.OverallScore) }

// MarshalJSON adds the derived grade to the serialized result.
func (r AnalysisResult) MarshalJSON() ([]byte, error) {
	type plain AnalysisResult
	return json.Marshal(struct {
		plain
		Grade string `json:"grade"`
	}{plain(r), r.Grade()})
}

// GradeFor maps a 0-10 score to a letter grade.
func GradeFor(score float64) string {
	switch {
	case score >= 9:
		return "A+"
	case score >= 8:
		return "A"
	case score >= 7:
		return "B"
	case score >= 6:
		return "C"
	case score >= 5:
		return "D"
	default:
		return "F"
	}
}

// Clamp bounds v to [lo, hi]. NaN collapses to lo.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Round1 rounds half away from zero to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// ComputeOverallScore is the unweighted mean of the canonical theory scores
// present in scores, rounded to one decimal. Unknown keys are ignored.
func ComputeOverallScore(scores map[TheoryID]TheoryScore) float64 {
	var (
		sum float64
		n   int
	)
	for _, id := range AllTheories {
		if s, ok := scores[id]; ok {
			sum += s.Score
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return Round1(sum / float64(n))
}

// DominantTheory returns the theory with the highest score. On a tie the
// theory that comes first in AllTheories wins.
func DominantTheory(scores map[TheoryID]TheoryScore) TheoryID {
	var best TheoryID
	bestScore := math.Inf(-1)
	for _, id := range AllTheories {
		s, ok := scores[id]
		if !ok {
			continue
		}
		if s.Score > bestScore {
			best, bestScore = id, s.Score
		}
	}
	return best
}
