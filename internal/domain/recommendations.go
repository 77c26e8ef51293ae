package domain

import "fmt"

const (
	MaxRecommendations = 5

	weakTheoryThreshold = 5.0
	specificThreshold   = 6.0
)

var specificSuggestions = []struct {
	theory TheoryID
	text   string
}{
	{TheorySetupPunchline, "Sharpen the structure: a clear setup followed by a short, unexpected punchline"},
	{TheoryIncongruity, "Add a sharper contrast, e.g. technology colliding with human emotion"},
	{TheoryTiming, "Work on rhythm: end on a short sentence and use a pause before the punchline"},
}

// Recommendations lists improvement hints: one line per theory scoring below
// 5 in canonical order, then the theory-specific suggestions, capped at
// MaxRecommendations.
func Recommendations(scores map[TheoryID]float64) []string {
	out := []string{}
	for _, id := range AllTheories {
		if s, ok := scores[id]; ok && s < weakTheoryThreshold {
			out = append(out, fmt.Sprintf("Strengthen %s: currently %.1f/10", id.DisplayName(), s))
		}
	}
	for _, sg := range specificSuggestions {
		if s, ok := scores[sg.theory]; ok && s < specificThreshold {
			out = append(out, sg.text)
		}
	}
	if len(out) > MaxRecommendations {
		out = out[:MaxRecommendations]
	}
	return out
}
