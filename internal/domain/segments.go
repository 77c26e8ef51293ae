package domain

// DefaultSegment is emitted when no segment rule matches.
const DefaultSegment = "General Audience"

// SegmentRule labels an audience when every threshold is met.
type SegmentRule struct {
	Label      string
	Thresholds map[TheoryID]float64
}

func (r SegmentRule) Matches(scores map[TheoryID]float64) bool {
	for id, threshold := range r.Thresholds {
		if scores[id] < threshold {
			return false
		}
	}
	return true
}

// SegmentRules are evaluated in order; output order follows this slice.
var SegmentRules = []SegmentRule{
	{Label: "Tech Enthusiasts", Thresholds: map[TheoryID]float64{TheoryIncongruity: 7, TheoryPsychoanalysis: 6}},
	{Label: "Early Adopters", Thresholds: map[TheoryID]float64{TheoryArchetype: 7, TheoryIncongruity: 6}},
	{Label: "Curious Normies", Thresholds: map[TheoryID]float64{TheorySetupPunchline: 7, TheoryArchetype: 6}},
	{Label: "Young Demographics (18-34)", Thresholds: map[TheoryID]float64{TheoryAbsurdEscalation: 8}},
}

// TargetSegments returns every matching segment label, or DefaultSegment.
func TargetSegments(scores map[TheoryID]float64) []string {
	var out []string
	for _, rule := range SegmentRules {
		if rule.Matches(scores) {
			out = append(out, rule.Label)
		}
	}
	if len(out) == 0 {
		return []string{DefaultSegment}
	}
	return out
}
