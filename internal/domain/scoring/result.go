package scoring

import (
	"strings"

	"github.com/humorlab/humorlab/internal/domain"
)

// maxKeyElements caps the evidence trail of every theory score.
const maxKeyElements = 5

// tally accumulates points, evidence tags and explanation fragments while an
// analyzer walks its signals.
type tally struct {
	points   float64
	elements []string
	notes    []string
}

func (t *tally) add(points float64, element, note string) {
	t.points += points
	if element != "" {
		t.elements = append(t.elements, element)
	}
	if note != "" {
		t.notes = append(t.notes, note)
	}
}

// finish clamps to [0,10], rounds to one decimal and composes the explanation.
// neutral is used when no signal fired.
func (t *tally) finish(neutral string) domain.TheoryScore {
	elements := t.elements
	if len(elements) > maxKeyElements {
		elements = elements[:maxKeyElements]
	}
	explanation := neutral
	if len(t.notes) > 0 {
		explanation = strings.Join(t.notes, "; ")
	}
	return domain.TheoryScore{
		Score:       domain.Round1(domain.Clamp(t.points, 0, 10)),
		Explanation: explanation,
		KeyElements: append([]string{}, elements...),
	}
}

func capCount(n, limit int) int {
	return min(n, limit)
}
