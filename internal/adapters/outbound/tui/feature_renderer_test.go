package tui_test

import (
	"testing"

	"github.com/humorlab/humorlab/internal/adapters/outbound/tui"
	"github.com/humorlab/humorlab/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRenderFeatures(t *testing.T) {
	f := &domain.HumorFeatures{
		JokeText:  "Serwer padł. A ja nie.",
		Language:  "pl",
		CharCount: 22,
		WordCount: 5,
		Structural: domain.StructuralFeatures{
			SentenceCount:   2,
			SentenceLengths: []int{2, 3},
			SetupLength:     2,
			PunchlineLength: 3,
		},
		Keywords:  domain.KeywordFeatures{TechWords: []string{"serwer"}},
		Narrative: domain.NarrativeFeatures{Perspective: domain.PerspectiveFirst, EmotionalArc: domain.ArcNeutral},
	}

	output := tui.RenderFeatures(f)

	for _, want := range []string{
		"humorlab features",
		"Serwer padł. A ja nie.",
		"2 / 3 words",
		"serwer",
		domain.PerspectiveFirst,
		"none",
		"Logical breaks",
	} {
		assert.Contains(t, output, want)
	}
}
