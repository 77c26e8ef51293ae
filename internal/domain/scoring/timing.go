package scoring

import (
	"math"

	"github.com/humorlab/humorlab/internal/domain"
	"github.com/humorlab/humorlab/internal/domain/text"
)

var pauseMarks = []string{"—", "–", "...", "…", ";", ":"}

const (
	rhythmStdDev = 15.0
	maxMarks     = 3
)

// ScoreTiming measures rhythm: uneven sentence lengths, a short closing
// sentence, pauses, exclamations and a sudden change of register.
func ScoreTiming(doc *text.Document, _ map[string]any) (domain.TheoryScore, error) {
	var t tally
	lens := doc.SentenceLengths()

	if len(lens) >= 2 {
		mean, sd := meanStdDev(lens)
		if sd >= rhythmStdDev {
			t.add(2, "varied_rhythm", "sentence lengths vary strongly")
		}
		if float64(lens[len(lens)-1]) < shorterEnding*mean {
			t.add(2.5, "short_ending", "short final sentence lands the beat")
		}
	}

	if n := capCount(doc.CountMarks(pauseMarks...), maxMarks); n > 0 {
		t.add(float64(n)*1.5, "pauses", "pause punctuation builds tension")
	}
	if n := capCount(doc.CountMarks("!"), maxMarks); n > 0 {
		t.add(float64(n), "exclamation", "exclamations add energy")
	}
	if n := capCount(doc.CountMarks("?"), maxMarks); n > 0 {
		t.add(float64(n)*0.5, "question", "questions hold the beat")
	}

	if registerShift(doc.Tokens) {
		t.add(2, "register_shift", "formal register collapses into colloquial")
	}

	return t.finish("flat delivery without timing devices"), nil
}

// meanStdDev returns the mean and population standard deviation of xs.
func meanStdDev(xs []int) (mean, sd float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	for _, x := range xs {
		mean += float64(x)
	}
	mean /= float64(len(xs))
	var variance float64
	for _, x := range xs {
		d := float64(x) - mean
		variance += d * d
	}
	return mean, math.Sqrt(variance / float64(len(xs)))
}
