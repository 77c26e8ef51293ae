package domain

import (
	"context"

	"github.com/humorlab/humorlab/internal/domain/text"
)

// Analyzer scores a preprocessed joke under one theory. Implementations must
// be deterministic and safe for concurrent use.
type Analyzer interface {
	Theory() TheoryID
	Analyze(doc *text.Document, ctx map[string]any) (TheoryScore, error)
}

// ConfigLoader loads engine configuration from a directory.
type ConfigLoader interface {
	Load(dir string) (EngineConfig, error)
}

// PromptScorer is a non-deterministic, prompt-based scoring backend.
type PromptScorer interface {
	ScoreWithPrompt(ctx context.Context, theory TheoryID, joke string) (TheoryScore, error)
}

// AnalysisHistory persists summaries of past analyses.
type AnalysisHistory interface {
	Save(dir string, entry HistoryEntry) error
	Load(dir string) ([]HistoryEntry, error)
}

// HistoryEntry is the persisted summary of one analysis.
type HistoryEntry struct {
	Timestamp         string   `json:"timestamp"`
	JokeText          string   `json:"joke_text"`
	OverallScore      float64  `json:"overall_score"`
	Grade             string   `json:"grade"`
	DominantTheory    TheoryID `json:"dominant_theory"`
	ReachEstimate     int      `json:"reach_estimate"`
	MonetizationScore int      `json:"monetization_score"`
}
