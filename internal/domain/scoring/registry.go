package scoring

import (
	"github.com/humorlab/humorlab/internal/domain"
	"github.com/humorlab/humorlab/internal/domain/text"
)

// AnalyzeFunc is the contract shared by every theory analyzer.
type AnalyzeFunc func(doc *text.Document, ctx map[string]any) (domain.TheoryScore, error)

type theoryAnalyzer struct {
	id domain.TheoryID
	fn AnalyzeFunc
}

func (a theoryAnalyzer) Theory() domain.TheoryID { return a.id }

func (a theoryAnalyzer) Analyze(doc *text.Document, ctx map[string]any) (domain.TheoryScore, error) {
	return a.fn(doc, ctx)
}

// registry is fixed at build time and listed in canonical theory order.
var registry = []theoryAnalyzer{
	{domain.TheorySetupPunchline, ScoreSetupPunchline},
	{domain.TheoryIncongruity, ScoreIncongruity},
	{domain.TheorySemanticShift, ScoreSemanticShift},
	{domain.TheoryTiming, ScoreTiming},
	{domain.TheoryAbsurdEscalation, ScoreAbsurdEscalation},
	{domain.TheoryPsychoanalysis, ScorePsychoanalysis},
	{domain.TheoryArchetype, ScoreArchetype},
	{domain.TheoryHumorAtoms, ScoreHumorAtoms},
	{domain.TheoryReverseEngineering, ScoreReverseEngineering},
}

// Analyzers returns one analyzer per theory in canonical order. The returned
// slice is a copy; the analyzers themselves are stateless.
func Analyzers() []domain.Analyzer {
	out := make([]domain.Analyzer, len(registry))
	for i, a := range registry {
		out[i] = a
	}
	return out
}

// Lookup returns the analyzer registered for id.
func Lookup(id domain.TheoryID) (domain.Analyzer, bool) {
	for _, a := range registry {
		if a.id == id {
			return a, true
		}
	}
	return nil, false
}
