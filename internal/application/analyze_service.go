package application

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/humorlab/humorlab/internal/domain"
	"github.com/humorlab/humorlab/internal/domain/scoring"
	"github.com/humorlab/humorlab/internal/domain/text"
)

// AnalyzeService orchestrates an analysis:
// validate → preprocess → fan out analyzers → join → derive metrics.
type AnalyzeService struct {
	analyzers []domain.Analyzer
	cfg       domain.EngineConfig
	logger    *zap.Logger
}

func NewAnalyzeService(analyzers []domain.Analyzer, cfg domain.EngineConfig, logger *zap.Logger) *AnalyzeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyzeService{
		analyzers: analyzers,
		cfg:       cfg.WithDefaults(),
		logger:    logger,
	}
}

func (s *AnalyzeService) Analyze(ctx context.Context, req domain.AnalyzeRequest) (*domain.AnalysisResult, error) {
	// 1. Reject bad input before any analyzer runs
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkAnalyzers(); err != nil {
		return nil, err
	}
	start := time.Now()

	// 2. Preprocess once, shared read-only by every analyzer
	doc := text.NewDocument(req.JokeText)
	actx := req.AnalysisContext()

	// 3. Fan out and join
	var (
		slots []domain.TheoryScore
		err   error
	)
	if s.cfg.IsParallel() {
		slots, err = s.runParallel(ctx, doc, actx)
	} else {
		slots, err = s.runSequential(ctx, doc, actx)
	}
	if err != nil {
		return nil, err
	}

	scores := make(map[domain.TheoryID]domain.TheoryScore, len(slots))
	for i, a := range s.analyzers {
		scores[a.Theory()] = s.enforceRange(a.Theory(), slots[i])
	}

	// 4. Derive aggregate metrics
	raw := domain.RawScores(scores)
	result := &domain.AnalysisResult{
		JokeText:                req.JokeText,
		TheoryScores:            scores,
		DominantTheory:          domain.DominantTheory(scores),
		OverallScore:            domain.ComputeOverallScore(scores),
		ReachEstimate:           domain.GoalScore(domain.GoalReach, raw),
		MonetizationScore:       domain.GoalScore(domain.GoalMonetization, raw),
		ViralScore:              domain.GoalScore(domain.GoalViral, raw),
		RecommendedImprovements: domain.Recommendations(raw),
		TargetSegments:          domain.TargetSegments(raw),
	}

	s.logger.Debug("analysis complete",
		zap.Float64("overall", result.OverallScore),
		zap.String("dominant", string(result.DominantTheory)),
		zap.Duration("took", time.Since(start)),
	)
	return result, nil
}

// checkAnalyzers requires exactly one analyzer per canonical theory.
func (s *AnalyzeService) checkAnalyzers() error {
	seen := make(map[domain.TheoryID]bool, len(s.analyzers))
	for _, a := range s.analyzers {
		id := a.Theory()
		switch {
		case !id.Valid():
			return fmt.Errorf("%w: analyzer for unknown theory %q", domain.ErrAnalysisFailed, id)
		case seen[id]:
			return fmt.Errorf("%w: duplicate analyzer for theory %s", domain.ErrAnalysisFailed, id)
		}
		seen[id] = true
	}
	for _, id := range domain.AllTheories {
		if !seen[id] {
			return fmt.Errorf("%w: no analyzer registered for theory %s", domain.ErrAnalysisFailed, id)
		}
	}
	return nil
}

// Extract returns the raw humor features of the joke without scoring it.
// The request is validated like Analyze; its context is not consulted.
func (s *AnalyzeService) Extract(ctx context.Context, req domain.AnalyzeRequest) (*domain.HumorFeatures, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	features := scoring.ExtractFeatures(text.NewDocument(req.JokeText))
	s.logger.Debug("features extracted",
		zap.String("language", features.Language),
		zap.Int("words", features.WordCount),
		zap.Int("sentences", features.Structural.SentenceCount),
	)
	return &features, nil
}

// Debug reports whether error detail may be shown to callers.
func (s *AnalyzeService) Debug() bool { return s.cfg.Debug }

// ListTheories returns the nine theories in canonical order.
func (s *AnalyzeService) ListTheories() []domain.TheoryInfo {
	return domain.ListTheories()
}

func (s *AnalyzeService) runParallel(ctx context.Context, doc *text.Document, actx map[string]any) ([]domain.TheoryScore, error) {
	slots := make([]domain.TheoryScore, len(s.analyzers))
	g, gctx := errgroup.WithContext(ctx)
	for i, a := range s.analyzers {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			score, err := s.runOne(a, doc, actx)
			if err != nil {
				return err
			}
			slots[i] = score
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return slots, nil
}

func (s *AnalyzeService) runSequential(ctx context.Context, doc *text.Document, actx map[string]any) ([]domain.TheoryScore, error) {
	slots := make([]domain.TheoryScore, len(s.analyzers))
	for i, a := range s.analyzers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		score, err := s.runOne(a, doc, actx)
		if err != nil {
			return nil, err
		}
		slots[i] = score
	}
	return slots, nil
}

// runOne invokes a single analyzer, converting errors and panics into an
// AnalyzerError. Under the sentinel policy the failure becomes a zero score.
func (s *AnalyzeService) runOne(a domain.Analyzer, doc *text.Document, actx map[string]any) (domain.TheoryScore, error) {
	score, err := safeAnalyze(a, doc, actx)
	if err == nil {
		return score, nil
	}
	if s.cfg.FailurePolicy != domain.Sentinel {
		return domain.TheoryScore{}, err
	}
	s.logger.Error("analyzer failed, substituting sentinel score",
		zap.String("theory", string(a.Theory())),
		zap.Error(err),
	)
	return domain.TheoryScore{
		Score:       0,
		Explanation: "analyzer failed; score substituted with 0",
		KeyElements: []string{"analyzer_failure"},
	}, nil
}

func safeAnalyze(a domain.Analyzer, doc *text.Document, actx map[string]any) (score domain.TheoryScore, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &domain.AnalyzerError{Theory: a.Theory(), Err: fmt.Errorf("panic: %v", r)}
		}
	}()
	score, err = a.Analyze(doc, actx)
	if err != nil {
		return domain.TheoryScore{}, &domain.AnalyzerError{Theory: a.Theory(), Err: err}
	}
	return score, nil
}

// enforceRange clamps a score that escaped [0,10]. Analyzers clamp their own
// output, so reaching the clamp here indicates a bug.
func (s *AnalyzeService) enforceRange(id domain.TheoryID, ts domain.TheoryScore) domain.TheoryScore {
	clamped := domain.Round1(domain.Clamp(ts.Score, 0, 10))
	if math.IsNaN(ts.Score) || ts.Score < 0 || ts.Score > 10 {
		s.logger.Warn("analyzer returned out-of-range score",
			zap.String("theory", string(id)),
			zap.Float64("score", ts.Score),
			zap.Float64("clamped", clamped),
		)
	}
	ts.Score = clamped
	if ts.KeyElements == nil {
		ts.KeyElements = []string{}
	}
	return ts
}
