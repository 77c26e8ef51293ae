package application

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/humorlab/humorlab/internal/domain"
)

// maxConcurrentPrompts bounds in-flight requests to the prompt backend.
const maxConcurrentPrompts = 3

// Opinion compares the heuristic score of a theory with a prompt-based one.
type Opinion struct {
	Theory    domain.TheoryID    `json:"theory"`
	Heuristic domain.TheoryScore `json:"heuristic"`
	LLM       domain.TheoryScore `json:"llm"`
	Delta     float64            `json:"delta"`
}

// OpinionService asks a PromptScorer for a second opinion on a finished
// analysis. It never feeds back into the heuristic result.
type OpinionService struct {
	scorer  domain.PromptScorer
	timeout time.Duration
	logger  *zap.Logger
}

func NewOpinionService(scorer domain.PromptScorer, cfg domain.EngineConfig, logger *zap.Logger) *OpinionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg = cfg.WithDefaults()
	return &OpinionService{
		scorer:  scorer,
		timeout: time.Duration(cfg.LLM.TimeoutSeconds) * time.Second,
		logger:  logger,
	}
}

// Compare scores result.JokeText with the prompt backend for each theory in
// theories (all nine when empty) and returns opinions in the requested order.
func (s *OpinionService) Compare(ctx context.Context, result *domain.AnalysisResult, theories []domain.TheoryID) ([]Opinion, error) {
	if len(theories) == 0 {
		theories = domain.AllTheories
	}
	for _, id := range theories {
		if !id.Valid() {
			return nil, fmt.Errorf("unknown theory %q", id)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	opinions := make([]Opinion, len(theories))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentPrompts)
	for i, id := range theories {
		g.Go(func() error {
			llm, err := s.scorer.ScoreWithPrompt(gctx, id, result.JokeText)
			if err != nil {
				return fmt.Errorf("prompt scoring %s: %w", id, err)
			}
			heuristic := result.TheoryScores[id]
			opinions[i] = Opinion{
				Theory:    id,
				Heuristic: heuristic,
				LLM:       llm,
				Delta:     domain.Round1(llm.Score - heuristic.Score),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Debug("second opinion complete", zap.Int("theories", len(opinions)))
	return opinions, nil
}
