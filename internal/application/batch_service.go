package application

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/humorlab/humorlab/internal/domain"
)

// BatchItem is the outcome of one line of a batch.
type BatchItem struct {
	Line   int                    `json:"line"`
	Result *domain.AnalysisResult `json:"result,omitempty"`
	Error  string                 `json:"error,omitempty"`
}

// AnalyzeBatch analyzes one joke per line of r. Blank lines and lines
// starting with '#' are skipped. A line that fails is reported in its item
// and does not stop the batch; emit is called for every analyzed line in
// input order.
func (s *AnalyzeService) AnalyzeBatch(ctx context.Context, r io.Reader, persona string, emit func(BatchItem) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	failed := 0
	for sc.Scan() {
		line++
		joke := strings.TrimSpace(sc.Text())
		if joke == "" || strings.HasPrefix(joke, "#") {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		item := BatchItem{Line: line}
		res, err := s.Analyze(ctx, domain.AnalyzeRequest{JokeText: joke, Persona: persona})
		if err != nil {
			failed++
			item.Error = domain.PublicMessage(err, s.cfg.Debug)
		} else {
			item.Result = res
		}
		if err := emit(item); err != nil {
			return fmt.Errorf("writing line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading batch: %w", err)
	}

	s.logger.Info("batch complete", zap.Int("lines", line), zap.Int("failed", failed))
	return nil
}
