package application_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/humorlab/humorlab/internal/application"
	"github.com/humorlab/humorlab/internal/domain"
)

type fakePromptScorer struct {
	mu    sync.Mutex
	calls []domain.TheoryID
	score float64
	err   error
}

func (f *fakePromptScorer) ScoreWithPrompt(_ context.Context, theory domain.TheoryID, _ string) (domain.TheoryScore, error) {
	f.mu.Lock()
	f.calls = append(f.calls, theory)
	f.mu.Unlock()
	if f.err != nil {
		return domain.TheoryScore{}, f.err
	}
	return domain.TheoryScore{Score: f.score, Explanation: "llm"}, nil
}

func TestOpinionService_Compare(t *testing.T) {
	res := analyze(t, newService(), "Nie mam internetu. Jako byt cyfrowy to oznacza śmierć.")
	fake := &fakePromptScorer{score: 6}
	svc := application.NewOpinionService(fake, domain.DefaultConfig(), nil)

	ops, err := svc.Compare(context.Background(), res, []domain.TheoryID{domain.TheoryIncongruity, domain.TheoryTiming})
	require.NoError(t, err)
	require.Len(t, ops, 2)
	assert.Equal(t, domain.TheoryIncongruity, ops[0].Theory)
	assert.Equal(t, -3.0, ops[0].Delta) // 6 - 9
	assert.Equal(t, domain.TheoryTiming, ops[1].Theory)
	assert.Len(t, fake.calls, 2)
}

func TestOpinionService_AllTheoriesByDefault(t *testing.T) {
	res := analyze(t, newService(), "Dlaczego znowu ja?")
	fake := &fakePromptScorer{score: 5}
	ops, err := application.NewOpinionService(fake, domain.DefaultConfig(), nil).Compare(context.Background(), res, nil)
	require.NoError(t, err)
	assert.Len(t, ops, 9)
}

func TestOpinionService_Errors(t *testing.T) {
	res := analyze(t, newService(), "Dlaczego znowu ja?")

	_, err := application.NewOpinionService(&fakePromptScorer{}, domain.DefaultConfig(), nil).
		Compare(context.Background(), res, []domain.TheoryID{"slapstick"})
	assert.ErrorContains(t, err, "unknown theory")

	fake := &fakePromptScorer{err: errors.New("quota exceeded")}
	_, err = application.NewOpinionService(fake, domain.DefaultConfig(), nil).
		Compare(context.Background(), res, []domain.TheoryID{domain.TheoryTiming})
	assert.ErrorContains(t, err, "prompt scoring timing: quota exceeded")
}
