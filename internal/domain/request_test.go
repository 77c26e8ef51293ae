package domain_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/humorlab/humorlab/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeRequest_LengthBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{"empty", "", true},
		{"four chars", "abcd", true},
		{"five chars", "abcde", false},
		{"five polish runes", "żółść", false},
		{"max length", strings.Repeat("a", 1000), false},
		{"over max", strings.Repeat("a", 1001), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.AnalyzeRequest{JokeText: tt.text}.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var ve *domain.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, "joke_text", ve.Field)
		})
	}
}

func TestAnalyzeRequest_PersonaTooLong(t *testing.T) {
	err := domain.AnalyzeRequest{JokeText: "hello world", Persona: strings.Repeat("x", 65)}.Validate()
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "persona", ve.Field)
	assert.Contains(t, ve.Error(), "at most 64")
}

func TestAnalyzeRequest_AnalysisContext(t *testing.T) {
	req := domain.AnalyzeRequest{JokeText: "hello world", Persona: "waldus", Context: map[string]any{"topic": "ai"}}
	ctx := req.AnalysisContext()
	assert.Equal(t, "waldus", ctx[domain.ContextPersona])
	assert.Equal(t, "ai", ctx["topic"])
	assert.NotContains(t, req.Context, domain.ContextPersona, "request context must not be mutated")

	req.Context[domain.ContextPersona] = "janusz"
	assert.Equal(t, "janusz", req.AnalysisContext()[domain.ContextPersona])
}

func TestAnalyzeRequest_AnalysisContextNilPersona(t *testing.T) {
	tests := []struct {
		name    string
		persona string
		context map[string]any
		want    any
	}{
		{"nil value yields to request persona", "waldus", map[string]any{"persona": nil}, "waldus"},
		{"nil value without request persona", "", map[string]any{"persona": nil}, nil},
		{"explicit value wins", "waldus", map[string]any{"persona": "janusz"}, "janusz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := domain.AnalyzeRequest{JokeText: "hello world", Persona: tt.persona, Context: tt.context}
			assert.Equal(t, tt.want, req.AnalysisContext()[domain.ContextPersona])
		})
	}
}

func TestPublicMessage(t *testing.T) {
	ve := &domain.ValidationError{Field: "joke_text", Message: "is required"}
	assert.Equal(t, "invalid request: joke_text is required", domain.PublicMessage(ve, false))

	ae := &domain.AnalyzerError{Theory: domain.TheoryArchetype, Err: errors.New("persona must be a string")}
	assert.Equal(t, "analysis failed", domain.PublicMessage(ae, false))
	assert.Equal(t, "analyzer archetype: persona must be a string", domain.PublicMessage(ae, true))
	assert.Empty(t, domain.PublicMessage(nil, true))

	agg := fmt.Errorf("%w: no analyzer registered for theory timing", domain.ErrAnalysisFailed)
	assert.True(t, domain.IsAnalysisFailure(agg))
	assert.Equal(t, "analysis failed", domain.PublicMessage(agg, false))
	assert.Contains(t, domain.PublicMessage(agg, true), "no analyzer registered")

	other := errors.New("opening batch file: no such file")
	assert.False(t, domain.IsAnalysisFailure(other))
	assert.Equal(t, other.Error(), domain.PublicMessage(other, false))
}
