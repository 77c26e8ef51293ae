package llm

import (
	"context"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"

	"github.com/humorlab/humorlab/internal/domain"
)

// generator is the slice of the genai client the scorer needs.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiScorer implements domain.PromptScorer over the Gemini API.
type GeminiScorer struct {
	models generator
	model  string
}

// NewGeminiScorer creates a scorer using the API key stored in the
// environment variable named by cfg.APIKeyEnv.
func NewGeminiScorer(ctx context.Context, cfg domain.LLMConfig) (*GeminiScorer, error) {
	apiKey := os.Getenv(cfg.APIKeyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("%s is not set", cfg.APIKeyEnv)
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return newScorer(client.Models, cfg.Model), nil
}

func newScorer(models generator, model string) *GeminiScorer {
	return &GeminiScorer{models: models, model: model}
}

func (s *GeminiScorer) ScoreWithPrompt(ctx context.Context, theory domain.TheoryID, joke string) (domain.TheoryScore, error) {
	prompt, err := BuildPrompt(theory, joke)
	if err != nil {
		return domain.TheoryScore{}, err
	}

	content := genai.NewContentFromText(prompt, genai.RoleUser)
	resp, err := s.models.GenerateContent(ctx, s.model, []*genai.Content{content}, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return domain.TheoryScore{}, fmt.Errorf("generating content: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return domain.TheoryScore{}, fmt.Errorf("no response candidates from gemini")
	}

	var reply strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			reply.WriteString(part.Text)
		}
	}
	return ParseResponse(theory, reply.String())
}
