package reflection

import (
	"context"
	"encoding/json"
	"fmt"

	"deliberate/internal/llm"
)

// Config holds generation settings for attempt reviews.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.4,
	}
}

// Service generates post-attempt reviews.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a review service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Analyze sends a finished attempt to the LLM and returns the structured
// review. Synchronous; callers decide whether to block on it.
func (s *Service) Analyze(ctx context.Context, in Input) (*Reflection, error) {
	if in.ChosenPattern == "" {
		return nil, fmt.Errorf("reflection input has no chosen pattern")
	}

	ctx = llm.WithPurpose(ctx, "reflection")

	userMsg, err := buildReviewMessage(in)
	if err != nil {
		return nil, fmt.Errorf("build review prompt: %w", err)
	}

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: reviewSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      ReviewSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM review failed: %w", err)
	}

	var out Reflection
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("failed to parse review response: %w", err)
	}
	return &out, nil
}
