package llm

import (
	"context"
	"errors"
)

// Client abstracts completion providers used by the generation services.
type Client interface {
	// Complete returns the raw text completion for the filled prompt.
	Complete(ctx context.Context, input CompleteInput) (string, error)
	// CompleteJSON returns a completion constrained to a single JSON object.
	CompleteJSON(ctx context.Context, input CompleteInput) (map[string]any, error)
}

// CompleteInput carries a filled prompt and its completion bounds.
type CompleteInput struct {
	Prompt       string
	SystemPrompt string
	MaxTokens    int
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("llm client not configured")

// PlaceholderClient is a stub implementation until provider wiring is added.
type PlaceholderClient struct{}

// Complete returns ErrNotConfigured.
func (PlaceholderClient) Complete(ctx context.Context, input CompleteInput) (string, error) {
	_ = ctx
	_ = input
	return "", ErrNotConfigured
}

// CompleteJSON returns ErrNotConfigured.
func (PlaceholderClient) CompleteJSON(ctx context.Context, input CompleteInput) (map[string]any, error) {
	_ = ctx
	_ = input
	return nil, ErrNotConfigured
}
