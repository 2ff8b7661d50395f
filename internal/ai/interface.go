package ai

import (
	"context"
	"errors"
)

var (
	ErrMissingAPIKey = errors.New("missing api key")
	ErrEmptyPrompt   = errors.New("empty prompt")
	ErrEmptyReply    = errors.New("provider returned no text")
)

// LLMProvider is one hosted model behind the gateway.
type LLMProvider interface {
	// Name is the display name used in error details, e.g. "OpenAI".
	Name() string

	// Ask sends prompt and returns the model's reply text, trimmed.
	Ask(ctx context.Context, prompt string) (string, error)
}
