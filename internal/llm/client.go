package llm

import (
	"context"
	"fmt"
)

// Client is an abstraction over LLM providers
type Client interface {
	// Complete sends one system instruction (may be empty) and one user
	// message and returns the text completion. An empty result is an error;
	// callers never receive a partial response.
	Complete(ctx context.Context, system, user string, tier ModelTier) (string, error)
	// GetModel returns the underlying provider model for a tier
	GetModel(tier ModelTier) string
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client based on configuration
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	case ProviderOpenAI:
		return NewOpenAIClient(config, apiKey)
	default:
		return NewOpenAIClient(config, apiKey)
	}
}

// APIError represents a failed generation call. Network, authentication and
// quota failures all surface here; the caller must treat the call as having
// produced no result.
type APIError struct {
	Provider Provider
	Message  string
	Cause    error
}

func (e *APIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s API error: %s: %v", e.Provider, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s API error: %s", e.Provider, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Cause
}
