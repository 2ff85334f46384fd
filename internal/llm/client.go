// Package llm provides centralized LLM configuration and client abstractions.
// This package isolates provider SDKs so the report orchestrator only deals
// with one request/response shape regardless of the active provider.
package llm

import "context"

// Request is a single structured-generation call.
type Request struct {
	Model        string
	Instructions string
	Input        string
	SchemaName   string
	Schema       map[string]any
}

// Response is the provider's reply. RequestID is empty when the provider does
// not expose one.
type Response struct {
	Text      string
	RequestID string
}

// Client is an abstraction over LLM providers.
type Client interface {
	// Generate performs one blocking generation round-trip, binding the
	// output to the request schema where the provider supports it.
	Generate(ctx context.Context, req Request) (*Response, error)
	// Close releases any resources held by the client.
	Close() error
}

// NewClient creates a client for the configured provider.
func NewClient(ctx context.Context, cfg *Config) (Client, error) {
	if cfg == nil {
		cfg = ConfigFromEnv()
	}

	switch cfg.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, cfg.GeminiAPIKey)
	default:
		return NewOpenAIClient(cfg.OpenAIAPIKey)
	}
}
