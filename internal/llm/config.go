package llm

import "os"

// Provider represents an LLM provider.
type Provider string

// Supported providers. OpenAI is the default; Gemini is selectable via
// LLM_PROVIDER for deployments without OpenAI access.
const (
	ProviderOpenAI Provider = "openai"
	ProviderGemini Provider = "gemini"
)

// DefaultModel is the hardcoded secondary model, always present in the
// candidate list even when a primary model is configured.
const DefaultModel = "gpt-4.1-mini"

// defaultGeminiModel backs the Gemini provider when no model is configured.
const defaultGeminiModel = "gemini-2.5-flash"

// Config holds provider selection and credentials.
type Config struct {
	Provider     Provider
	OpenAIAPIKey string
	GeminiAPIKey string
	PrimaryModel string
}

// ConfigFromEnv reads provider configuration from the process environment:
// LLM_PROVIDER, OPENAI_API_KEY, OPENAI_MODEL, GEMINI_API_KEY.
func ConfigFromEnv() *Config {
	cfg := &Config{
		Provider:     ProviderOpenAI,
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		PrimaryModel: os.Getenv("OPENAI_MODEL"),
	}
	if Provider(os.Getenv("LLM_PROVIDER")) == ProviderGemini {
		cfg.Provider = ProviderGemini
	}
	return cfg
}

// ModelCandidates builds the ordered, deduplicated model list to try:
// the configured primary first, then the hardcoded default.
func (c *Config) ModelCandidates() []string {
	primary := c.PrimaryModel
	if primary == "" {
		if c.Provider == ProviderGemini {
			primary = defaultGeminiModel
		} else {
			primary = DefaultModel
		}
	}

	candidates := []string{primary}
	if c.Provider != ProviderGemini && primary != DefaultModel {
		candidates = append(candidates, DefaultModel)
	}
	return candidates
}
