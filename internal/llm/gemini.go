package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// GeminiClient implements Client for Google Gemini. Gemini's typed response
// schemas cannot express an arbitrary JSON Schema document, so the market
// schema is embedded in the instructions and the response MIME type is pinned
// to JSON instead.
type GeminiClient struct {
	client *genai.Client
}

// NewGeminiClient creates a new Gemini client.
func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, &KeyMissingError{EnvVar: "GEMINI_API_KEY"}
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client}, nil
}

// Generate performs one generation round-trip.
func (c *GeminiClient) Generate(ctx context.Context, req Request) (*Response, error) {
	model := c.client.GenerativeModel(req.Model)
	model.SetTemperature(0.1) // Low temperature for consistent output
	model.ResponseMIMEType = "application/json"

	prompt := req.Instructions
	if req.Schema != nil {
		schemaJSON, err := json.MarshalIndent(req.Schema, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to serialize schema: %w", err)
		}
		prompt = fmt.Sprintf("%s\n\nOutput MUST be a single JSON object matching this JSON Schema (%s):\n%s",
			prompt, req.SchemaName, schemaJSON)
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt+"\n\nInput:\n"+req.Input))
	if err != nil {
		return nil, normalizeGeminiError(err)
	}

	text, err := extractGeminiText(resp)
	if err != nil {
		return nil, err
	}

	return &Response{Text: CleanJSONBlock(text)}, nil
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// extractGeminiText extracts text from a Gemini API response.
func extractGeminiText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}

func normalizeGeminiError(err error) error {
	var apierr *googleapi.Error
	if errors.As(err, &apierr) {
		return &ProviderError{
			Status:  apierr.Code,
			Message: apierr.Message,
		}
	}
	return err
}
