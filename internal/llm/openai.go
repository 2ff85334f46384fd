package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/responses"
	"github.com/openai/openai-go/v2/shared"
)

// OpenAIClient implements Client against the OpenAI Responses API with
// strict json_schema structured output.
type OpenAIClient struct {
	client openai.Client
}

// NewOpenAIClient creates a new OpenAI client.
func NewOpenAIClient(apiKey string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, &KeyMissingError{EnvVar: "OPENAI_API_KEY"}
	}

	return &OpenAIClient{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
	}, nil
}

// Generate performs one Responses API round-trip. The output is bound to the
// request schema via strict structured output, so conformant models cannot
// emit out-of-schema JSON; validation downstream still guards the contract.
func (c *OpenAIClient) Generate(ctx context.Context, req Request) (*Response, error) {
	params := responses.ResponseNewParams{
		Model:        shared.ResponsesModel(req.Model),
		Instructions: openai.String(req.Instructions),
		Input:        responses.ResponseNewParamsInputUnion{OfString: openai.String(req.Input)},
		Store:        openai.Bool(false),
	}

	if req.Schema != nil {
		params.Text = responses.ResponseTextConfigParam{
			Format: responses.ResponseFormatTextConfigUnionParam{
				OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
					Name:   req.SchemaName,
					Schema: req.Schema,
					Strict: openai.Bool(true),
				},
			},
		}
	}

	resp, err := c.client.Responses.New(ctx, params)
	if err != nil {
		return nil, normalizeOpenAIError(err)
	}

	text, err := extractOutputText(resp)
	if err != nil {
		return nil, err
	}

	return &Response{Text: text, RequestID: resp.ID}, nil
}

// Close is a no-op; the underlying client holds no connection state.
func (c *OpenAIClient) Close() error {
	return nil
}

// extractOutputText pulls the textual payload out of a response: the
// aggregated output text when present, otherwise the concatenated message
// content fragments.
func extractOutputText(resp *responses.Response) (string, error) {
	if text := strings.TrimSpace(resp.OutputText()); text != "" {
		return text, nil
	}

	var parts []string
	for _, item := range resp.Output {
		for _, content := range item.Content {
			if content.Text != "" {
				parts = append(parts, content.Text)
			}
		}
	}

	joined := strings.TrimSpace(strings.Join(parts, "\n"))
	if joined == "" {
		return "", fmt.Errorf("model response did not include output text")
	}
	return joined, nil
}

func normalizeOpenAIError(err error) error {
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		return &ProviderError{
			Status:  apierr.StatusCode,
			Type:    apierr.Type,
			Code:    apierr.Code,
			Param:   apierr.Param,
			Message: apierr.Message,
		}
	}
	return err
}
