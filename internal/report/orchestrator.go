package report

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/anchor-insight/internal/llm"
	"github.com/jonathan/anchor-insight/internal/prompts"
	"github.com/jonathan/anchor-insight/internal/schemas"
	"github.com/jonathan/anchor-insight/internal/types"
)

// outputPreviewLimit bounds the model-output preview attached to mismatch
// errors, in runes.
const outputPreviewLimit = 1200

// retryInstruction is appended to the prompt for the single
// mismatch-recovery retry.
const retryInstruction = "Your last output did not match the schema. Output JSON again matching the schema exactly. Keep the same content, only fix structure."

// ClientFactory builds a provider client for one request.
type ClientFactory func(ctx context.Context, cfg *llm.Config) (llm.Client, error)

// Orchestrator turns a validated generation request into a
// schema-conformant report envelope. It holds no per-request state; one
// instance serves concurrent requests.
type Orchestrator struct {
	cfg       *llm.Config
	promptDir string
	newClient ClientFactory
	now       func() time.Time
}

// Option customizes an Orchestrator.
type Option func(*Orchestrator)

// WithClientFactory overrides how provider clients are constructed.
func WithClientFactory(factory ClientFactory) Option {
	return func(o *Orchestrator) { o.newClient = factory }
}

// WithPromptDir overrides the prompt file directory.
func WithPromptDir(dir string) Option {
	return func(o *Orchestrator) { o.promptDir = dir }
}

// WithClock overrides the envelope timestamp source.
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) { o.now = now }
}

// New creates an orchestrator for the given provider configuration. A nil
// config is resolved from the environment.
func New(cfg *llm.Config, opts ...Option) *Orchestrator {
	if cfg == nil {
		cfg = llm.ConfigFromEnv()
	}
	o := &Orchestrator{
		cfg:       cfg,
		promptDir: prompts.Dir(),
		newClient: llm.NewClient,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// attemptResult is one provider round-trip with its parsed payload.
type attemptResult struct {
	resp   *llm.Response
	report any
	text   string
}

// Generate runs the full pipeline on raw request bytes. Terminal failures
// are typed: *InvalidRequestError, *MismatchError, *ParseError,
// *llm.KeyMissingError, or *llm.ProviderError.
func (o *Orchestrator) Generate(ctx context.Context, raw []byte) (*types.ReportEnvelope, error) {
	req, err := ParseRequest(raw)
	if err != nil {
		return nil, err
	}
	return o.generate(ctx, req)
}

func (o *Orchestrator) generate(ctx context.Context, req *Request) (*types.ReportEnvelope, error) {
	// Prompt and schema resolution are independent pure reads; issue them
	// concurrently and join before touching the provider.
	var (
		schema     map[string]any
		promptMeta prompts.Meta
		g          errgroup.Group
	)
	g.Go(func() error {
		resolved, err := schemas.MarketSchema(req.Market)
		schema = resolved
		return err
	})
	g.Go(func() error {
		promptMeta = prompts.LoadMarketPrompt(o.promptDir, req.Market)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	client, err := o.newClient(ctx, o.cfg)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	userInput, err := json.MarshalIndent(Request{
		Market:        req.Market,
		Input:         req.Input,
		Derived:       req.Derived,
		ReportOptions: req.ReportOptions,
	}, "", "  ")
	if err != nil {
		return nil, err
	}

	schemaName := schemas.SchemaName(req.Market)

	// Model-candidate loop: advance only when the provider says the model
	// itself is unavailable. Every other provider error is fatal.
	var (
		attempt     *attemptResult
		activeModel string
		lastErr     error
	)
	for _, model := range o.cfg.ModelCandidates() {
		attempt, lastErr = o.callModel(ctx, client, model, schemaName, schema, promptMeta.Prompt, string(userInput), "")
		if lastErr == nil {
			activeModel = model
			break
		}

		pe, ok := llm.AsProviderError(lastErr)
		if !ok || !pe.ModelUnavailable() {
			return nil, lastErr
		}
		log.Printf("[report] model %s unavailable, trying next candidate: %v", model, lastErr)
		attempt = nil
	}
	if attempt == nil {
		return nil, lastErr
	}

	warnings := []string{}
	if promptMeta.FallbackUsed {
		warnings = append(warnings, types.WarnPromptFallbackUsed)
	}

	verr := schemas.Validate(schema, attempt.report)
	if verr != nil {
		if _, ok := verr.(*schemas.ValidationError); !ok {
			return nil, verr
		}

		// Exactly one retry against the same resolved model, with the
		// corrective instruction appended.
		attempt, err = o.callModel(ctx, client, activeModel, schemaName, schema, promptMeta.Prompt, string(userInput), retryInstruction)
		if err != nil {
			return nil, err
		}

		verr = schemas.Validate(schema, attempt.report)
		if verr != nil {
			ve, ok := verr.(*schemas.ValidationError)
			if !ok {
				return nil, verr
			}

			mismatch := &MismatchError{
				Market:        req.Market,
				Model:         activeModel,
				RequestID:     attempt.resp.RequestID,
				Errors:        ve.Errors,
				OutputPreview: truncate(attempt.text, outputPreviewLimit),
			}

			if req.Market != types.MarketB2C {
				log.Printf("[report] schema mismatch after retry (market %s, model %s, request %s)",
					req.Market, activeModel, attempt.resp.RequestID)
				return nil, mismatch
			}

			fallback := BuildB2CFallback(req.Input, req.Derived)
			if fverr := schemas.Validate(schema, fallback); fverr != nil {
				mismatch.FallbackErrors = schemas.FieldErrors(fverr)
				log.Printf("[report] fallback report schema mismatch (market %s, model %s): %v",
					req.Market, activeModel, fverr)
				return nil, mismatch
			}

			warnings = append(warnings, types.WarnSchemaMismatchFallback)
			return o.envelope(req.Market, fallback, promptMeta, activeModel, attempt.resp.RequestID, warnings), nil
		}
	}

	reportObj, ok := attempt.report.(map[string]any)
	if !ok {
		return nil, &InvariantError{Message: "validated report is not a JSON object"}
	}
	return o.envelope(req.Market, reportObj, promptMeta, activeModel, attempt.resp.RequestID, warnings), nil
}

func (o *Orchestrator) callModel(ctx context.Context, client llm.Client, model, schemaName string,
	schema map[string]any, instructions, input, extraInstruction string) (*attemptResult, error) {
	if extraInstruction != "" {
		instructions = instructions + "\n\n" + extraInstruction
	}

	resp, err := client.Generate(ctx, llm.Request{
		Model:        model,
		Instructions: instructions,
		Input:        input,
		SchemaName:   schemaName,
		Schema:       schema,
	})
	if err != nil {
		return nil, err
	}

	var parsed any
	if err := json.Unmarshal([]byte(resp.Text), &parsed); err != nil {
		return nil, &ParseError{Cause: err}
	}
	return &attemptResult{resp: resp, report: parsed, text: resp.Text}, nil
}

func (o *Orchestrator) envelope(market types.Market, reportObj map[string]any, promptMeta prompts.Meta,
	model, requestID string, warnings []string) *types.ReportEnvelope {
	return &types.ReportEnvelope{
		Meta: types.ReportMeta{
			Market:        market,
			SchemaVersion: types.EnvelopeSchemaVersion,
			GeneratedAt:   o.now().UTC().Format(time.RFC3339),
			RequestID:     requestID,
			PromptID:      promptMeta.PromptID,
			PromptVersion: promptMeta.PromptVersion,
			Model:         model,
			Warnings:      warnings,
		},
		Report: reportObj,
	}
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
