// Package report implements the report-generation orchestrator: request
// validation, prompt and schema resolution, provider calls with model
// fallback, schema validation with a single retry, and the deterministic
// consumer-market fallback report.
package report

import (
	"fmt"

	"github.com/jonathan/anchor-insight/internal/schemas"
	"github.com/jonathan/anchor-insight/internal/types"
)

// InvalidRequestError is a client-side contract violation: malformed JSON or
// a request-schema mismatch. Never retried, never reaches the provider.
type InvalidRequestError struct {
	Message string
	Details any
}

func (e *InvalidRequestError) Error() string {
	return e.Message
}

// MismatchError reports that generated content parsed as JSON but failed the
// market schema twice (initial attempt plus the single retry). For the
// consumer market FallbackErrors is populated when even the deterministic
// fallback failed its own schema, which signals a defect in the pipeline
// rather than a user-triggered condition.
type MismatchError struct {
	Market         types.Market
	Model          string
	RequestID      string
	Errors         []schemas.FieldError
	OutputPreview  string
	FallbackErrors []schemas.FieldError
}

func (e *MismatchError) Error() string {
	if len(e.FallbackErrors) > 0 {
		return fmt.Sprintf("generated report and deterministic fallback both failed schema validation for market %s", e.Market)
	}
	return fmt.Sprintf("generated report did not match the %s schema after retry", e.Market)
}

// ParseError indicates the provider output was not valid JSON. Fatal; a
// parse failure is never retried because the structured-output constraint
// should make it impossible.
type ParseError struct {
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("model output is not valid JSON: %v", e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// InvariantError signals a defect in the pipeline itself (for example a
// non-finite computed score). Always surfaced, never swallowed.
type InvariantError struct {
	Message string
}

func (e *InvariantError) Error() string {
	return e.Message
}
