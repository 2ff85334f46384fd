package report

import (
	"encoding/json"
	"strings"

	"github.com/jonathan/anchor-insight/internal/schemas"
	"github.com/jonathan/anchor-insight/internal/types"
)

// Request is the validated report-generation request. Input and Derived stay
// as decoded JSON objects: the orchestrator forwards them to the provider and
// the fallback builder verbatim, without re-deriving anything.
type Request struct {
	Market        types.Market   `json:"market"`
	Input         map[string]any `json:"input"`
	Derived       map[string]any `json:"derived"`
	ReportOptions map[string]any `json:"report_options"`
}

// requestSchema is the fixed structural contract for the generation request:
// all four top-level keys required, no extras, report_options with its
// required sub-fields.
var requestSchema = map[string]any{
	"type":                 "object",
	"required":             []any{"market", "input", "derived", "report_options"},
	"additionalProperties": false,
	"properties": map[string]any{
		"market": map[string]any{
			"enum": []any{"B2C", "B2B_EDU", "HR_CORP"},
		},
		"input":   map[string]any{"type": "object"},
		"derived": map[string]any{"type": "object"},
		"report_options": map[string]any{
			"type":                 "object",
			"required":             []any{"tone", "depth", "language", "strict_json"},
			"additionalProperties": true,
			"properties": map[string]any{
				"tone":        map[string]any{"type": "string"},
				"depth":       map[string]any{"type": "string"},
				"language":    map[string]any{"type": "string"},
				"strict_json": map[string]any{"type": "boolean"},
			},
		},
	},
}

// ParseRequest validates raw request bytes against the request schema and
// decodes them. Every failure is an *InvalidRequestError; no provider call
// is ever made for a malformed request.
func ParseRequest(raw []byte) (*Request, error) {
	if strings.TrimSpace(string(raw)) == "" {
		return nil, &InvalidRequestError{Message: "Request body is required."}
	}

	if !json.Valid(raw) {
		return nil, &InvalidRequestError{Message: "Request body must be valid JSON."}
	}

	if err := schemas.ValidateBytes(requestSchema, raw); err != nil {
		return nil, &InvalidRequestError{
			Message: "Request body validation failed.",
			Details: schemas.FieldErrors(err),
		}
	}

	var req Request
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, &InvalidRequestError{Message: "Request body must be valid JSON.", Details: err.Error()}
	}
	return &req, nil
}
