package server

import (
	"net/http"

	"github.com/jonathan/anchor-insight/internal/llm"
	"github.com/jonathan/anchor-insight/internal/report"
	"github.com/jonathan/anchor-insight/internal/schemas"
	"github.com/jonathan/anchor-insight/internal/scoring"
)

// Wire error codes. These are part of the API contract and must not change.
const (
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeSchemaMismatch    = "LLM_SCHEMA_MISMATCH"
	CodeProviderError     = "OPENAI_API_ERROR"
	CodeProviderKeyMissed = "OPENAI_KEY_MISSING"
	CodeInternalError     = "INTERNAL_ERROR"
)

// apiError is the uniform wire error body: {"error": {code, message, details}}.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details"`
}

// mismatchDetails is the LLM_SCHEMA_MISMATCH detail payload.
type mismatchDetails struct {
	Market         string               `json:"market"`
	Model          string               `json:"model"`
	RequestID      string               `json:"request_id"`
	Errors         []schemas.FieldError `json:"errors"`
	OutputPreview  string               `json:"output_preview"`
	FallbackErrors []schemas.FieldError `json:"fallback_errors,omitempty"`
}

// providerDetails is the OPENAI_API_ERROR detail payload.
type providerDetails struct {
	Status int    `json:"status"`
	Type   string `json:"type"`
	Code   string `json:"code"`
	Param  string `json:"param"`
}

// writeError maps a pipeline error onto the wire taxonomy. Anything
// unclassified is reported as a provider error, matching the orchestrator's
// top-level catch semantics.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch e := err.(type) {
	case *report.InvalidRequestError:
		s.errorResponse(w, http.StatusBadRequest, CodeInvalidRequest, e.Message, e.Details)
	case *scoring.InvalidRequestError:
		s.errorResponse(w, http.StatusBadRequest, CodeInvalidRequest, e.Message, e.Details)
	case *report.MismatchError:
		s.errorResponse(w, http.StatusUnprocessableEntity, CodeSchemaMismatch,
			"Generated report did not match the target schema.", mismatchDetails{
				Market:         string(e.Market),
				Model:          e.Model,
				RequestID:      e.RequestID,
				Errors:         e.Errors,
				OutputPreview:  e.OutputPreview,
				FallbackErrors: e.FallbackErrors,
			})
	case *report.ParseError:
		s.errorResponse(w, http.StatusInternalServerError, CodeSchemaMismatch,
			"Generated report did not match the target schema.", map[string]any{"message": e.Error()})
	case *llm.KeyMissingError:
		s.errorResponse(w, http.StatusInternalServerError, CodeProviderKeyMissed, e.Error(), nil)
	case *llm.ProviderError:
		status := e.Status
		if status == 0 {
			status = http.StatusInternalServerError
		}
		s.errorResponse(w, status, CodeProviderError, e.Message, providerDetails{
			Status: status,
			Type:   e.Type,
			Code:   e.Code,
			Param:  e.Param,
		})
	case *scoring.InvariantError:
		s.errorResponse(w, http.StatusInternalServerError, CodeInternalError, e.Error(), nil)
	case *report.InvariantError:
		s.errorResponse(w, http.StatusInternalServerError, CodeInternalError, e.Error(), nil)
	default:
		s.errorResponse(w, http.StatusInternalServerError, CodeProviderError, err.Error(), nil)
	}
}

// errorResponse writes the uniform error envelope.
func (s *Server) errorResponse(w http.ResponseWriter, status int, code, message string, details any) {
	s.jsonResponse(w, status, map[string]any{"error": apiError{
		Code:    code,
		Message: message,
		Details: details,
	}})
}
