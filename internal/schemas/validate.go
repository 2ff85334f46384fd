package schemas

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// FieldError is a single validation error at a specific field, shaped like an
// Ajv error entry so it can be surfaced in API error details.
type FieldError struct {
	Field   string         `json:"field"`
	Keyword string         `json:"keyword"`
	Message string         `json:"message"`
	Params  map[string]any `json:"params,omitempty"`
}

// ValidationError reports that a document failed schema validation.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or compiling the schema itself.
type SchemaLoadError struct {
	Name    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Name, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Name, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// Validate checks a decoded document against a schema document. Returns nil
// on success, *ValidationError on mismatch, or *SchemaLoadError when the
// schema itself cannot be compiled.
func Validate(schema map[string]any, document any) error {
	return run(gojsonschema.NewGoLoader(schema), gojsonschema.NewGoLoader(document))
}

// ValidateBytes checks raw JSON bytes against a schema document.
func ValidateBytes(schema map[string]any, raw []byte) error {
	return run(gojsonschema.NewGoLoader(schema), gojsonschema.NewBytesLoader(raw))
}

func run(schemaLoader, documentLoader gojsonschema.JSONLoader) error {
	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Name:    "(document schema)",
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		params := make(map[string]any, len(desc.Details()))
		for k, v := range desc.Details() {
			params[k] = v
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Keyword: desc.Type(),
			Message: desc.Description(),
			Params:  params,
		})
	}
	return validationErr
}

// FieldErrors extracts the field error list when err is a *ValidationError.
func FieldErrors(err error) []FieldError {
	if ve, ok := err.(*ValidationError); ok {
		return ve.Errors
	}
	return nil
}
