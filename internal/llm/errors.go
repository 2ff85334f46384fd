package llm

import (
	"errors"
	"fmt"
)

// KeyMissingError indicates the provider API key is absent from the
// environment. Generation cannot proceed without it.
type KeyMissingError struct {
	EnvVar string
}

func (e *KeyMissingError) Error() string {
	return fmt.Sprintf("%s is required on the server", e.EnvVar)
}

// ProviderError is a normalized provider API failure. Status carries the
// provider's HTTP status when known, 0 otherwise.
type ProviderError struct {
	Status  int
	Type    string
	Code    string
	Param   string
	Message string
}

func (e *ProviderError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("provider error (status %d, code %q): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("provider error (code %q): %s", e.Code, e.Message)
}

// ModelUnavailable reports whether the error means the requested model does
// not exist or is not accessible, which drives the model-candidate fallback
// loop. Any other provider error is fatal for the request.
func (e *ProviderError) ModelUnavailable() bool {
	return e.Status == 404 || e.Code == "model_not_found"
}

// AsProviderError unwraps err into a *ProviderError if possible.
func AsProviderError(err error) (*ProviderError, bool) {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
