package scoring

import (
	"fmt"

	"github.com/jonathan/anchor-insight/internal/anchors"
)

// InvalidRequestError indicates a score request that fails the request
// contract before any scoring happens.
type InvalidRequestError struct {
	Message string
	Details any
}

func (e *InvalidRequestError) Error() string {
	return e.Message
}

// InvariantError reports a non-finite computed score, which means the
// pipeline itself is broken. Always surfaced, never swallowed.
type InvariantError struct {
	Anchor anchors.Code
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invalid score computed for anchor %s", e.Anchor)
}
