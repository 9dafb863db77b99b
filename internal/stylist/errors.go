package stylist

import (
	"errors"
	"fmt"
	"strings"
)

// FailureKind discriminates the ways a classification attempt can fail.
type FailureKind string

const (
	// RateLimited marks a 429-class quota error after retries were exhausted.
	RateLimited FailureKind = "rate_limited"
	// ModelCallFailed marks any other transport or model error.
	ModelCallFailed FailureKind = "model_call_failed"
	// ParseFailure marks a response that is not the expected JSON record.
	ParseFailure FailureKind = "parse_failure"
)

// StageError is the single error type the classifier surfaces. It keeps the
// failing model name so the user message can suggest switching models.
type StageError struct {
	Kind  FailureKind
	Model string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s (model %s): %v", e.Kind, e.Model, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// UserMessage is the diagnostic shown to the end user.
func (e *StageError) UserMessage() string {
	switch e.Kind {
	case RateLimited:
		return "Quota exceeded (429): you are sending requests too fast or using a restricted model. Tip: switch to a 'flash' model."
	case ParseFailure:
		return fmt.Sprintf("The model '%s' did not return a readable item description. Try again or select a different model.", e.Model)
	default:
		return fmt.Sprintf("The model '%s' failed. Try selecting a different model.", e.Model)
	}
}

// AsStageError unwraps err into a *StageError if it carries one.
func AsStageError(err error) (*StageError, bool) {
	var se *StageError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// isRateLimited matches the hosted API's quota errors, which carry the HTTP
// status code in their message.
func isRateLimited(err error) bool {
	return err != nil && strings.Contains(err.Error(), "429")
}
