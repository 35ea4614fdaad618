package lead

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the submission workflow.
var (
	ErrInFlight      = errors.New("a submission is already in flight")
	ErrAlreadySent   = errors.New("the lead has already been sent")
	ErrRequiredField = errors.New("required field is empty")
)

// ValidationError lists the required fields that were empty.
// It matches ErrRequiredField with errors.Is.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrRequiredField, strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrRequiredField
}

// Has reports whether field (by form name) failed validation.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f == field {
			return true
		}
	}
	return false
}

// SubmissionError is the single failure kind of a relay delivery. StatusCode
// is set when the relay answered with a non-2xx status and is zero for
// transport faults; callers treat both the same way.
type SubmissionError struct {
	StatusCode int
	Err        error
}

func (e *SubmissionError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("lead submission failed: relay returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("lead submission failed: %v", e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// asSubmissionError wraps err unless it already is a *SubmissionError.
func asSubmissionError(err error) *SubmissionError {
	var subErr *SubmissionError
	if errors.As(err, &subErr) {
		return subErr
	}
	return &SubmissionError{Err: err}
}
