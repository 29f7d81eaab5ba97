package antispam

import (
	"errors"
	"sort"
	"strings"
)

// Sentinel errors for every way a gated submission can be turned away.
// Outcome.Err wraps exactly one of them (or is a *ValidationError).
var (
	ErrBotDetected      = errors.New("bot detected")
	ErrChallengeFailed  = errors.New("challenge failed")
	ErrDuplicateRecord  = errors.New("duplicate record")
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrSubmitInProgress is returned by Form.Submit while an earlier attempt
	// on the same form is still being processed.
	ErrSubmitInProgress = errors.New("submission already in progress")

	// ErrConflict is what a Persist func returns (possibly wrapped) when the
	// store rejected the record on a uniqueness constraint.
	ErrConflict = errors.New("uniqueness conflict")
)

// ValidationError carries per-field messages for a RejectedValidation outcome.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		names = append(names, k)
	}
	sort.Strings(names)
	return "validation failed: " + strings.Join(names, ", ")
}
