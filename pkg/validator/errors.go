package validator

import "errors"

// ErrValidationFailed is returned by callers that need a plain sentinel for a
// failed validation without the per-field details.
var ErrValidationFailed = errors.New("validation failed")

// Is lets errors.Is(err, ErrValidationFailed) match any non-empty
// ValidationErrors value.
func (ve ValidationErrors) Is(target error) bool {
	return len(ve) > 0 && target == ErrValidationFailed
}
