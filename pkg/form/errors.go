package form

import "errors"

var (
	ErrNilField             = errors.New("form: field is nil")
	ErrDuplicateField       = errors.New("form: duplicate field id")
	ErrAlreadySetup         = errors.New("form: coordinator already set up")
	ErrNotSetup             = errors.New("form: coordinator is not set up")
	ErrUnknownField         = errors.New("form: unknown field")
	ErrSubmissionInProgress = errors.New("form: submission in progress")
	ErrNotSubmitting        = errors.New("form: no submission in progress")
)
