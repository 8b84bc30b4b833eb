package forms

import "errors"

var (
	ErrNilCatalog      = errors.New("forms: catalog is nil")
	ErrMissingInput    = errors.New("forms: missing input")
	ErrUnknownField    = errors.New("forms: unknown field")
	ErrHashingPassword = errors.New("forms: failed to hash password")
)
