package cli

import "errors"

var (
	ErrInvalidInput  = errors.New("input is not valid")
	ErrUnknownFormat = errors.New("unknown output format")
	ErrReadingInput  = errors.New("failed to read input file")
)
