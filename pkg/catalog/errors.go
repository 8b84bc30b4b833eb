package catalog

import "errors"

var (
	ErrInvalidConfig   = errors.New("catalog: invalid configuration")
	ErrLoadingMessages = errors.New("catalog: failed to load messages")
)
