package i18n

import "errors"

var (
	ErrNilAdapter       = errors.New("translation adapter is nil")
	ErrNilParser        = errors.New("translation parser is nil")
	ErrEmptyLanguage    = errors.New("empty language code")
	ErrNoTranslations   = errors.New("no translations found")
	ErrLoadingCancelled = errors.New("loading translations cancelled")

	ErrFailedToParseJSON = errors.New("failed to parse JSON content")
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")
	ErrInvalidStructure  = errors.New("invalid translation structure")

	ErrFailedToReadFile      = errors.New("failed to read translation file")
	ErrFailedToParseFile     = errors.New("failed to parse translation file")
	ErrFailedToReadDirectory = errors.New("failed to read translation directory")
)
