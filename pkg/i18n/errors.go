package i18n

import "errors"

var (
	ErrParsingCancelled  = errors.New("message parsing cancelled")
	ErrFailedToParseJSON = errors.New("failed to parse JSON messages")
	ErrFailedToParseYAML = errors.New("failed to parse YAML messages")
	ErrInvalidStructure  = errors.New("invalid message document structure")

	ErrLoadingCancelled      = errors.New("loading messages cancelled")
	ErrFailedToReadFile      = errors.New("failed to read message file")
	ErrFailedToReadDirectory = errors.New("failed to read message directory")
	ErrUnsupportedFileType   = errors.New("unsupported message file type")

	ErrEmptyLanguage = errors.New("empty language code")
)
