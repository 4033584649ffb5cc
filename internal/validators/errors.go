package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidBackend    = errors.New("invalid secure backend")
	ErrInvalidService    = errors.New("invalid safety rules service")
	ErrInvalidTestConfig = errors.New("invalid test config")
	ErrInvalidLogger     = errors.New("invalid logger config")
)
