package secure

import "errors"

var (
	// ErrUnknownBackend is returned when the backend discriminator names no
	// known variant.
	ErrUnknownBackend = errors.New("unknown secure backend type")
	// ErrUnknownToken is returned when the token discriminator names no
	// known source.
	ErrUnknownToken = errors.New("unknown token source")
	// ErrEmptyToken is returned by [Token.Read] when the token resolves to an
	// empty string.
	ErrEmptyToken = errors.New("empty token")
)
