package safetyrules

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/safety-rules-config/internal/utils"
)

// Decoding failures wrapped by [ParseError].
var (
	ErrUnknownField       = utils.ErrUnknownField
	ErrMissingField       = utils.ErrMissingField
	ErrMissingTag         = utils.ErrMissingTag
	ErrTrailingData       = utils.ErrTrailingData
	ErrDuplicateField     = utils.ErrDuplicateField
	ErrNullValue          = utils.ErrNullValue
	ErrUnknownServiceMode = errors.New("unknown safety rules service type")
)

// ErrServerAddressUnresolved is returned when a remote service address
// yields no connectable endpoint. A host must treat it as fatal at startup.
var ErrServerAddressUnresolved = errors.New("safety rules server address could not be resolved")

// ParseError reports a configuration that could not be decoded. Err holds
// the cause and can be matched with [errors.Is].
type ParseError struct {
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse safety rules config (%s): %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
