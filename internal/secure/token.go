package secure

import (
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/safety-rules-config/internal/utils"
)

// TokenSource is the discriminator of a [Token].
type TokenSource string

const (
	// TokenFromConfig carries the token inline.
	TokenFromConfig TokenSource = "from_config"
	// TokenFromDisk points at a file holding the token.
	TokenFromDisk TokenSource = "from_disk"
)

// Token is the credential a remote backend authenticates with.
type Token struct {
	Source TokenSource
	Value  string
	Path   string
}

// ConfigToken returns an inline token.
func ConfigToken(value string) Token {
	return Token{Source: TokenFromConfig, Value: value}
}

// DiskToken returns a token read from path.
func DiskToken(path string) Token {
	return Token{Source: TokenFromDisk, Path: path}
}

// Read returns the token value. File-backed tokens are read on every call
// with surrounding whitespace trimmed.
func (t Token) Read() (string, error) {
	var value string
	switch t.Source {
	case TokenFromConfig:
		value = t.Value
	case TokenFromDisk:
		data, err := os.ReadFile(t.Path)
		if err != nil {
			return "", fmt.Errorf("read token file: %w", err)
		}
		value = strings.TrimSpace(string(data))
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownToken, t.Source)
	}

	if value == "" {
		return "", ErrEmptyToken
	}
	return value, nil
}

// String hides inline token values.
func (t Token) String() string {
	switch t.Source {
	case TokenFromConfig:
		return "from_config(<redacted>)"
	case TokenFromDisk:
		return "from_disk(" + t.Path + ")"
	default:
		return string(t.Source)
	}
}

type configToken struct {
	Token string `json:"token"`
}

type diskToken struct {
	Path string `json:"path"`
}

// MarshalJSON encodes t as an object tagged with "type".
func (t Token) MarshalJSON() ([]byte, error) {
	switch t.Source {
	case TokenFromConfig:
		return utils.MarshalTagged(string(t.Source), configToken{Token: t.Value})
	case TokenFromDisk:
		return utils.MarshalTagged(string(t.Source), diskToken{Path: t.Path})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownToken, t.Source)
	}
}

// UnmarshalJSON decodes a tagged token object.
func (t *Token) UnmarshalJSON(data []byte) error {
	tag, fields, err := utils.SplitTagged(data)
	if err != nil {
		return fmt.Errorf("token: %w", err)
	}

	decoded := Token{Source: TokenSource(tag)}
	switch decoded.Source {
	case TokenFromConfig:
		var v configToken
		if err = fields.Require("token"); err == nil {
			err = fields.DecodeInto(&v)
		}
		decoded.Value = v.Token
	case TokenFromDisk:
		var v diskToken
		if err = fields.Require("path"); err == nil {
			err = fields.DecodeInto(&v)
		}
		decoded.Path = v.Path
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownToken, tag)
	}
	if err != nil {
		return fmt.Errorf("token %s: %w", tag, err)
	}

	*t = decoded
	return nil
}
