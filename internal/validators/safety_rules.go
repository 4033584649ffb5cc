package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/safety-rules-config/internal/logger"
	"github.com/MKhiriev/safety-rules-config/internal/safetyrules"
	"github.com/MKhiriev/safety-rules-config/internal/secure"
)

const (
	FieldBackend = "backend"
	FieldLogger  = "logger"
	FieldService = "service"
	FieldTest    = "test"
)

type SafetyRulesValidator struct {
}

func NewSafetyRulesValidator() Validator {
	return &SafetyRulesValidator{}
}

func (v *SafetyRulesValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case safetyrules.Config:
		return v.validateConfig(ctx, value, fields...)
	case *safetyrules.Config:
		return v.validateConfig(ctx, *value, fields...)

	case secure.Backend:
		return v.validateBackend(ctx, value)
	case *secure.Backend:
		return v.validateBackend(ctx, *value)

	case safetyrules.Service:
		return v.validateService(ctx, value)
	case *safetyrules.Service:
		return v.validateService(ctx, *value)

	default:
		return ErrUnsupportedType
	}
}

func (v *SafetyRulesValidator) validateConfig(ctx context.Context, cfg safetyrules.Config, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBackend, FieldLogger, FieldService, FieldTest}
	}

	for _, f := range fields {
		switch f {
		case FieldBackend:
			if err := v.validateBackend(ctx, cfg.Backend); err != nil {
				return err
			}
		case FieldLogger:
			if err := v.validateLogger(ctx, cfg.Logger); err != nil {
				return err
			}
		case FieldService:
			if err := v.validateService(ctx, cfg.Service); err != nil {
				return err
			}
		case FieldTest:
			if err := v.validateTestConfig(ctx, cfg.Test); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SafetyRulesValidator) validateBackend(ctx context.Context, b secure.Backend) error {
	switch b.Type {
	case secure.InMemoryStorage:
		return nil
	case secure.OnDiskStorageType:
		if b.OnDisk.Path == "" {
			return fmt.Errorf("%w: on-disk path is empty", ErrInvalidBackend)
		}
	case secure.VaultStorage:
		if b.Vault.Server == "" {
			return fmt.Errorf("%w: vault server is empty", ErrInvalidBackend)
		}
		if !validTokenSource(b.Vault.Token.Source) {
			return fmt.Errorf("%w: vault token source %q", ErrInvalidBackend, b.Vault.Token.Source)
		}
	case secure.GitHubStorage:
		if b.GitHub.Owner == "" || b.GitHub.Repository == "" {
			return fmt.Errorf("%w: github owner and repository are required", ErrInvalidBackend)
		}
		if !validTokenSource(b.GitHub.Token.Source) {
			return fmt.Errorf("%w: github token source %q", ErrInvalidBackend, b.GitHub.Token.Source)
		}
	default:
		return fmt.Errorf("%w: type %q", ErrInvalidBackend, b.Type)
	}

	return nil
}

func validTokenSource(s secure.TokenSource) bool {
	return s == secure.TokenFromConfig || s == secure.TokenFromDisk
}

func (v *SafetyRulesValidator) validateService(ctx context.Context, s safetyrules.Service) error {
	if !s.Mode.Valid() {
		return fmt.Errorf("%w: mode %q", ErrInvalidService, s.Mode)
	}

	hasAddress := !s.Remote.ServerAddress.IsZero()
	if s.IsRemote() && !hasAddress {
		return fmt.Errorf("%w: %s requires a server address", ErrInvalidService, s.Mode)
	}
	if !s.IsRemote() && hasAddress {
		return fmt.Errorf("%w: %s does not take a server address", ErrInvalidService, s.Mode)
	}

	return nil
}

func (v *SafetyRulesValidator) validateLogger(ctx context.Context, cfg logger.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogger, err)
	}
	return nil
}

// nil is valid: production configurations carry no test record.
func (v *SafetyRulesValidator) validateTestConfig(ctx context.Context, test *safetyrules.TestConfig) error {
	if test == nil {
		return nil
	}
	if test.Author.IsZero() {
		return fmt.Errorf("%w: author is not set", ErrInvalidTestConfig)
	}
	return nil
}
