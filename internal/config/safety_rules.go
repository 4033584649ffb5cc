package config

import (
	"context"
	"fmt"

	"github.com/MKhiriev/safety-rules-config/internal/logger"
	"github.com/MKhiriev/safety-rules-config/internal/safetyrules"
	"github.com/MKhiriev/safety-rules-config/internal/validators"
)

// GetSafetyRulesConfig loads the safety rules configuration named by
// host.ConfigPath, or the defaults when no path is set, points an on-disk
// backend at host.DataDir and validates the result. Progress is logged to
// the logger attached to ctx, if any.
//
// Decoding failures are returned as [*safetyrules.ParseError]; semantic
// failures wrap [ErrInvalidSafetyRulesConfig].
func GetSafetyRulesConfig(ctx context.Context, host *HostConfig) (safetyrules.Config, error) {
	log := logger.FromContext(ctx)

	cfg := safetyrules.DefaultConfig()
	if host.ConfigPath != "" {
		loaded, err := safetyrules.LoadFile(host.ConfigPath)
		if err != nil {
			return safetyrules.Config{}, err
		}
		cfg = loaded
		log.Debug().Str("path", host.ConfigPath).Msg("loaded safety rules config")
	} else {
		log.Debug().Msg("no safety rules config file, using defaults")
	}

	if host.DataDir != "" {
		cfg.SetDataDir(host.DataDir)
	}

	if host.LogLevel != "" {
		cfg.Logger.Level = host.LogLevel
	}

	if err := validators.NewSafetyRulesValidator().Validate(ctx, cfg); err != nil {
		return safetyrules.Config{}, fmt.Errorf("%w: %w", ErrInvalidSafetyRulesConfig, err)
	}

	return cfg, nil
}
