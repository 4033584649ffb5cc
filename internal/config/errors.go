package config

import "errors"

// Validation errors returned by [HostConfig.validate] when an option is
// malformed.
var (
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidTestConfigs indicates a malformed test seed or author, or an
	// author given without a seed.
	ErrInvalidTestConfigs = errors.New("invalid test provisioning configuration")
	// ErrInvalidSafetyRulesConfig indicates a safety rules configuration
	// that decoded but failed semantic validation.
	ErrInvalidSafetyRulesConfig = errors.New("invalid safety rules configuration")
)
