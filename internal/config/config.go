// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// EnvPrefix is prepended to every environment variable read by
// [GetHostConfig].
const EnvPrefix = "SAFETY_RULES_"

// DefaultRole is the logger role used when none is configured.
const DefaultRole = "safety-rules"

// HostConfig holds the options of the host process that loads a safety
// rules configuration. It is populated by merging environment variables and
// command-line flags.
//
// Struct tags:
//   - env — variable name after [EnvPrefix] (caarlos0/env).
type HostConfig struct {
	// ConfigPath is the safety rules configuration file. ".yaml" and ".yml"
	// files are read as YAML, anything else as JSON. Empty selects the
	// defaults.
	// Env: SAFETY_RULES_CONFIG
	ConfigPath string `env:"CONFIG"`

	// DataDir is the node data directory handed to an on-disk secure
	// backend. Ignored by every other backend.
	// Env: SAFETY_RULES_DATA_DIR
	DataDir string `env:"DATA_DIR"`

	// LogLevel overrides the level of the logger section of the safety rules
	// configuration (e.g. "debug").
	// Env: SAFETY_RULES_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Role is the "role" field attached to every log entry.
	// Env: SAFETY_RULES_ROLE
	Role string `env:"ROLE"`

	// TestSeed is the hex encoded 32-byte seed of the random source used to
	// provision ephemeral test keys. Empty disables provisioning.
	// Env: SAFETY_RULES_TEST_SEED
	TestSeed string `env:"TEST_SEED"`

	// TestAuthor is the hex encoded principal of a test record created
	// during provisioning. Empty draws one from the seeded source.
	// Env: SAFETY_RULES_TEST_AUTHOR
	TestAuthor string `env:"TEST_AUTHOR"`

	// Resolve makes the host resolve the server address of remote service
	// modes at startup.
	// Env: SAFETY_RULES_RESOLVE
	Resolve bool `env:"RESOLVE"`
}

// GetHostConfig loads, merges, and validates the host options from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags parsed from args
//
// Returns a fully populated *HostConfig or an error if any source fails to
// load or the merged options fail validation.
func GetHostConfig(args []string) (*HostConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		build()
}
