// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"SAFETY_RULES_CONFIG":      "/etc/safety_rules.yaml",
		"SAFETY_RULES_DATA_DIR":    "/var/lib/validator",
		"SAFETY_RULES_LOG_LEVEL":   "debug",
		"SAFETY_RULES_ROLE":        "validator-1",
		"SAFETY_RULES_TEST_SEED":   validSeed,
		"SAFETY_RULES_TEST_AUTHOR": "00112233445566778899aabbccddeeff",
		"SAFETY_RULES_RESOLVE":     "true",
	})

	// Act
	cfg := &HostConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &HostConfig{
		ConfigPath: "/etc/safety_rules.yaml",
		DataDir:    "/var/lib/validator",
		LogLevel:   "debug",
		Role:       "validator-1",
		TestSeed:   validSeed,
		TestAuthor: "00112233445566778899aabbccddeeff",
		Resolve:    true,
	}, cfg)
}

func TestParseEnv_PartialFields(t *testing.T) {
	t.Setenv("SAFETY_RULES_DATA_DIR", "/data")

	cfg := &HostConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, &HostConfig{DataDir: "/data"}, cfg)
}

// TestParseEnv_IgnoresUnprefixed verifies that variables without the prefix
// are not read.
func TestParseEnv_IgnoresUnprefixed(t *testing.T) {
	t.Setenv("CONFIG", "/etc/other.json")
	t.Setenv("DATA_DIR", "/other")

	cfg := &HostConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Empty(t, cfg.ConfigPath)
	assert.Empty(t, cfg.DataDir)
}

func TestParseEnv_InvalidBool(t *testing.T) {
	t.Setenv("SAFETY_RULES_RESOLVE", "maybe")

	err := parseEnv(&HostConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
