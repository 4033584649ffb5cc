package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validSeed = strings.Repeat("0a", SeedSize)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns the
// defaults.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &HostConfig{Role: DefaultRole}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that a non-zero field of a later config
// overrides the same field of an earlier one, and zero fields do not.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&HostConfig{ConfigPath: "/etc/env.yaml", DataDir: "/data", Resolve: true},
		&HostConfig{ConfigPath: "/etc/flag.json", Role: "validator-7"},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "/etc/flag.json", cfg.ConfigPath)
	assert.Equal(t, "/data", cfg.DataDir)
	assert.Equal(t, "validator-7", cfg.Role)
	assert.True(t, cfg.Resolve)
}

// TestBuild_RunsValidation verifies that an invalid merged config is
// rejected.
func TestBuild_RunsValidation(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &HostConfig{LogLevel: "chatty"})

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidLogConfigs)
}

// ── withEnv / withFlags ───────────────────────────────────────────────────────

func TestWithFlags_ErrorIsCollected(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-no-such-flag"})

	require.Error(t, b.err)
	assert.Empty(t, b.configs)

	_, err := b.build()
	assert.Error(t, err)
}

// TestGetHostConfig_FlagsOverrideEnv verifies the priority of the two
// sources.
func TestGetHostConfig_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("SAFETY_RULES_CONFIG", "/env/sr.json")
	t.Setenv("SAFETY_RULES_DATA_DIR", "/env/data")
	t.Setenv("SAFETY_RULES_TEST_SEED", validSeed)

	cfg, err := GetHostConfig([]string{"-config", "/flag/sr.yaml", "-resolve"})
	require.NoError(t, err)

	assert.Equal(t, "/flag/sr.yaml", cfg.ConfigPath)
	assert.Equal(t, "/env/data", cfg.DataDir)
	assert.Equal(t, validSeed, cfg.TestSeed)
	assert.Equal(t, DefaultRole, cfg.Role)
	assert.True(t, cfg.Resolve)
}

func TestGetHostConfig_InvalidEnv(t *testing.T) {
	t.Setenv("SAFETY_RULES_RESOLVE", "sometimes")

	_, err := GetHostConfig(nil)
	assert.Error(t, err)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     HostConfig
		wantErr error
	}{
		{name: "empty", cfg: HostConfig{}},
		{name: "log level", cfg: HostConfig{LogLevel: "DEBUG"}},
		{name: "bad log level", cfg: HostConfig{LogLevel: "verbose"}, wantErr: ErrInvalidLogConfigs},
		{name: "seed", cfg: HostConfig{TestSeed: validSeed}},
		{name: "short seed", cfg: HostConfig{TestSeed: "abcd"}, wantErr: ErrInvalidTestConfigs},
		{name: "non hex seed", cfg: HostConfig{TestSeed: strings.Repeat("zz", SeedSize)}, wantErr: ErrInvalidTestConfigs},
		{name: "seed and author", cfg: HostConfig{TestSeed: validSeed, TestAuthor: "00112233445566778899aabbccddeeff"}},
		{name: "author without seed", cfg: HostConfig{TestAuthor: "00112233445566778899aabbccddeeff"}, wantErr: ErrInvalidTestConfigs},
		{name: "bad author", cfg: HostConfig{TestSeed: validSeed, TestAuthor: "alice"}, wantErr: ErrInvalidTestConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── Seed / Author ─────────────────────────────────────────────────────────────

func TestSeed(t *testing.T) {
	_, ok, err := (&HostConfig{}).Seed()
	require.NoError(t, err)
	assert.False(t, ok)

	seed, ok, err := (&HostConfig{TestSeed: validSeed}).Seed()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, byte(0x0a), seed[0])
	assert.Equal(t, byte(0x0a), seed[SeedSize-1])

	_, _, err = (&HostConfig{TestSeed: "0a"}).Seed()
	assert.ErrorIs(t, err, ErrInvalidTestConfigs)
}

func TestAuthor(t *testing.T) {
	_, ok, err := (&HostConfig{}).Author()
	require.NoError(t, err)
	assert.False(t, ok)

	author, ok, err := (&HostConfig{TestAuthor: "0x00112233445566778899aabbccddeeff"}).Author()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "00112233445566778899aabbccddeeff", author.String())

	_, _, err = (&HostConfig{TestAuthor: "bob"}).Author()
	assert.ErrorIs(t, err, ErrInvalidTestConfigs)
}
