package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/safety-rules-config/internal/logger"
	"github.com/MKhiriev/safety-rules-config/internal/safetyrules"
	"github.com/MKhiriev/safety-rules-config/internal/secure"
	"github.com/MKhiriev/safety-rules-config/internal/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestGetSafetyRulesConfig_Defaults(t *testing.T) {
	cfg, err := GetSafetyRulesConfig(context.Background(), &HostConfig{DataDir: "/data"})
	require.NoError(t, err)

	// the in-memory default ignores the data directory
	assert.Equal(t, safetyrules.DefaultConfig(), cfg)
}

// TestGetSafetyRulesConfig_LogsToContextLogger verifies that the config
// source is reported through the logger attached to ctx.
func TestGetSafetyRulesConfig_LogsToContextLogger(t *testing.T) {
	path := writeTempConfig(t, "sr.json", `{}`)

	var buf bytes.Buffer
	log, _, err := logger.New("test", logger.Config{Level: "debug"}, &buf)
	require.NoError(t, err)
	ctx := log.WithContext(context.Background())

	_, err = GetSafetyRulesConfig(ctx, &HostConfig{ConfigPath: path})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "loaded safety rules config")
	assert.Contains(t, buf.String(), path)
}

func TestGetSafetyRulesConfig_AppliesDataDir(t *testing.T) {
	path := writeTempConfig(t, "sr.json", `{"backend": {"type": "on_disk_storage", "path": "sr.json"}}`)

	cfg, err := GetSafetyRulesConfig(context.Background(), &HostConfig{ConfigPath: path, DataDir: "/var/lib/v"})
	require.NoError(t, err)

	assert.Equal(t, secure.OnDiskStorageType, cfg.Backend.Type)
	assert.Equal(t, "/var/lib/v/sr.json", cfg.Backend.OnDisk.FullPath())
}

func TestGetSafetyRulesConfig_LogLevelOverride(t *testing.T) {
	path := writeTempConfig(t, "sr.yaml", "logger:\n  level: error\n")

	cfg, err := GetSafetyRulesConfig(context.Background(), &HostConfig{ConfigPath: path, LogLevel: "trace"})
	require.NoError(t, err)
	assert.Equal(t, "trace", cfg.Logger.Level)
}

func TestGetSafetyRulesConfig_ParseError(t *testing.T) {
	path := writeTempConfig(t, "sr.json", `{"service": {"type": "daemon"}}`)

	_, err := GetSafetyRulesConfig(context.Background(), &HostConfig{ConfigPath: path})

	var parseErr *safetyrules.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.ErrorIs(t, err, safetyrules.ErrUnknownServiceMode)
}

// TestGetSafetyRulesConfig_SemanticError verifies that a document that
// decodes but breaks a semantic rule is rejected.
func TestGetSafetyRulesConfig_SemanticError(t *testing.T) {
	path := writeTempConfig(t, "sr.json", `{"backend": {"type": "on_disk_storage", "path": ""}}`)

	_, err := GetSafetyRulesConfig(context.Background(), &HostConfig{ConfigPath: path})

	require.ErrorIs(t, err, ErrInvalidSafetyRulesConfig)
	assert.ErrorIs(t, err, validators.ErrInvalidBackend)
}

func TestGetSafetyRulesConfig_MissingFile(t *testing.T) {
	_, err := GetSafetyRulesConfig(context.Background(), &HostConfig{ConfigPath: filepath.Join(t.TempDir(), "none.json")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
