package safetyrules

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/safety-rules-config/internal/utils"
	"github.com/goccy/go-yaml"
)

// Format is a serialized form of [Config].
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from the file extension: ".yaml" and
// ".yml" are YAML, anything else is JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Unmarshal strictly decodes a JSON configuration on top of
// [DefaultConfig].
func Unmarshal(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := utils.DecodeStrict(data, &cfg); err != nil {
		return Config{}, &ParseError{Format: FormatJSON, Err: err}
	}
	return cfg, nil
}

// UnmarshalYAML strictly decodes a YAML configuration. The document is
// converted to JSON first so both forms share one set of rules.
func UnmarshalYAML(data []byte) (Config, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return DefaultConfig(), nil
	}

	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return Config{}, &ParseError{Format: FormatYAML, Err: err}
	}

	cfg := DefaultConfig()
	if err := utils.DecodeStrict(jsonData, &cfg); err != nil {
		return Config{}, &ParseError{Format: FormatYAML, Err: err}
	}
	return cfg, nil
}

// Load reads and decodes a configuration in the given format.
func Load(r io.Reader, format Format) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("read safety rules config: %w", err)
	}

	switch format {
	case FormatJSON:
		return Unmarshal(data)
	case FormatYAML:
		return UnmarshalYAML(data)
	default:
		return Config{}, fmt.Errorf("unsupported safety rules config format %q", format)
	}
}

// LoadFile reads the configuration at path; see [FormatFromPath].
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open safety rules config: %w", err)
	}
	defer f.Close()

	return Load(f, FormatFromPath(path))
}

// Marshal encodes cfg as indented JSON.
func Marshal(cfg Config) ([]byte, error) {
	return json.MarshalIndent(cfg, "", "  ")
}

// MarshalYAML encodes cfg as YAML.
func MarshalYAML(cfg Config) ([]byte, error) {
	jsonData, err := json.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	return yaml.JSONToYAML(jsonData)
}
