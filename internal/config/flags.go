package config

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
)

// SeedSize is the length in bytes of a decoded test seed.
const SeedSize = 32

// HexSeed holds a hex encoded test seed.
// It implements the flag.Value interface.
type HexSeed struct {
	Hex string
}

// String returns the hex text of the seed.
func (s *HexSeed) String() string {
	return s.Hex
}

// Set checks that value is SeedSize bytes of hex and stores it.
func (s *HexSeed) Set(value string) error {
	if _, err := decodeSeed(value); err != nil {
		return err
	}

	s.Hex = value
	return nil
}

func decodeSeed(value string) ([SeedSize]byte, error) {
	var seed [SeedSize]byte
	if len(value) != hex.EncodedLen(SeedSize) {
		return seed, fmt.Errorf("need %d hex characters, got %d", hex.EncodedLen(SeedSize), len(value))
	}
	if _, err := hex.Decode(seed[:], []byte(value)); err != nil {
		return seed, errors.New("seed is not hex encoded")
	}
	return seed, nil
}

// parseFlags parses the host flags from args, which excludes the program
// name.
//
// Flags:
//
//	-c/-config safety rules configuration file (JSON or YAML)
//	-data-dir node data directory for an on-disk backend
//	-log-level log level override
//	-role logger role
//	-test-seed 64 hex characters seeding test key provisioning
//	-test-author hex principal of the provisioned test record
//	-resolve resolve the remote service address at startup
func parseFlags(args []string) (*HostConfig, error) {
	var configPath string
	var dataDir string
	var logLevel string
	var role string
	var testSeed HexSeed
	var testAuthor string
	var resolve bool

	fs := flag.NewFlagSet("safety-rules", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&configPath, "c", "", "Safety rules config file path")
	fs.StringVar(&configPath, "config", "", "Safety rules config file path (alias)")
	fs.StringVar(&dataDir, "data-dir", "", "Node data directory")
	fs.StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	fs.StringVar(&role, "role", "", "Logger role")
	fs.Var(&testSeed, "test-seed", "Hex seed for test key provisioning")
	fs.StringVar(&testAuthor, "test-author", "", "Hex author of the test record")
	fs.BoolVar(&resolve, "resolve", false, "Resolve the remote service address")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &HostConfig{
		ConfigPath: configPath,
		DataDir:    dataDir,
		LogLevel:   logLevel,
		Role:       role,
		TestSeed:   testSeed.Hex,
		TestAuthor: testAuthor,
		Resolve:    resolve,
	}, nil
}
