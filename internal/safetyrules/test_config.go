package safetyrules

import (
	"fmt"
	"io"

	"github.com/MKhiriev/safety-rules-config/internal/crypto"
	"github.com/MKhiriev/safety-rules-config/internal/utils"
	"github.com/MKhiriev/safety-rules-config/models"
)

// TestConfig carries ephemeral identities for test networks. It has no
// meaning in production deployments.
type TestConfig struct {
	Author           models.PeerID    `json:"author"`
	ConsensusKeyPair *crypto.KeyPair  `json:"consensus_private_key,omitempty"`
	ExecutionKeyPair *crypto.KeyPair  `json:"execution_private_key,omitempty"`
	Waypoint         *models.Waypoint `json:"waypoint,omitempty"`
}

// NewTestConfig returns a record for author with no keys and no waypoint.
func NewTestConfig(author models.PeerID) *TestConfig {
	return &TestConfig{Author: author}
}

// RandomConsensusKey replaces the consensus key pair with one generated
// from rng. On error the record is left unchanged.
func (c *TestConfig) RandomConsensusKey(rng io.Reader) error {
	kp, err := crypto.GenerateKeyPair(rng)
	if err != nil {
		return fmt.Errorf("generate consensus key: %w", err)
	}
	c.ConsensusKeyPair = kp
	return nil
}

// RandomExecutionKey replaces the execution key pair with one generated
// from rng. On error the record is left unchanged.
func (c *TestConfig) RandomExecutionKey(rng io.Reader) error {
	kp, err := crypto.GenerateKeyPair(rng)
	if err != nil {
		return fmt.Errorf("generate execution key: %w", err)
	}
	c.ExecutionKeyPair = kp
	return nil
}

// DuplicateForTesting returns a field-by-field copy, keys and waypoint
// included, sharing no memory with c. Use it to reuse fixtures across test
// cases.
func (c *TestConfig) DuplicateForTesting() *TestConfig {
	if c == nil {
		return nil
	}

	dup := &TestConfig{
		Author:           c.Author,
		ConsensusKeyPair: c.ConsensusKeyPair.Clone(),
		ExecutionKeyPair: c.ExecutionKeyPair.Clone(),
	}
	if c.Waypoint != nil {
		w := *c.Waypoint
		dup.Waypoint = &w
	}
	return dup
}

// DuplicateSanitized returns a record holding only the author. Keys and
// waypoint never survive it.
func (c *TestConfig) DuplicateSanitized() *TestConfig {
	if c == nil {
		return nil
	}
	return NewTestConfig(c.Author)
}

// HasKeys reports whether either key slot is filled.
func (c *TestConfig) HasKeys() bool {
	return c.ConsensusKeyPair != nil || c.ExecutionKeyPair != nil
}

type testConfigFields TestConfig

// UnmarshalJSON requires "author" and rejects unknown fields.
func (c *TestConfig) UnmarshalJSON(data []byte) error {
	fields, err := utils.ObjectFields(data)
	if err != nil {
		return fmt.Errorf("test: %w", err)
	}
	if err := fields.Require("author"); err != nil {
		return fmt.Errorf("test: %w", err)
	}

	var decoded testConfigFields
	if err := fields.DecodeInto(&decoded); err != nil {
		return fmt.Errorf("test: %w", err)
	}

	*c = TestConfig(decoded)
	return nil
}
