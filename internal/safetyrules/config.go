// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package safetyrules

import (
	"context"
	"fmt"
	"net/netip"

	"github.com/MKhiriev/safety-rules-config/internal/logger"
	"github.com/MKhiriev/safety-rules-config/internal/netaddr"
	"github.com/MKhiriev/safety-rules-config/internal/secure"
	"github.com/MKhiriev/safety-rules-config/internal/utils"
)

// Config is the safety rules section of a validator configuration.
type Config struct {
	// Backend selects the secure storage holding the safety rules keys.
	Backend secure.Backend `json:"backend"`

	// Logger configures the safety rules logger.
	Logger logger.Config `json:"logger"`

	// Service declares where safety rules run.
	Service Service `json:"service"`

	// Test carries ephemeral test identities. Nil in production.
	Test *TestConfig `json:"test,omitempty"`

	// VerifyVoteProposalSignature gates signature verification of vote
	// proposals before safety rules act on them.
	VerifyVoteProposalSignature bool `json:"verify_vote_proposal_signature"`
}

// DefaultConfig returns a configuration that runs without further input:
// in-memory backend, dedicated thread, signature verification on and no
// test record.
func DefaultConfig() Config {
	return Config{
		Backend:                     secure.InMemoryBackend(),
		Logger:                      logger.DefaultConfig(),
		Service:                     ThreadService(),
		Test:                        nil,
		VerifyVoteProposalSignature: true,
	}
}

type configFields Config

// UnmarshalJSON decodes data over the current value of c, so fields absent
// from data keep what c held. Keys must match exactly; only "test" may be
// null.
func (c *Config) UnmarshalJSON(data []byte) error {
	decoded := configFields(c.DuplicateForTesting())
	if err := utils.DecodeObject(data, &decoded); err != nil {
		return err
	}

	*c = Config(decoded)
	return nil
}

// SetDataDir points an on-disk backend at dir. For every other backend it
// does nothing.
func (c *Config) SetDataDir(dir string) {
	if c.Backend.Type == secure.OnDiskStorageType {
		c.Backend.OnDisk.SetDataDir(dir)
	}
}

// DuplicateForTesting copies c including any test keys and waypoint.
func (c Config) DuplicateForTesting() Config {
	c.Test = c.Test.DuplicateForTesting()
	return c
}

// DuplicateSanitized copies c; the copy's test record keeps only its
// author.
func (c Config) DuplicateSanitized() Config {
	c.Test = c.Test.DuplicateSanitized()
	return c
}

// RemoteEndpoint resolves the server address of a remote service mode. The
// boolean is false, with no error, for modes that run in the caller's
// process.
func (c Config) RemoteEndpoint(ctx context.Context, r netaddr.Resolver) (netip.AddrPort, bool, error) {
	switch c.Service.Mode {
	case ServiceProcess, ServiceSpawnedProcess:
		endpoint, err := c.Service.Remote.Resolve(ctx, r)
		if err != nil {
			return netip.AddrPort{}, true, err
		}
		return endpoint, true, nil
	case ServiceLocal, ServiceSerializer, ServiceThread:
		return netip.AddrPort{}, false, nil
	default:
		return netip.AddrPort{}, false, fmt.Errorf("%w: %q", ErrUnknownServiceMode, c.Service.Mode)
	}
}
