// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/safety-rules-config/internal/logger"
	"github.com/MKhiriev/safety-rules-config/models"
)

// validate checks that the final merged [HostConfig] can be used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *HostConfig) validate() error {
	if cfg.LogLevel != "" {
		if _, err := (logger.Config{Level: cfg.LogLevel}).ParseLevel(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
		}
	}

	if cfg.TestSeed != "" {
		if _, err := decodeSeed(cfg.TestSeed); err != nil {
			return fmt.Errorf("%w: test seed: %w", ErrInvalidTestConfigs, err)
		}
	}

	if cfg.TestAuthor != "" {
		if cfg.TestSeed == "" {
			return fmt.Errorf("%w: test author given without a test seed", ErrInvalidTestConfigs)
		}
		if _, err := models.ParsePeerID(cfg.TestAuthor); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidTestConfigs, err)
		}
	}

	return nil
}

// Seed returns the decoded test seed. ok is false when no seed is
// configured.
func (cfg *HostConfig) Seed() (seed [SeedSize]byte, ok bool, err error) {
	if cfg.TestSeed == "" {
		return seed, false, nil
	}

	seed, err = decodeSeed(cfg.TestSeed)
	if err != nil {
		return seed, false, fmt.Errorf("%w: test seed: %w", ErrInvalidTestConfigs, err)
	}
	return seed, true, nil
}

// Author returns the decoded test author. ok is false when no author is
// configured.
func (cfg *HostConfig) Author() (author models.PeerID, ok bool, err error) {
	if cfg.TestAuthor == "" {
		return author, false, nil
	}

	author, err = models.ParsePeerID(cfg.TestAuthor)
	if err != nil {
		return author, false, fmt.Errorf("%w: %w", ErrInvalidTestConfigs, err)
	}
	return author, true, nil
}
