// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the key material used by safety rules test fixtures.
//
// A [KeyPair] is an Ed25519 signing key together with its public half. Key
// generation never reaches for an ambient random source: the caller passes
// the [io.Reader] to draw the seed from, so a seeded reader yields the same
// key on every run.
package crypto

import (
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
)

// SeedSize is the number of random bytes consumed by [GenerateKeyPair].
const SeedSize = ed25519.SeedSize

var (
	// ErrInvalidPrivateKey is returned when a private key has the wrong
	// length or its text form cannot be decoded.
	ErrInvalidPrivateKey = errors.New("invalid ed25519 private key")
	// ErrNilRandomSource is returned when key generation is asked to read
	// from a nil source.
	ErrNilRandomSource = errors.New("nil random source")
)

// KeyPair is an Ed25519 private key and the public key derived from it.
//
// Its text form is the hex encoding of the 32-byte private seed; the
// public key is always re-derived on load.
type KeyPair struct {
	privateKey ed25519.PrivateKey
	publicKey  ed25519.PublicKey
}

// GenerateKeyPair draws [SeedSize] bytes from rng and expands them into a
// key pair. The same bytes always yield the same key pair.
func GenerateKeyPair(rng io.Reader) (*KeyPair, error) {
	if rng == nil {
		return nil, ErrNilRandomSource
	}

	seed := make([]byte, SeedSize)
	if _, err := io.ReadFull(rng, seed); err != nil {
		return nil, fmt.Errorf("read key seed: %w", err)
	}

	return keyPairFromSeed(seed), nil
}

// LoadKeyPair wraps an existing private key.
func LoadKeyPair(privateKey ed25519.PrivateKey) (*KeyPair, error) {
	if len(privateKey) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidPrivateKey, ed25519.PrivateKeySize, len(privateKey))
	}

	return keyPairFromSeed(privateKey.Seed()), nil
}

func keyPairFromSeed(seed []byte) *KeyPair {
	privateKey := ed25519.NewKeyFromSeed(seed)
	return &KeyPair{
		privateKey: privateKey,
		publicKey:  privateKey.Public().(ed25519.PublicKey),
	}
}

// PrivateKey returns a copy of the private key.
func (k *KeyPair) PrivateKey() ed25519.PrivateKey {
	return append(ed25519.PrivateKey(nil), k.privateKey...)
}

// PublicKey returns a copy of the public key.
func (k *KeyPair) PublicKey() ed25519.PublicKey {
	return append(ed25519.PublicKey(nil), k.publicKey...)
}

// Sign signs message with the private key.
func (k *KeyPair) Sign(message []byte) []byte {
	return ed25519.Sign(k.privateKey, message)
}

// Verify reports whether sig is a valid signature of message by this key.
func (k *KeyPair) Verify(message, sig []byte) bool {
	return ed25519.Verify(k.publicKey, message, sig)
}

// Equal reports whether both key pairs hold the same private key. Two nil
// key pairs are equal.
func (k *KeyPair) Equal(other *KeyPair) bool {
	if k == nil || other == nil {
		return k == other
	}
	return k.privateKey.Equal(other.privateKey)
}

// Clone returns an independent copy of the key pair.
func (k *KeyPair) Clone() *KeyPair {
	if k == nil {
		return nil
	}
	return &KeyPair{
		privateKey: k.PrivateKey(),
		publicKey:  k.PublicKey(),
	}
}

// String never prints key material.
func (k *KeyPair) String() string {
	if k == nil {
		return "<nil>"
	}
	return "ed25519:" + hex.EncodeToString(k.publicKey)
}

// MarshalText implements [encoding.TextMarshaler].
func (k KeyPair) MarshalText() ([]byte, error) {
	if len(k.privateKey) != ed25519.PrivateKeySize {
		return nil, ErrInvalidPrivateKey
	}
	return []byte(hex.EncodeToString(k.privateKey.Seed())), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (k *KeyPair) UnmarshalText(text []byte) error {
	if len(text) != hex.EncodedLen(SeedSize) {
		return fmt.Errorf("%w: want %d hex characters, got %d", ErrInvalidPrivateKey, hex.EncodedLen(SeedSize), len(text))
	}

	seed := make([]byte, SeedSize)
	if _, err := hex.Decode(seed, text); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}

	*k = *keyPairFromSeed(seed)
	return nil
}
