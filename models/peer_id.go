package models

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
)

// PeerIDLength is the size in bytes of a [PeerID].
const PeerIDLength = 16

// ErrInvalidPeerID is returned when a peer identifier cannot be decoded.
var ErrInvalidPeerID = errors.New("invalid peer id")

// PeerID identifies the validator principal that safety rules sign for.
// Its text form is the lowercase hex encoding of the 16 raw bytes.
type PeerID [PeerIDLength]byte

// ParsePeerID decodes the hex text form of a [PeerID]. An optional "0x"
// prefix is accepted.
func ParsePeerID(s string) (PeerID, error) {
	var id PeerID
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}

	if len(s) != hex.EncodedLen(PeerIDLength) {
		return id, fmt.Errorf("%w: want %d hex characters, got %d", ErrInvalidPeerID, hex.EncodedLen(PeerIDLength), len(s))
	}

	if _, err := hex.Decode(id[:], []byte(s)); err != nil {
		return PeerID{}, fmt.Errorf("%w: %v", ErrInvalidPeerID, err)
	}

	return id, nil
}

// RandomPeerID reads [PeerIDLength] bytes from rng.
func RandomPeerID(rng io.Reader) (PeerID, error) {
	var id PeerID
	if _, err := io.ReadFull(rng, id[:]); err != nil {
		return PeerID{}, fmt.Errorf("read random peer id: %w", err)
	}
	return id, nil
}

// IsZero reports whether every byte of the identifier is zero.
func (id PeerID) IsZero() bool {
	return id == PeerID{}
}

func (id PeerID) String() string {
	return hex.EncodeToString(id[:])
}

// MarshalText implements [encoding.TextMarshaler].
func (id PeerID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (id *PeerID) UnmarshalText(text []byte) error {
	parsed, err := ParsePeerID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
