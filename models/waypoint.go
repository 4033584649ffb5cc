// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/sha3"
)

// WaypointHashLength is the size in bytes of a waypoint's ledger-info hash.
const WaypointHashLength = 32

// ErrInvalidWaypoint is returned when the text form of a waypoint is
// malformed.
var ErrInvalidWaypoint = errors.New("invalid waypoint")

// Waypoint is a trusted checkpoint: the ledger version together with the
// hash of the ledger info committed at that version. A node that trusts a
// waypoint can verify chain state from that point on without replaying the
// full history.
//
// Text form: "<version>:<hex hash>", e.g. "0:8f1c...".
type Waypoint struct {
	Version uint64
	Value   [WaypointHashLength]byte
}

// NewWaypoint builds a [Waypoint] for version whose value is the SHA3-256
// digest of the serialized ledger info.
func NewWaypoint(version uint64, ledgerInfo []byte) Waypoint {
	return Waypoint{
		Version: version,
		Value:   sha3.Sum256(ledgerInfo),
	}
}

// ParseWaypoint decodes the text form of a [Waypoint].
func ParseWaypoint(s string) (Waypoint, error) {
	versionPart, valuePart, ok := strings.Cut(s, ":")
	if !ok {
		return Waypoint{}, fmt.Errorf("%w: missing ':' separator", ErrInvalidWaypoint)
	}

	version, err := strconv.ParseUint(versionPart, 10, 64)
	if err != nil {
		return Waypoint{}, fmt.Errorf("%w: version: %v", ErrInvalidWaypoint, err)
	}

	if len(valuePart) != hex.EncodedLen(WaypointHashLength) {
		return Waypoint{}, fmt.Errorf("%w: want %d hex characters, got %d", ErrInvalidWaypoint, hex.EncodedLen(WaypointHashLength), len(valuePart))
	}

	w := Waypoint{Version: version}
	if _, err := hex.Decode(w.Value[:], []byte(valuePart)); err != nil {
		return Waypoint{}, fmt.Errorf("%w: value: %v", ErrInvalidWaypoint, err)
	}

	return w, nil
}

func (w Waypoint) String() string {
	return strconv.FormatUint(w.Version, 10) + ":" + hex.EncodeToString(w.Value[:])
}

// MarshalText implements [encoding.TextMarshaler].
func (w Waypoint) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (w *Waypoint) UnmarshalText(text []byte) error {
	parsed, err := ParseWaypoint(string(text))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}
