package models

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeerID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "plain hex", input: "00112233445566778899aabbccddeeff"},
		{name: "0x prefix", input: "0x00112233445566778899aabbccddeeff"},
		{name: "uppercase", input: "00112233445566778899AABBCCDDEEFF"},
		{name: "too short", input: "0011", wantErr: true},
		{name: "too long", input: strings.Repeat("a", 34), wantErr: true},
		{name: "not hex", input: strings.Repeat("z", 32), wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ParsePeerID(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidPeerID)
				assert.True(t, id.IsZero())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "00112233445566778899aabbccddeeff", id.String())
		})
	}
}

func TestRandomPeerID_ReadsFromSource(t *testing.T) {
	src := bytes.NewReader(bytes.Repeat([]byte{0x7f}, PeerIDLength))

	id, err := RandomPeerID(src)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("7f", PeerIDLength), id.String())
}

func TestRandomPeerID_ShortSource(t *testing.T) {
	_, err := RandomPeerID(bytes.NewReader([]byte{1, 2, 3}))
	require.Error(t, err)
}

func TestPeerID_JSON(t *testing.T) {
	id, err := ParsePeerID("0102030405060708090a0b0c0d0e0f10")
	require.NoError(t, err)

	b, err := json.Marshal(id)
	require.NoError(t, err)
	assert.JSONEq(t, `"0102030405060708090a0b0c0d0e0f10"`, string(b))

	var decoded PeerID
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, id, decoded)

	assert.Error(t, json.Unmarshal([]byte(`"nope"`), &decoded))
}
