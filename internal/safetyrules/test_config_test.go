package safetyrules

import (
	"bytes"
	"encoding/binary"
	"io"
	"math/rand/v2"
	"testing"

	"github.com/MKhiriev/safety-rules-config/internal/crypto"
	"github.com/MKhiriev/safety-rules-config/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSeededSource returns a deterministic byte source for seed.
func newSeededSource(seed uint64) io.Reader {
	var s [32]byte
	binary.LittleEndian.PutUint64(s[:], seed)
	return rand.NewChaCha8(s)
}

var testAuthor = models.PeerID{0xde, 0xad, 0xbe, 0xef}

// ── NewTestConfig ─────────────────────────────────────────────────────────────

func TestNewTestConfig_StartsEmpty(t *testing.T) {
	c := NewTestConfig(testAuthor)

	assert.Equal(t, testAuthor, c.Author)
	assert.Nil(t, c.ConsensusKeyPair)
	assert.Nil(t, c.ExecutionKeyPair)
	assert.Nil(t, c.Waypoint)
	assert.False(t, c.HasKeys())
}

// ── key generation ────────────────────────────────────────────────────────────

// TestRandomConsensusKey_Deterministic verifies that the same seed yields the
// same consensus key on independent records.
func TestRandomConsensusKey_Deterministic(t *testing.T) {
	a := NewTestConfig(testAuthor)
	b := NewTestConfig(testAuthor)

	require.NoError(t, a.RandomConsensusKey(newSeededSource(42)))
	require.NoError(t, b.RandomConsensusKey(newSeededSource(42)))

	assert.True(t, a.ConsensusKeyPair.Equal(b.ConsensusKeyPair))
	assert.Nil(t, a.ExecutionKeyPair)
}

// TestRandomConsensusKey_OverwritesSlot verifies that a second call replaces
// the key, and replaces it with the same value when the source is reset.
func TestRandomConsensusKey_OverwritesSlot(t *testing.T) {
	c := NewTestConfig(testAuthor)

	require.NoError(t, c.RandomConsensusKey(newSeededSource(42)))
	first := c.ConsensusKeyPair

	require.NoError(t, c.RandomConsensusKey(newSeededSource(42)))
	assert.NotSame(t, first, c.ConsensusKeyPair)
	assert.True(t, first.Equal(c.ConsensusKeyPair))

	require.NoError(t, c.RandomConsensusKey(newSeededSource(43)))
	assert.False(t, first.Equal(c.ConsensusKeyPair))
}

// TestRandomKeys_SharedSource verifies that consecutive draws from one source
// produce distinct consensus and execution keys.
func TestRandomKeys_SharedSource(t *testing.T) {
	rng := newSeededSource(9)
	c := NewTestConfig(testAuthor)

	require.NoError(t, c.RandomConsensusKey(rng))
	require.NoError(t, c.RandomExecutionKey(rng))

	require.NotNil(t, c.ConsensusKeyPair)
	require.NotNil(t, c.ExecutionKeyPair)
	assert.False(t, c.ConsensusKeyPair.Equal(c.ExecutionKeyPair))
	assert.True(t, c.HasKeys())
}

// TestRandomExecutionKey_MatchesGenerator verifies that the execution slot
// holds exactly what the key generator produces from the same bytes.
func TestRandomExecutionKey_MatchesGenerator(t *testing.T) {
	c := NewTestConfig(testAuthor)
	require.NoError(t, c.RandomExecutionKey(newSeededSource(5)))

	want, err := crypto.GenerateKeyPair(newSeededSource(5))
	require.NoError(t, err)

	assert.True(t, want.Equal(c.ExecutionKeyPair))
	assert.Nil(t, c.ConsensusKeyPair)
}

func TestRandomKeys_SourceErrorsLeaveRecordUnchanged(t *testing.T) {
	c := NewTestConfig(testAuthor)
	require.NoError(t, c.RandomConsensusKey(newSeededSource(1)))
	before := c.DuplicateForTesting()

	err := c.RandomConsensusKey(bytes.NewReader([]byte{1, 2, 3}))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	err = c.RandomExecutionKey(nil)
	require.ErrorIs(t, err, crypto.ErrNilRandomSource)

	assert.Equal(t, before, c)
}

// ── duplication ───────────────────────────────────────────────────────────────

func newProvisionedTestConfig(t *testing.T) *TestConfig {
	t.Helper()

	c := NewTestConfig(testAuthor)
	require.NoError(t, c.RandomConsensusKey(newSeededSource(100)))
	require.NoError(t, c.RandomExecutionKey(newSeededSource(200)))
	w := models.NewWaypoint(10, []byte("genesis"))
	c.Waypoint = &w
	return c
}

// TestDuplicateForTesting verifies a verbatim copy that shares no memory
// with the original.
func TestDuplicateForTesting(t *testing.T) {
	c := newProvisionedTestConfig(t)

	dup := c.DuplicateForTesting()

	assert.Equal(t, c, dup)
	assert.NotSame(t, c, dup)
	assert.NotSame(t, c.ConsensusKeyPair, dup.ConsensusKeyPair)
	assert.NotSame(t, c.ExecutionKeyPair, dup.ExecutionKeyPair)
	assert.NotSame(t, c.Waypoint, dup.Waypoint)

	dup.Waypoint.Version = 11
	require.NoError(t, dup.RandomConsensusKey(newSeededSource(101)))
	assert.Equal(t, uint64(10), c.Waypoint.Version)
	assert.False(t, c.ConsensusKeyPair.Equal(dup.ConsensusKeyPair))
}

// TestDuplicateSanitized verifies that keys and waypoint never survive the
// sanitized copy while the author does.
func TestDuplicateSanitized(t *testing.T) {
	c := newProvisionedTestConfig(t)

	dup := c.DuplicateSanitized()

	assert.Equal(t, NewTestConfig(testAuthor), dup)
	assert.Nil(t, dup.ConsensusKeyPair)
	assert.Nil(t, dup.ExecutionKeyPair)
	assert.Nil(t, dup.Waypoint)

	assert.True(t, c.HasKeys())
	assert.NotNil(t, c.Waypoint)
}

func TestDuplicate_Nil(t *testing.T) {
	var c *TestConfig

	assert.Nil(t, c.DuplicateForTesting())
	assert.Nil(t, c.DuplicateSanitized())
}

// ── JSON ──────────────────────────────────────────────────────────────────────

func TestTestConfig_JSONOmitsEmptySlots(t *testing.T) {
	data, err := Marshal(Config{
		Backend: DefaultConfig().Backend,
		Logger:  DefaultConfig().Logger,
		Service: LocalService(),
		Test:    NewTestConfig(testAuthor),
	})
	require.NoError(t, err)

	assert.Contains(t, string(data), `"author": "deadbeef000000000000000000000000"`)
	assert.NotContains(t, string(data), "consensus_private_key")
	assert.NotContains(t, string(data), "execution_private_key")
	assert.NotContains(t, string(data), "waypoint")
}
