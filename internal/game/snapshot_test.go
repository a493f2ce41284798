package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedInput drives the player the same way for any session on a given tick.
func scriptedInput(s *Session, tick int) {
	switch tick % 40 {
	case 0:
		s.QueueMove(DirLeft)
	case 10:
		s.Fire(DirUp)
	case 20:
		s.QueueMove(DirRight)
	case 30:
		s.Fire(DirLeft)
	}
}

func runScripted(s *Session, from, n int) {
	for i := from; i < from+n; i++ {
		scriptedInput(s, i)
		s.Tick()
	}
}

func TestSnapshot_RestoredSessionReplaysIdentically(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 7
	cfg.EmergeChance = 20 // get opponents moving early
	orig, err := NewSession(cfg)
	require.NoError(t, err)
	runScripted(orig, 0, 300)

	snap, err := orig.Snapshot()
	require.NoError(t, err)
	b, err := EncodeSnapshot(snap)
	require.NoError(t, err)
	decoded, err := DecodeSnapshot(b)
	require.NoError(t, err)
	restored, err := RestoreSession(decoded)
	require.NoError(t, err)

	assert.Equal(t, orig.Summary(), restored.Summary())

	runScripted(orig, 300, 500)
	runScripted(restored, 300, 500)

	a, err := orig.Snapshot()
	require.NoError(t, err)
	c, err := restored.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, a, c, "restored session diverged")
	assert.Equal(t, orig.Summary(), restored.Summary())
}

func TestSnapshot_InjectedDiceRejected(t *testing.T) {
	ts := quietSim()
	_, err := ts.Session.Snapshot()
	require.ErrorIs(t, err, ErrSnapshotDice)
}

func TestRestoreSession_BadVersion(t *testing.T) {
	s, err := NewSession(DefaultConfig())
	require.NoError(t, err)
	snap, err := s.Snapshot()
	require.NoError(t, err)
	snap.Version = 99
	_, err = RestoreSession(snap)
	require.Error(t, err)
}

func TestRestoreSession_InvalidConfig(t *testing.T) {
	s, err := NewSession(DefaultConfig())
	require.NoError(t, err)
	snap, err := s.Snapshot()
	require.NoError(t, err)
	snap.Config.MaxBullets = 0
	_, err = RestoreSession(snap)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestDecodeSnapshot_Garbage(t *testing.T) {
	_, err := DecodeSnapshot([]byte{0xc1, 0x00})
	require.Error(t, err)
}
