package bot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingMoveMarkAndTake(t *testing.T) {
	pending := newPendingMoves(time.Minute)
	pending.Mark("guild-1", "alice", 1, 4)

	move, ok := pending.Take("guild-1", "alice", 1)
	require.True(t, ok)
	assert.Equal(t, 1, move.clubKey)
	assert.Equal(t, 4, move.fromIndex)

	// Consumed: a second take finds nothing.
	_, ok = pending.Take("guild-1", "alice", 1)
	assert.False(t, ok)
}

func TestPendingMoveSupersededBySecondMark(t *testing.T) {
	pending := newPendingMoves(time.Minute)
	pending.Mark("guild-1", "alice", 1, 4)
	pending.Mark("guild-1", "alice", 1, 7)

	move, ok := pending.Take("guild-1", "alice", 1)
	require.True(t, ok)
	assert.Equal(t, 7, move.fromIndex)
}

func TestPendingMoveDifferentClubCancels(t *testing.T) {
	pending := newPendingMoves(time.Minute)
	pending.Mark("guild-1", "alice", 1, 4)

	_, ok := pending.Take("guild-1", "alice", 2)
	assert.False(t, ok)

	// Cancelled, not kept for the original club either.
	_, ok = pending.Take("guild-1", "alice", 1)
	assert.False(t, ok)
}

func TestPendingMoveScopedToActor(t *testing.T) {
	pending := newPendingMoves(time.Minute)
	pending.Mark("guild-1", "alice", 1, 4)

	_, ok := pending.Take("guild-1", "bob", 1)
	assert.False(t, ok)
	_, ok = pending.Take("guild-2", "alice", 1)
	assert.False(t, ok)
}

func TestPendingMoveSweepExpiresStaleIntents(t *testing.T) {
	pending := newPendingMoves(time.Millisecond)
	pending.Mark("guild-1", "alice", 1, 4)

	time.Sleep(5 * time.Millisecond)
	pending.Sweep()

	_, ok := pending.Take("guild-1", "alice", 1)
	assert.False(t, ok)
}
