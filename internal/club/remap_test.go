package club

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeFormationExactLabelWins(t *testing.T) {
	c := newCommunity("guild-1")
	// 4-3-3: [GK LB CB CB RB CM CM CM LW ST RW]
	_, err := c.ClaimSeat(1, 9, "alice") // ST
	require.NoError(t, err)
	_, err = c.ClaimSeat(1, 2, "bob") // CB
	require.NoError(t, err)

	// 4-4-2: [GK LB CB CB RB LM CM CM RM ST ST]
	result, err := c.ChangeFormation(1, "4-4-2")
	require.NoError(t, err)
	assert.Empty(t, result.Dropped)

	board := c.Boards[1]
	assert.Equal(t, "4-4-2", board.FormationID)

	aliceSeat, bobSeat := -1, -1
	for i, seat := range board.Seats {
		switch seat.Occupant {
		case Occupant("alice"):
			aliceSeat = i
		case Occupant("bob"):
			bobSeat = i
		}
	}
	require.NotEqual(t, -1, aliceSeat)
	require.NotEqual(t, -1, bobSeat)
	assert.Equal(t, "ST", board.Seats[aliceSeat].Label)
	assert.Equal(t, "CB", board.Seats[bobSeat].Label)
}

func TestChangeFormationRoleGroupFallback(t *testing.T) {
	c := newCommunity("guild-1")
	// 3-5-2: [GK CB CB CB LWB CM CDM CM RWB ST ST]
	_, err := c.ChangeFormation(1, "3-5-2")
	require.NoError(t, err)
	_, err = c.ClaimSeat(1, 4, "carol") // LWB
	require.NoError(t, err)

	// 4-4-2 has no wingback seats, so carol falls back to the full-back
	// group: LB or RB.
	result, err := c.ChangeFormation(1, "4-4-2")
	require.NoError(t, err)
	assert.Empty(t, result.Dropped)

	board := c.Boards[1]
	carolSeat := -1
	for i, seat := range board.Seats {
		if seat.Occupant == Occupant("carol") {
			carolSeat = i
		}
	}
	require.NotEqual(t, -1, carolSeat)
	assert.Contains(t, []string{"LB", "RB"}, board.Seats[carolSeat].Label)
}

func TestRemapDeterministic(t *testing.T) {
	old := []occupantSlot{
		{Occupant("u1"), "ST"},
		{Occupant("u2"), "CB"},
		{Occupant("u3"), "CM"},
		{Occupant("u4"), "GK"},
	}
	newLabels := []string{"GK", "CB", "CM", "CM", "ST"}

	first, firstLeft := remapOccupants(old, newLabels)
	second, secondLeft := remapOccupants(old, newLabels)
	assert.Equal(t, first, second)
	assert.Equal(t, firstLeft, secondLeft)
}

func TestRemapPreservesHeadcount(t *testing.T) {
	var old []occupantSlot
	labels := []string{"GK", "LB", "CB", "CB", "RB", "CM", "CM", "CM", "LW", "ST", "RW"}
	for i, label := range labels {
		old = append(old, occupantSlot{Occupant(fmt.Sprintf("u%d", i)), label})
	}

	assigned, leftover := remapOccupants(old, []string{"GK", "LB", "CB", "CB", "RB", "LM", "CM", "CM", "RM", "ST", "ST"})
	assert.Empty(t, leftover)
	filled := 0
	for _, occupant := range assigned {
		if occupant != Empty {
			filled++
		}
	}
	assert.Equal(t, len(old), filled)
}

func TestRemapDropsExactlyTheOverflow(t *testing.T) {
	var old []occupantSlot
	for i := 0; i < 7; i++ {
		old = append(old, occupantSlot{Occupant(fmt.Sprintf("u%d", i)), "CM"})
	}

	assigned, leftover := remapOccupants(old, []string{"GK", "CB", "CM", "CM", "ST"})
	assert.Len(t, leftover, 2)

	filled := 0
	seen := map[Occupant]bool{}
	for _, occupant := range assigned {
		if occupant == Empty {
			continue
		}
		filled++
		assert.False(t, seen[occupant], "occupant duplicated")
		seen[occupant] = true
	}
	assert.Equal(t, 5, filled)
}

func TestChangeFormationDownsizeEnqueuesDropped(t *testing.T) {
	c := newCommunity("guild-1")
	for i := 0; i < 11; i++ {
		_, err := c.ClaimSeat(1, i, fmt.Sprintf("u%d", i))
		require.NoError(t, err)
	}

	// 5-a-side: [GK CB CM CM ST] — six occupants cannot fit.
	result, err := c.ChangeFormation(1, "5-a-side")
	require.NoError(t, err)
	require.Len(t, result.Dropped, 6)

	filled := 0
	for _, seat := range result.Board.Seats {
		if !seat.Open() {
			filled++
		}
	}
	assert.Equal(t, 5, filled)

	for _, dropped := range result.Dropped {
		require.True(t, dropped.Occupant.IsUser())
		require.GreaterOrEqual(t, dropped.SeatIndex, 0)
		require.Less(t, dropped.SeatIndex, len(result.Board.Seats))
		assert.Contains(t, c.Waiters(1, dropped.SeatIndex), string(dropped.Occupant))
	}
}

func TestChangeFormationDropsPlaceholderWithoutQueueing(t *testing.T) {
	c := newCommunity("guild-1")
	for i := 0; i < 11; i++ {
		_, err := c.AssignSeat(1, i, Placeholder)
		require.NoError(t, err)
	}

	result, err := c.ChangeFormation(1, "5-a-side")
	require.NoError(t, err)
	require.Len(t, result.Dropped, 6)
	for _, dropped := range result.Dropped {
		assert.Equal(t, Placeholder, dropped.Occupant)
		assert.Equal(t, -1, dropped.SeatIndex)
	}
	for index := range result.Board.Seats {
		assert.Empty(t, c.Waiters(1, index))
	}
}

func TestChangeFormationUnknownFormation(t *testing.T) {
	c := newCommunity("guild-1")

	_, err := c.ChangeFormation(1, "9-9-9")
	assert.ErrorIs(t, err, ErrUnknownFormation)
	assert.Equal(t, "4-3-3", c.Boards[1].FormationID)
}
