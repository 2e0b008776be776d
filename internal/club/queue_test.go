package club

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnqueueDeduplicatesAndKeepsOrder(t *testing.T) {
	c := newCommunity("guild-1")

	require.NoError(t, c.Enqueue(1, 4, "wanda"))
	require.NoError(t, c.Enqueue(1, 4, "willy"))
	require.NoError(t, c.Enqueue(1, 4, "wanda"))

	assert.Equal(t, []string{"wanda", "willy"}, c.Waiters(1, 4))
}

func TestEnqueueValidatesTarget(t *testing.T) {
	c := newCommunity("guild-1")

	assert.ErrorIs(t, c.Enqueue(9, 0, "wanda"), ErrUnknownClub)
	assert.ErrorIs(t, c.Enqueue(1, 99, "wanda"), ErrUnknownSeat)
}

func TestDrainIsExactlyOnce(t *testing.T) {
	c := newCommunity("guild-1")

	_, err := c.ClaimSeat(1, 4, "alice")
	require.NoError(t, err)
	require.NoError(t, c.Enqueue(1, 4, "w1"))
	require.NoError(t, c.Enqueue(1, 4, "w2"))
	require.NoError(t, c.Enqueue(1, 4, "w3"))

	vacancies, err := c.VacateSeat(1, 4, "alice")
	require.NoError(t, err)
	require.Len(t, vacancies, 1)
	assert.Equal(t, []string{"w1", "w2", "w3"}, vacancies[0].Waiters)
	assert.Equal(t, "RB", vacancies[0].Label)
	assert.Empty(t, c.Waiters(1, 4))

	// Emptying the already-empty seat again must fire nothing.
	vacancies, err = c.AssignSeat(1, 4, Empty)
	require.NoError(t, err)
	assert.Empty(t, vacancies)
}

func TestWaitersReturnsACopy(t *testing.T) {
	c := newCommunity("guild-1")

	require.NoError(t, c.Enqueue(1, 4, "wanda"))
	waiters := c.Waiters(1, 4)
	waiters[0] = "mallory"
	assert.Equal(t, []string{"wanda"}, c.Waiters(1, 4))
}
