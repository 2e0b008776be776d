package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponentIDRoundTrip(t *testing.T) {
	cmd, err := parseComponent(componentID("claim", 3), []string{"7"})
	require.NoError(t, err)
	assert.Equal(t, ClaimSeat{ClubKey: 3, SeatIndex: 7}, cmd)
}

func TestParseComponentVerbs(t *testing.T) {
	cases := []struct {
		customID string
		values   []string
		want     Command
	}{
		{"show:2", nil, ShowBoard{ClubKey: 2}},
		{"leave:1", nil, LeaveSeat{ClubKey: 1}},
		{"claim:1", []string{"0"}, ClaimSeat{ClubKey: 1, SeatIndex: 0}},
		{"wait:4", []string{"9"}, JoinWaitlist{ClubKey: 4, SeatIndex: 9}},
		{"movesrc:1", []string{"2"}, MarkMove{ClubKey: 1, SeatIndex: 2}},
		{"movedst:1", []string{"5"}, CompleteMove{ClubKey: 1, SeatIndex: 5}},
	}
	for _, tc := range cases {
		cmd, err := parseComponent(tc.customID, tc.values)
		require.NoError(t, err, tc.customID)
		assert.Equal(t, tc.want, cmd, tc.customID)
	}
}

func TestParseComponentRejectsGarbage(t *testing.T) {
	cases := []struct {
		customID string
		values   []string
	}{
		{"claim", []string{"1"}},
		{"claim:one", []string{"1"}},
		{"claim:1:extra", []string{"1"}},
		{"teleport:1", []string{"1"}},
		{"claim:1", nil},
		{"claim:1", []string{"first"}},
		{"wait:1", []string{"1", "2"}},
	}
	for _, tc := range cases {
		_, err := parseComponent(tc.customID, tc.values)
		assert.Error(t, err, tc.customID)
	}
}

func TestParseLabels(t *testing.T) {
	assert.Equal(t, []string{"ST", "LW", "CAM"}, parseLabels("st, lw cam"))
	assert.Equal(t, []string{"GK"}, parseLabels("  gk  "))
	assert.Empty(t, parseLabels(" , ,, "))
}
