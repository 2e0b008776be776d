package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryFormationStartsWithGoalkeeper(t *testing.T) {
	for _, id := range IDs() {
		f, ok := Get(id)
		require.True(t, ok, id)
		require.NotEmpty(t, f.Labels, id)
		assert.Equal(t, "GK", f.Labels[0], id)
		assert.Equal(t, id, f.ID)
	}
}

func TestDefaultIsListed(t *testing.T) {
	_, ok := Get(Default)
	assert.True(t, ok)
	assert.Contains(t, IDs(), Default)
}

func TestGetUnknown(t *testing.T) {
	_, ok := Get("2-2-2")
	assert.False(t, ok)
}

func TestIDsReturnsACopy(t *testing.T) {
	ids := IDs()
	ids[0] = "tampered"
	assert.NotEqual(t, "tampered", IDs()[0])
}

func TestClassify(t *testing.T) {
	cases := []struct {
		label string
		group RoleGroup
	}{
		{"GK", Goalkeeper},
		{"CB", CentreBack},
		{"LB", FullBack},
		{"RWB", FullBack},
		{"CDM", HoldingMid},
		{"CM", CentreMid},
		{"CAM", AttackingMid},
		{"LM", WideMid},
		{"RW", Winger},
		{"ST", Striker},
		{"CF", Striker},
		{"st", Striker},
		{" gk ", Goalkeeper},
		{"SWEEPER", Other},
		{"", Other},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.group, Classify(tc.label), tc.label)
	}
}

func TestRoleGroupString(t *testing.T) {
	assert.Equal(t, "goalkeeper", Goalkeeper.String())
	assert.Equal(t, "striker", Striker.String())
	assert.Equal(t, "other", RoleGroup(99).String())
}
