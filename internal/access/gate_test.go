package access

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func neverBlocked(string) bool { return false }

func TestCanManageByPermissionBit(t *testing.T) {
	assert.True(t, CanManage(Actor{ID: "u1", Permissions: discordgo.PermissionAdministrator}))
	assert.True(t, CanManage(Actor{ID: "u1", Permissions: discordgo.PermissionManageServer}))
	assert.False(t, CanManage(Actor{ID: "u1", Permissions: discordgo.PermissionSendMessages}))
}

func TestCanManageByRoleName(t *testing.T) {
	cases := []struct {
		role string
		want bool
	}{
		{"Club Manager", true},
		{"CAPTAIN", true},
		{"Media Team Lead", true},
		{"moderator", true},
		{"Member", false},
		{"Fans", false},
	}
	for _, tc := range cases {
		actor := Actor{ID: "u1", RoleNames: []string{"Member", tc.role}}
		assert.Equal(t, tc.want, CanManage(actor), tc.role)
	}
}

func TestCheckManageRejectsNonManager(t *testing.T) {
	err := CheckManage(Actor{ID: "u1"}, neverBlocked)
	assert.ErrorIs(t, err, ErrNotManager)
}

func TestCheckManageBlockOverridesManager(t *testing.T) {
	actor := Actor{ID: "u1", Permissions: discordgo.PermissionAdministrator}
	err := CheckManage(actor, func(id string) bool { return id == "u1" })
	assert.ErrorIs(t, err, ErrBlocked)
}

func TestCheckMoveOthersAllowsVoiceMembers(t *testing.T) {
	assert.NoError(t, CheckMoveOthers(Actor{ID: "u1", InVoice: true}, neverBlocked))
	assert.ErrorIs(t, CheckMoveOthers(Actor{ID: "u1"}, neverBlocked), ErrNotManager)
}

func TestCheckMoveOthersBlockDefeatsEveryone(t *testing.T) {
	blocked := func(string) bool { return true }
	actor := Actor{ID: "u1", Permissions: discordgo.PermissionAdministrator, InVoice: true}
	assert.ErrorIs(t, CheckMoveOthers(actor, blocked), ErrBlocked)
	assert.ErrorIs(t, CheckMoveOthers(Actor{ID: "u2", InVoice: true}, blocked), ErrBlocked)
}
