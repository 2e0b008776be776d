package access

import (
	"errors"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Authorization errors. Nothing has been mutated when one is returned.
var (
	ErrNotManager = errors.New("you need a manager role for that")
	ErrBlocked    = errors.New("you are blocked from moving other players")
)

// Actor is a snapshot of whoever triggered an interaction, built by the
// adapter from the interaction payload. Keeping it a plain value keeps the
// gate a pure predicate.
type Actor struct {
	ID          string
	Permissions int64
	RoleNames   []string
	InVoice     bool
}

// Role names containing any of these qualify as managers, matched as a
// case-insensitive substring ("Media Team Lead" counts via "lead").
var manageKeywords = []string{
	"manager",
	"captain",
	"coach",
	"staff",
	"admin",
	"mod",
	"lead",
}

const elevated = discordgo.PermissionAdministrator | discordgo.PermissionManageServer

// CanManage reports whether the actor holds an elevated permission or a
// manager-flavoured role name.
func CanManage(actor Actor) bool {
	if actor.Permissions&elevated != 0 {
		return true
	}
	for _, role := range actor.RoleNames {
		lowered := strings.ToLower(role)
		for _, keyword := range manageKeywords {
			if strings.Contains(lowered, keyword) {
				return true
			}
		}
	}
	return false
}

// CheckManage gates the privileged mutation entry points (assign, swap,
// reset, formation change, club config). The block list overrides even a
// manager match.
func CheckManage(actor Actor, blocked func(string) bool) error {
	if !CanManage(actor) {
		return ErrNotManager
	}
	if blocked(actor.ID) {
		return ErrBlocked
	}
	return nil
}

// CheckMoveOthers gates the self-service "pick a seat, move someone" flow:
// managers qualify, and so does anyone currently sitting in a voice
// channel, but the block list defeats both.
func CheckMoveOthers(actor Actor, blocked func(string) bool) error {
	if !CanManage(actor) && !actor.InVoice {
		return ErrNotManager
	}
	if blocked(actor.ID) {
		return ErrBlocked
	}
	return nil
}
