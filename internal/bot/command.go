package bot

import (
	"fmt"
	"strconv"
	"strings"
)

// Command is the tagged representation of a user action. Both slash
// commands and message components are parsed into one of these variants
// before any core operation runs; the wire encoding never leaks past this
// file and slash.go.
type Command interface {
	isCommand()
}

// ClubKey 0 means "the club the global panel currently shows".

type ShowBoard struct{ ClubKey int }
type SelectClub struct{ ClubKey int }
type ClaimSeat struct{ ClubKey, SeatIndex int }
type LeaveSeat struct{ ClubKey int }
type JoinWaitlist struct{ ClubKey, SeatIndex int }
type MarkMove struct{ ClubKey, SeatIndex int }
type CompleteMove struct{ ClubKey, SeatIndex int }
type AssignSeat struct {
	ClubKey     int
	SeatIndex   int
	UserID      string
	Placeholder bool
}
type ResetClub struct{ ClubKey int }
type EnableClub struct{}
type DisableClub struct{ ClubKey int }
type RenameClub struct {
	ClubKey int
	Name    string
}
type ChangeFormation struct {
	ClubKey     int
	FormationID string
}
type SetVoiceLink struct {
	ClubKey   int
	ChannelID string
}
type SetBlocked struct {
	UserID  string
	Blocked bool
}
type SetPrefs struct{ Labels []string }
type ShowPrefs struct{}
type SmartAssign struct{ ClubKey int }
type ReadyCheck struct{ ClubKey int }

func (ShowBoard) isCommand()       {}
func (SelectClub) isCommand()      {}
func (ClaimSeat) isCommand()       {}
func (LeaveSeat) isCommand()       {}
func (JoinWaitlist) isCommand()    {}
func (MarkMove) isCommand()        {}
func (CompleteMove) isCommand()    {}
func (AssignSeat) isCommand()      {}
func (ResetClub) isCommand()       {}
func (EnableClub) isCommand()      {}
func (DisableClub) isCommand()     {}
func (RenameClub) isCommand()      {}
func (ChangeFormation) isCommand() {}
func (SetVoiceLink) isCommand()    {}
func (SetBlocked) isCommand()      {}
func (SetPrefs) isCommand()        {}
func (ShowPrefs) isCommand()       {}
func (SmartAssign) isCommand()     {}
func (ReadyCheck) isCommand()      {}

// Component custom ids are "verb:club". Select menus carry the seat index
// (or formation id) in the selected value.
func componentID(verb string, clubKey int) string {
	return fmt.Sprintf("%s:%d", verb, clubKey)
}

// parseComponent turns a component interaction into a Command.
func parseComponent(customID string, values []string) (Command, error) {
	parts := strings.Split(customID, ":")
	if len(parts) != 2 {
		return nil, fmt.Errorf("malformed component id %q", customID)
	}
	verb := parts[0]
	clubKey, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, fmt.Errorf("malformed club key in component id %q", customID)
	}

	seatValue := func() (int, error) {
		if len(values) != 1 {
			return 0, fmt.Errorf("component %q carries no selection", customID)
		}
		return strconv.Atoi(values[0])
	}

	switch verb {
	case "show":
		return ShowBoard{ClubKey: clubKey}, nil
	case "claim":
		index, err := seatValue()
		if err != nil {
			return nil, err
		}
		return ClaimSeat{ClubKey: clubKey, SeatIndex: index}, nil
	case "leave":
		return LeaveSeat{ClubKey: clubKey}, nil
	case "wait":
		index, err := seatValue()
		if err != nil {
			return nil, err
		}
		return JoinWaitlist{ClubKey: clubKey, SeatIndex: index}, nil
	case "movesrc":
		index, err := seatValue()
		if err != nil {
			return nil, err
		}
		return MarkMove{ClubKey: clubKey, SeatIndex: index}, nil
	case "movedst":
		index, err := seatValue()
		if err != nil {
			return nil, err
		}
		return CompleteMove{ClubKey: clubKey, SeatIndex: index}, nil
	default:
		return nil, fmt.Errorf("unknown component verb %q", verb)
	}
}
