package club

import "errors"

// Validation errors. No state mutation has happened when one of these is
// returned; the adapter renders them back to the actor as a rejection.
var (
	ErrNoFreeClubSlots      = errors.New("all club slots are already enabled")
	ErrLastClubProtected    = errors.New("the last enabled club cannot be disabled")
	ErrClubHasOccupiedSeats = errors.New("club still has occupied seats")
	ErrEmptyName            = errors.New("club name cannot be empty")
	ErrSeatTaken            = errors.New("seat is already taken")
	ErrNotOccupant          = errors.New("seat is held by someone else")
	ErrUnknownFormation     = errors.New("unknown formation")
	ErrUnknownClub          = errors.New("unknown or disabled club")
	ErrUnknownSeat          = errors.New("seat index out of range")
)
