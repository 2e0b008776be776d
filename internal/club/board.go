package club

import (
	"strings"

	"clubspot/internal/catalog"
)

// EnableClub enables the first disabled club slot, gives it a fresh
// default-formation board and returns its key.
func (c *Community) EnableClub() (int, error) {
	for _, club := range c.Clubs {
		if club.Enabled {
			continue
		}
		club.Enabled = true
		def, _ := catalog.Get(catalog.Default)
		c.Boards[club.Key] = newBoard(def)
		return club.Key, nil
	}
	return 0, ErrNoFreeClubSlots
}

// DisableClub disables a club. The last enabled club is protected, and a
// club with occupied seats must be vacated manually first so assignment
// state is never lost silently.
func (c *Community) DisableClub(key int) error {
	club, err := c.Club(key)
	if err != nil {
		return err
	}
	if !club.Enabled {
		return nil
	}
	if len(c.EnabledClubs()) == 1 {
		return ErrLastClubProtected
	}
	board := c.Boards[key]
	for _, seat := range board.Seats {
		if !seat.Open() {
			return ErrClubHasOccupiedSeats
		}
	}
	club.Enabled = false
	for i := range board.Seats {
		board.Seats[i].Occupant = Empty
	}
	delete(c.VCLinks, key)
	if c.CurrentClubKey == key {
		c.CurrentClubKey = c.EnabledClubs()[0].Key
	}
	return nil
}

// RenameClub sets a club's display name.
func (c *Community) RenameClub(key int, name string) error {
	club, err := c.Club(key)
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	club.Name = name
	return nil
}

// ClaimSeat puts userID on the given seat. Re-claiming one's own seat is a
// no-op; claiming an occupied seat fails. A user holds at most one seat per
// club, so any other seat they held is vacated (and its waitlist drained).
func (c *Community) ClaimSeat(key, index int, userID string) ([]Vacancy, error) {
	board, err := c.Board(key)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(board.Seats) {
		return nil, ErrUnknownSeat
	}
	seat := &board.Seats[index]
	if seat.Occupant == Occupant(userID) {
		return nil, nil
	}
	if !seat.Open() {
		return nil, ErrSeatTaken
	}
	vacancies := c.vacateUser(key, board, userID, index)
	seat.Occupant = Occupant(userID)
	return vacancies, nil
}

// VacateSeat frees the seat userID holds. Only the occupant themselves may
// vacate through this path.
func (c *Community) VacateSeat(key, index int, userID string) ([]Vacancy, error) {
	board, err := c.Board(key)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(board.Seats) {
		return nil, ErrUnknownSeat
	}
	seat := &board.Seats[index]
	if seat.Occupant != Occupant(userID) {
		return nil, ErrNotOccupant
	}
	seat.Occupant = Empty
	var vacancies []Vacancy
	if v := c.drainSeat(key, index, seat.Label); v != nil {
		vacancies = append(vacancies, *v)
	}
	return vacancies, nil
}

// AssignSeat force-sets a seat regardless of the current occupant. When a
// real user is assigned, any other seat they held in the club is vacated
// first. Assigning Empty clears the seat and drains its waitlist.
func (c *Community) AssignSeat(key, index int, occupant Occupant) ([]Vacancy, error) {
	board, err := c.Board(key)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(board.Seats) {
		return nil, ErrUnknownSeat
	}
	var vacancies []Vacancy
	if occupant.IsUser() {
		vacancies = c.vacateUser(key, board, string(occupant), index)
	}
	seat := &board.Seats[index]
	was := seat.Occupant
	seat.Occupant = occupant
	if seat.Open() && was != Empty {
		if v := c.drainSeat(key, index, seat.Label); v != nil {
			vacancies = append(vacancies, *v)
		}
	}
	return vacancies, nil
}

// SwapSeats exchanges the occupants of two seats. A seat left empty by the
// swap has its waitlist drained.
func (c *Community) SwapSeats(key, i, j int) ([]Vacancy, error) {
	board, err := c.Board(key)
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(board.Seats) || j < 0 || j >= len(board.Seats) {
		return nil, ErrUnknownSeat
	}
	if i == j {
		return nil, nil
	}
	board.Seats[i].Occupant, board.Seats[j].Occupant = board.Seats[j].Occupant, board.Seats[i].Occupant
	var vacancies []Vacancy
	for _, index := range []int{i, j} {
		seat := board.Seats[index]
		if seat.Open() {
			if v := c.drainSeat(key, index, seat.Label); v != nil {
				vacancies = append(vacancies, *v)
			}
		}
	}
	return vacancies, nil
}

// ResetClub empties every seat of a club, keeping the formation. Waitlists
// of previously occupied seats are drained.
func (c *Community) ResetClub(key int) ([]Vacancy, error) {
	board, err := c.Board(key)
	if err != nil {
		return nil, err
	}
	var vacancies []Vacancy
	for i := range board.Seats {
		seat := &board.Seats[i]
		if seat.Open() {
			continue
		}
		seat.Occupant = Empty
		if v := c.drainSeat(key, i, seat.Label); v != nil {
			vacancies = append(vacancies, *v)
		}
	}
	return vacancies, nil
}

// vacateUser clears every seat (other than except) held by userID in the
// club and drains the freed seats.
func (c *Community) vacateUser(key int, board *Board, userID string, except int) []Vacancy {
	var vacancies []Vacancy
	for i := range board.Seats {
		if i == except {
			continue
		}
		seat := &board.Seats[i]
		if seat.Occupant != Occupant(userID) {
			continue
		}
		seat.Occupant = Empty
		if v := c.drainSeat(key, i, seat.Label); v != nil {
			vacancies = append(vacancies, *v)
		}
	}
	return vacancies
}
