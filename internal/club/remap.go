package club

import (
	"sort"

	"clubspot/internal/catalog"
)

// Dropped describes an occupant that did not fit on the new board. Real
// users are auto-enqueued on the closest matching seat of the new layout
// (SeatIndex); for placeholders SeatIndex is -1.
type Dropped struct {
	Occupant  Occupant
	OldLabel  string
	SeatIndex int
}

// ChangeResult is the outcome of a formation change, for the presenter to
// surface.
type ChangeResult struct {
	Board   *Board
	Dropped []Dropped
}

type occupantSlot struct {
	occupant Occupant
	label    string
}

// ChangeFormation replaces a club's board with the new formation's layout,
// migrating current occupants with the remap heuristic.
func (c *Community) ChangeFormation(key int, formationID string) (*ChangeResult, error) {
	if _, err := c.Board(key); err != nil {
		return nil, err
	}
	formation, ok := catalog.Get(formationID)
	if !ok {
		return nil, ErrUnknownFormation
	}

	old := c.Boards[key]
	var occupied []occupantSlot
	for _, seat := range old.Seats {
		if !seat.Open() {
			occupied = append(occupied, occupantSlot{seat.Occupant, seat.Label})
		}
	}

	board := newBoard(formation)
	assigned, leftover := remapOccupants(occupied, formation.Labels)
	for i, occupant := range assigned {
		board.Seats[i].Occupant = occupant
	}
	c.Boards[key] = board

	result := &ChangeResult{Board: board}
	for _, slot := range leftover {
		dropped := Dropped{Occupant: slot.occupant, OldLabel: slot.label, SeatIndex: -1}
		if slot.occupant.IsUser() {
			dropped.SeatIndex = closestSeat(formation.Labels, slot.label)
			_ = c.Enqueue(key, dropped.SeatIndex, string(slot.occupant))
		}
		result.Dropped = append(result.Dropped, dropped)
	}
	return result, nil
}

// remapOccupants migrates old occupants onto the new label list. Greedy and
// single pass: occupants are taken in role-priority order (most specific
// roles first) and each takes the first free seat with the identical label,
// failing that the first free seat in the same role group, failing that the
// first free seat of any kind. Whoever is left when seats run out is
// returned as leftover.
func remapOccupants(old []occupantSlot, newLabels []string) ([]Occupant, []occupantSlot) {
	assigned := make([]Occupant, len(newLabels))
	claimed := make([]bool, len(newLabels))

	ordered := make([]occupantSlot, len(old))
	copy(ordered, old)
	sort.SliceStable(ordered, func(i, j int) bool {
		return catalog.Classify(ordered[i].label) < catalog.Classify(ordered[j].label)
	})

	var leftover []occupantSlot
	for _, slot := range ordered {
		index := -1
		for i, label := range newLabels {
			if !claimed[i] && label == slot.label {
				index = i
				break
			}
		}
		if index == -1 {
			group := catalog.Classify(slot.label)
			for i, label := range newLabels {
				if !claimed[i] && catalog.Classify(label) == group {
					index = i
					break
				}
			}
		}
		if index == -1 {
			for i := range newLabels {
				if !claimed[i] {
					index = i
					break
				}
			}
		}
		if index == -1 {
			leftover = append(leftover, slot)
			continue
		}
		claimed[index] = true
		assigned[index] = slot.occupant
	}
	return assigned, leftover
}

// closestSeat picks the waitlist seat for a dropped occupant: the first
// seat with their old label, else the first in their role group, else 0.
func closestSeat(labels []string, oldLabel string) int {
	for i, label := range labels {
		if label == oldLabel {
			return i
		}
	}
	group := catalog.Classify(oldLabel)
	for i, label := range labels {
		if catalog.Classify(label) == group {
			return i
		}
	}
	return 0
}
