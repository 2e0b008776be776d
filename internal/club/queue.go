package club

// Vacancy reports a seat that just became empty, together with the waiters
// drained from its waitlist. The queue is already cleared by the time the
// caller sees it, so each waiter is handed out exactly once.
type Vacancy struct {
	ClubKey   int
	SeatIndex int
	Label     string
	Waiters   []string
}

// Enqueue registers userID on the waitlist for a seat. Joining twice is a
// no-op; insertion order is preserved.
func (c *Community) Enqueue(key, index int, userID string) error {
	board, err := c.Board(key)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(board.Seats) {
		return ErrUnknownSeat
	}
	clubQueues, ok := c.queues[key]
	if !ok {
		clubQueues = make(map[int][]string)
		c.queues[key] = clubQueues
	}
	for _, waiting := range clubQueues[index] {
		if waiting == userID {
			return nil
		}
	}
	clubQueues[index] = append(clubQueues[index], userID)
	return nil
}

// Waiters returns the current waitlist for a seat, in join order.
func (c *Community) Waiters(key, index int) []string {
	waiters := c.queues[key][index]
	out := make([]string, len(waiters))
	copy(out, waiters)
	return out
}

// drainSeat snapshots and clears the waitlist for a seat that just became
// empty. Returns nil when nobody was waiting.
func (c *Community) drainSeat(key, index int, label string) *Vacancy {
	clubQueues, ok := c.queues[key]
	if !ok {
		return nil
	}
	waiters := clubQueues[index]
	if len(waiters) == 0 {
		return nil
	}
	delete(clubQueues, index)
	return &Vacancy{ClubKey: key, SeatIndex: index, Label: label, Waiters: waiters}
}
