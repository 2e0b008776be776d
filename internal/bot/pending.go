package bot

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// pendingMove is a half-finished "move someone" interaction: the actor has
// picked a source seat and still owes us a destination click. The board
// model never sees this; it only gets the final SwapSeats call.
type pendingMove struct {
	token     uuid.UUID
	clubKey   int
	fromIndex int
	created   time.Time
}

type pendingMoves struct {
	mu      sync.Mutex
	byActor map[string]pendingMove
	ttl     time.Duration
}

func newPendingMoves(ttl time.Duration) *pendingMoves {
	return &pendingMoves{
		byActor: make(map[string]pendingMove),
		ttl:     ttl,
	}
}

func moveKey(guildID, userID string) string {
	return guildID + ":" + userID
}

// Mark records the source seat for an actor, superseding any earlier intent.
func (p *pendingMoves) Mark(guildID, userID string, clubKey, fromIndex int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.byActor[moveKey(guildID, userID)] = pendingMove{
		token:     uuid.New(),
		clubKey:   clubKey,
		fromIndex: fromIndex,
		created:   time.Now(),
	}
}

// Take consumes the actor's pending intent. Intents for a different club
// are dropped rather than returned: switching clubs cancels a move.
func (p *pendingMoves) Take(guildID, userID string, clubKey int) (pendingMove, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	key := moveKey(guildID, userID)
	move, ok := p.byActor[key]
	if !ok {
		return pendingMove{}, false
	}
	delete(p.byActor, key)
	if move.clubKey != clubKey {
		return pendingMove{}, false
	}
	return move, true
}

// Sweep drops intents older than the TTL.
func (p *pendingMoves) Sweep() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for key, move := range p.byActor {
		if time.Since(move.created) > p.ttl {
			log.Debug().Str("intent", move.token.String()).Msg("expiring stale move intent")
			delete(p.byActor, key)
		}
	}
}
