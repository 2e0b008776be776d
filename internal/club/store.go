package club

import "sync"

// Repository owns all community state, keyed by guild id. Communities are
// created lazily on first reference and never destroyed.
//
// Every mutation goes through Mutate, which holds the community lock for
// the whole check-then-mutate sequence. Discord I/O (panel edits, DMs) must
// happen after Mutate returns, never inside fn.
type Repository struct {
	mu          sync.Mutex
	communities map[string]*Community
	locks       map[string]*sync.Mutex
}

func NewRepository() *Repository {
	return &Repository{
		communities: make(map[string]*Community),
		locks:       make(map[string]*sync.Mutex),
	}
}

func (r *Repository) getOrCreate(guildID string) (*Community, *sync.Mutex) {
	r.mu.Lock()
	defer r.mu.Unlock()
	community, ok := r.communities[guildID]
	if !ok {
		community = newCommunity(guildID)
		r.communities[guildID] = community
		r.locks[guildID] = &sync.Mutex{}
	}
	return community, r.locks[guildID]
}

// Mutate runs fn against the community for guildID under its lock.
func (r *Repository) Mutate(guildID string, fn func(*Community) error) error {
	community, lock := r.getOrCreate(guildID)
	lock.Lock()
	defer lock.Unlock()
	return fn(community)
}
