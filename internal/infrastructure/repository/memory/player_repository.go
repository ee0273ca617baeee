package memory

import (
	"context"
	"sync"

	"github.com/wicketwise/cricket-insights/internal/domain/player"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	players []player.Player
	byName  map[string]player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	r := &PlayerRepository{}
	r.Replace(players)
	return r
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, len(r.players))
	copy(out, r.players)
	return out, nil
}

func (r *PlayerRepository) GetByName(_ context.Context, name string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byName[name]
	return p, ok, nil
}

// Replace swaps the whole table for a freshly loaded snapshot.
func (r *PlayerRepository) Replace(players []player.Player) {
	byName := make(map[string]player.Player, len(players))
	for _, p := range players {
		byName[p.Name] = p
	}

	r.mu.Lock()
	r.players = players
	r.byName = byName
	r.mu.Unlock()
}
