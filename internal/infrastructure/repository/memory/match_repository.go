package memory

import (
	"context"
	"sync"

	"github.com/wicketwise/cricket-insights/internal/domain/match"
)

type MatchRepository struct {
	mu      sync.RWMutex
	matches []match.Match
	byID    map[string]match.Match
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	r := &MatchRepository{}
	r.Replace(matches)
	return r
}

func (r *MatchRepository) List(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, len(r.matches))
	copy(out, r.matches)
	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, id string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byID[id]
	return m, ok, nil
}

// Replace swaps the whole table for a freshly loaded snapshot.
func (r *MatchRepository) Replace(matches []match.Match) {
	byID := make(map[string]match.Match, len(matches))
	for _, m := range matches {
		byID[m.ID] = m
	}

	r.mu.Lock()
	r.matches = matches
	r.byID = byID
	r.mu.Unlock()
}
