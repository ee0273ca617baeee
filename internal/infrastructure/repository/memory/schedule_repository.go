package memory

import (
	"context"
	"sync"

	"github.com/wicketwise/cricket-insights/internal/domain/schedule"
)

type ScheduleRepository struct {
	mu       sync.RWMutex
	fixtures []schedule.Fixture
}

func NewScheduleRepository(fixtures []schedule.Fixture) *ScheduleRepository {
	r := &ScheduleRepository{}
	r.Replace(fixtures)
	return r
}

func (r *ScheduleRepository) List(_ context.Context) ([]schedule.Fixture, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]schedule.Fixture, len(r.fixtures))
	copy(out, r.fixtures)
	return out, nil
}

// Replace swaps the whole table for a freshly loaded snapshot.
func (r *ScheduleRepository) Replace(fixtures []schedule.Fixture) {
	r.mu.Lock()
	r.fixtures = fixtures
	r.mu.Unlock()
}
