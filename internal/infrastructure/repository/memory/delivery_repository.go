package memory

import (
	"context"
	"sync"

	"github.com/wicketwise/cricket-insights/internal/domain/delivery"
)

type DeliveryRepository struct {
	mu         sync.RWMutex
	deliveries []delivery.Delivery
	byMatch    map[string][]delivery.Delivery
}

func NewDeliveryRepository(deliveries []delivery.Delivery) *DeliveryRepository {
	r := &DeliveryRepository{}
	r.Replace(deliveries)
	return r
}

func (r *DeliveryRepository) ListByMatch(_ context.Context, matchID string) ([]delivery.Delivery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.byMatch[matchID]
	out := make([]delivery.Delivery, len(items))
	copy(out, items)
	return out, nil
}

func (r *DeliveryRepository) ListByBatterAndBowler(_ context.Context, batter, bowler string) ([]delivery.Delivery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]delivery.Delivery, 0)
	for _, d := range r.deliveries {
		if d.Batter == batter && d.Bowler == bowler {
			out = append(out, d)
		}
	}
	return out, nil
}

// Replace swaps the whole table for a freshly loaded snapshot.
func (r *DeliveryRepository) Replace(deliveries []delivery.Delivery) {
	byMatch := make(map[string][]delivery.Delivery)
	for _, d := range deliveries {
		byMatch[d.MatchID] = append(byMatch[d.MatchID], d)
	}

	r.mu.Lock()
	r.deliveries = deliveries
	r.byMatch = byMatch
	r.mu.Unlock()
}
