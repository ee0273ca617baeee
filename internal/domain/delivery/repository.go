package delivery

import "context"

// Repository exposes read access to the ball-by-ball table.
type Repository interface {
	ListByMatch(ctx context.Context, matchID string) ([]Delivery, error)
	ListByBatterAndBowler(ctx context.Context, batter, bowler string) ([]Delivery, error)
}
