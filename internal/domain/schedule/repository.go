package schedule

import "context"

// Repository exposes read access to the upcoming fixtures table.
type Repository interface {
	List(ctx context.Context) ([]Fixture, error)
}
