package match

import "context"

// Repository exposes read access to the match results table.
type Repository interface {
	List(ctx context.Context) ([]Match, error)
	GetByID(ctx context.Context, id string) (Match, bool, error)
}
