package player

import "context"

// Repository exposes read access to the cleaned player statistics table.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
	GetByName(ctx context.Context, name string) (Player, bool, error)
}
