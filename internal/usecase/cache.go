package usecase

import (
	"context"
	"fmt"

	"github.com/wicketwise/cricket-insights/internal/platform/cache"
)

// loadCached runs compute through the TTL store when one is configured.
// A nil store means every call recomputes from the tables directly.
func loadCached[T any](ctx context.Context, store *cache.Store, key string, compute func(context.Context) (T, error)) (T, error) {
	if store == nil {
		return compute(ctx)
	}

	value, err := store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return compute(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}

	typed, ok := value.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("cache entry %q has unexpected type %T", key, value)
	}
	return typed, nil
}
