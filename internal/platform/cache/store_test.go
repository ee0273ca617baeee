package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestStore_GetOrLoadCachesValue(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()

	loads := 0
	loader := func(context.Context) (any, error) {
		loads++
		return 42, nil
	}

	for i := 0; i < 3; i++ {
		value, err := store.GetOrLoad(ctx, "answer", loader)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if value != 42 {
			t.Fatalf("expected 42, got %v", value)
		}
	}
	if loads != 1 {
		t.Fatalf("expected one load, got %d", loads)
	}
}

func TestStore_LoaderErrorIsNotCached(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()

	attempts := 0
	loader := func(context.Context) (any, error) {
		attempts++
		if attempts == 1 {
			return nil, errors.New("boom")
		}
		return "ok", nil
	}

	if _, err := store.GetOrLoad(ctx, "key", loader); err == nil {
		t.Fatal("expected first load to fail")
	}
	value, err := store.GetOrLoad(ctx, "key", loader)
	if err != nil {
		t.Fatalf("unexpected error on retry: %v", err)
	}
	if value != "ok" {
		t.Fatalf("expected ok, got %v", value)
	}
}

func TestStore_PurgeDropsEntries(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()

	store.Set(ctx, "key", "value")
	if _, ok := store.Get(ctx, "key"); !ok {
		t.Fatal("expected entry before purge")
	}

	store.Purge(ctx)
	if _, ok := store.Get(ctx, "key"); ok {
		t.Fatal("expected entry to be gone after purge")
	}
}

func TestStore_EmptyKeyBypassesCache(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()

	loads := 0
	loader := func(context.Context) (any, error) {
		loads++
		return loads, nil
	}

	for i := 0; i < 2; i++ {
		if _, err := store.GetOrLoad(ctx, "", loader); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if loads != 2 {
		t.Fatalf("expected loader to run every time, got %d", loads)
	}
}
