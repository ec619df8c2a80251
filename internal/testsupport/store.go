package testsupport

import (
	"context"
	"testing"

	"omrdata/internal/config"
	"omrdata/internal/review"
)

// MustOpenStore opens a review.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *review.Store {
	t.Helper()

	store, err := review.Open(cfg.Paths.ReviewDB)
	if err != nil {
		t.Fatalf("review.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// BeginRun starts a review run for tests using the provided store.
func BeginRun(t testing.TB, store *review.Store) *review.Run {
	t.Helper()

	run, err := store.BeginRun(context.Background())
	if err != nil {
		t.Fatalf("store.BeginRun: %v", err)
	}
	return run
}
