package testsupport

import (
	"context"
	"testing"

	"cardgallery/internal/catalog"
	"cardgallery/internal/config"
	"cardgallery/internal/gallery"
)

// MustOpenCatalog opens a catalog.Store for tests and registers cleanup.
func MustOpenCatalog(t testing.TB, cfg *config.Config) *catalog.Store {
	t.Helper()

	store, err := catalog.Open(cfg)
	if err != nil {
		t.Fatalf("catalog.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// SaveTokens renders tokens as card entries and stores them as one batch.
func SaveTokens(t testing.TB, store *catalog.Store, batchID string, tokens ...string) []catalog.Record {
	t.Helper()

	ctx := context.Background()
	results, err := gallery.RenderAll(ctx, tokens, gallery.BatchOptions{Workers: 2})
	if err != nil {
		t.Fatalf("gallery.RenderAll: %v", err)
	}
	records, err := store.SaveBatch(ctx, batchID, gallery.KindCard, results)
	if err != nil {
		t.Fatalf("store.SaveBatch: %v", err)
	}
	return records
}
