package catalog_test

import (
	"context"
	"errors"
	"testing"

	"cardgallery/internal/catalog"
	"cardgallery/internal/gallery"
	"cardgallery/internal/services"
	"cardgallery/internal/testsupport"
)

func TestSaveBatchAndGet(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenCatalog(t, cfg)

	records := testsupport.SaveTokens(t, store, "batch-1",
		"12345-LOB-EN-R-UE.jpg | [[LOB-EN001]] ([[Common]])<br>[[Legend of Blue Eyes White Dragon|LOB]]<br>Some card.",
		" | [[LOB-EN002]]",
	)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	for i, rec := range records {
		if rec.ID == "" || rec.BatchID != "batch-1" || rec.Position != i {
			t.Fatalf("record %d has unexpected identity: %+v", i, rec)
		}
	}

	ctx := context.Background()
	ok, err := store.Get(ctx, records[0].ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok.Output != "LOB-EN001; Legend of Blue Eyes White Dragon; R; UE // extension::jpg; description::Some card." {
		t.Fatalf("unexpected output %q", ok.Output)
	}
	if ok.Failed() {
		t.Fatalf("expected rendered record, got error %q", ok.Error)
	}
	if ok.Kind != gallery.KindCard {
		t.Fatalf("kind = %v", ok.Kind)
	}
	if ok.Filename == nil || ok.Filename.Extension != "jpg" || ok.Filename.Rarity != "R" {
		t.Fatalf("filename not round-tripped: %+v", ok.Filename)
	}
	if ok.Caption == nil || ok.Caption.Description != "Some card." || ok.Caption.Kind != gallery.KindCard {
		t.Fatalf("caption not round-tripped: %+v", ok.Caption)
	}
	if ok.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be set")
	}

	failed, err := store.Get(ctx, records[1].ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !failed.Failed() || failed.Output != "" || failed.Filename != nil || failed.Caption != nil {
		t.Fatalf("expected failed record without parsed fields, got %+v", failed)
	}
}

func TestSaveBatchGeneratesBatchID(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenCatalog(t, cfg)

	records := testsupport.SaveTokens(t, store, "", "Card-LOB-EN-R-UE.png", "Card-SDK-EN-UR-LE.png")
	if records[0].BatchID == "" || records[0].BatchID != records[1].BatchID {
		t.Fatalf("expected shared generated batch id, got %q and %q", records[0].BatchID, records[1].BatchID)
	}

	batch, err := store.Batch(context.Background(), records[0].BatchID)
	if err != nil {
		t.Fatalf("Batch failed: %v", err)
	}
	if len(batch) != 2 || batch[0].Output != "LOB; R; UE" || batch[1].Output != "SDK; UR; LE" {
		t.Fatalf("unexpected batch %+v", batch)
	}
}

func TestListOrdersNewestBatchFirst(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenCatalog(t, cfg)

	testsupport.SaveTokens(t, store, "older", "Card-LOB-EN-R-UE.png", "Card-LOB-EN-C-UE.png")
	testsupport.SaveTokens(t, store, "newer", "Card-SDK-EN-UR-LE.png")

	ctx := context.Background()
	all, err := store.List(ctx, 0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 records, got %d", len(all))
	}
	if all[0].BatchID != "newer" || all[1].BatchID != "older" || all[1].Position != 0 || all[2].Position != 1 {
		t.Fatalf("unexpected order: %+v", all)
	}

	limited, err := store.List(ctx, 1)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(limited) != 1 || limited[0].BatchID != "newer" {
		t.Fatalf("unexpected limited list: %+v", limited)
	}
}

func TestGetUnknownRecord(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenCatalog(t, cfg)

	_, err := store.Get(context.Background(), "missing")
	if !errors.Is(err, catalog.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected services.ErrNotFound, got %v", err)
	}
}

func TestClear(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenCatalog(t, cfg)
	testsupport.SaveTokens(t, store, "b", "Card-LOB-EN-R-UE.png", "Card-LOB-EN-C-UE.png")

	ctx := context.Background()
	removed, err := store.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}
	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty catalog, got %d", count)
	}
}

func TestOpenRejectsSecondWriter(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenCatalog(t, cfg)

	if _, err := catalog.Open(cfg); !errors.Is(err, catalog.ErrCatalogLocked) {
		t.Fatalf("expected ErrCatalogLocked, got %v", err)
	}

	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	reopened, err := catalog.Open(cfg)
	if err != nil {
		t.Fatalf("reopen after close: %v", err)
	}
	_ = reopened.Close()
}

func TestReopenKeepsRecords(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store, err := catalog.Open(cfg)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	testsupport.SaveTokens(t, store, "persisted", "Card-LOB-EN-R-UE.png")
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened := testsupport.MustOpenCatalog(t, cfg)
	count, err := reopened.Count(context.Background())
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 persisted record, got %d", count)
	}
}

func TestOpenRequiresCatalogPath(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Paths.CatalogPath = ""
	if _, err := catalog.Open(cfg); err == nil {
		t.Fatal("expected error without catalog path")
	}
}
