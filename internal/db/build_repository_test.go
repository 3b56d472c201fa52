package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/lumenlabs/lumen/internal/models"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	database, err := Open(filepath.Join(t.TempDir(), "lumen.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func TestBuildRepositoryCreateAndGet(t *testing.T) {
	repo := NewBuildRepository(openTestDB(t))
	ctx := context.Background()

	record := &models.BuildRecord{
		ThemeID:    "midnight",
		OutputHash: "abc123",
		PageCount:  5,
		ThemeCount: 2,
		Duration:   42 * time.Millisecond,
	}
	if err := repo.Create(ctx, record); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if record.ID == "" {
		t.Fatal("expected generated ID")
	}

	got, err := repo.Get(ctx, record.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ThemeID != "midnight" || got.OutputHash != "abc123" || got.PageCount != 5 {
		t.Fatalf("unexpected record: %+v", got)
	}
	if got.Duration != 42*time.Millisecond {
		t.Fatalf("unexpected duration: %v", got.Duration)
	}
}

func TestBuildRepositoryCreateInvalid(t *testing.T) {
	repo := NewBuildRepository(openTestDB(t))
	err := repo.Create(context.Background(), &models.BuildRecord{})
	if !errors.Is(err, ErrInvalidBuild) {
		t.Fatalf("expected ErrInvalidBuild, got %v", err)
	}
}

func TestBuildRepositoryListAndLatest(t *testing.T) {
	repo := NewBuildRepository(openTestDB(t))
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		record := &models.BuildRecord{
			ThemeID:    "midnight",
			OutputHash: "hash",
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Create(ctx, record); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	records, err := repo.List(ctx, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if !records[0].CreatedAt.After(records[1].CreatedAt) {
		t.Fatal("expected newest first ordering")
	}

	latest, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if !latest.CreatedAt.Equal(records[0].CreatedAt) {
		t.Fatalf("unexpected latest record: %+v", latest)
	}
}

func TestBuildRepositoryLatestEmpty(t *testing.T) {
	repo := NewBuildRepository(openTestDB(t))
	_, err := repo.Latest(context.Background())
	if !errors.Is(err, ErrBuildNotFound) {
		t.Fatalf("expected ErrBuildNotFound, got %v", err)
	}
}

func TestBuildRepositoryPrune(t *testing.T) {
	repo := NewBuildRepository(openTestDB(t))
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		record := &models.BuildRecord{
			ThemeID:    "midnight",
			OutputHash: "hash",
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Create(ctx, record); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	removed, err := repo.Prune(ctx, 2)
	if err != nil {
		t.Fatalf("Prune: %v", err)
	}
	if removed != 3 {
		t.Fatalf("expected 3 pruned, got %d", removed)
	}

	records, err := repo.List(ctx, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 remaining, got %d", len(records))
	}
}
