package memrepo

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/mrled/suns/numcheck/internal/model"
)

func newRecord(id string) *model.CheckRecord {
	return &model.CheckRecord{
		ID:        id,
		Kind:      model.KindPalindrome,
		Name:      "121",
		Input:     "121",
		Output:    "true",
		Passed:    true,
		CheckTime: time.Date(2025, 10, 17, 12, 0, 0, 0, time.UTC),
	}
}

func TestMemoryRepository_StoreAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	if err := repo.Store(ctx, newRecord("r1")); err != nil {
		t.Fatalf("Failed to store record: %v", err)
	}

	got, err := repo.Get(ctx, "r1")
	if err != nil {
		t.Fatalf("Failed to get record: %v", err)
	}
	if got.Name != "121" || !got.Passed {
		t.Errorf("Unexpected record: %+v", got)
	}
}

func TestMemoryRepository_StoreDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	if err := repo.Store(ctx, newRecord("r1")); err != nil {
		t.Fatalf("Failed to store record: %v", err)
	}
	err := repo.Store(ctx, newRecord("r1"))
	if !errors.Is(err, model.ErrAlreadyExists) {
		t.Errorf("Expected ErrAlreadyExists, got %v", err)
	}
}

func TestMemoryRepository_StoreInvalid(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	if err := repo.Store(ctx, nil); err == nil {
		t.Error("Expected error storing nil record")
	}
	if err := repo.Store(ctx, &model.CheckRecord{}); err == nil {
		t.Error("Expected error storing record without ID")
	}
}

func TestMemoryRepository_GetMissing(t *testing.T) {
	repo := NewMemoryRepository()
	_, err := repo.Get(context.Background(), "nope")
	if !errors.Is(err, model.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestMemoryRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	repo.Store(ctx, newRecord("r1"))

	if err := repo.Delete(ctx, "r1"); err != nil {
		t.Fatalf("Failed to delete: %v", err)
	}
	if err := repo.Delete(ctx, "r1"); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("Expected ErrNotFound on second delete, got %v", err)
	}

	records, _ := repo.List(ctx)
	if len(records) != 0 {
		t.Errorf("Expected empty repository, got %d records", len(records))
	}
}

func TestMemoryRepository_JSONPersistence(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "history.json")

	repo1, err := NewMemoryRepositoryWithPersistence(path)
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	if err := repo1.Store(ctx, newRecord("r1")); err != nil {
		t.Fatalf("Failed to store: %v", err)
	}
	if err := repo1.Store(ctx, newRecord("r2")); err != nil {
		t.Fatalf("Failed to store: %v", err)
	}
	if err := repo1.Delete(ctx, "r2"); err != nil {
		t.Fatalf("Failed to delete: %v", err)
	}

	repo2, err := NewMemoryRepositoryWithPersistence(path)
	if err != nil {
		t.Fatalf("Failed to reopen repository: %v", err)
	}

	records, err := repo2.List(ctx)
	if err != nil {
		t.Fatalf("Failed to list: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Expected 1 persisted record, got %d", len(records))
	}
	if records[0].ID != "r1" {
		t.Errorf("Expected r1, got %s", records[0].ID)
	}
	if !records[0].CheckTime.Equal(newRecord("r1").CheckTime) {
		t.Errorf("CheckTime not preserved: %v", records[0].CheckTime)
	}
}

func TestNewMemoryRepositoryFromJsonString(t *testing.T) {
	jsonData := `[
		{"ID": "a", "Kind": "abs", "Input": "-5", "Output": "5", "Passed": true},
		{"ID": "b", "Kind": "assert", "Name": "x", "Input": "1,2", "Output": "Test x failed: 1 != 2"},
		{"ID": "a", "Kind": "abs", "Input": "-6", "Output": "6", "Passed": true}
	]`

	repo, err := NewMemoryRepositoryFromJsonString(jsonData)
	if err != nil {
		t.Fatalf("Failed to load JSON: %v", err)
	}

	records, _ := repo.List(context.Background())
	if len(records) != 2 {
		t.Fatalf("Expected 2 records after de-duplication, got %d", len(records))
	}

	a, _ := repo.Get(context.Background(), "a")
	if a.Input != "-6" {
		t.Errorf("Expected last duplicate to win, got input %s", a.Input)
	}
}

func TestNewMemoryRepositoryFromJsonString_Invalid(t *testing.T) {
	if _, err := NewMemoryRepositoryFromJsonString("{not json"); err == nil {
		t.Error("Expected error for invalid JSON")
	}
}
