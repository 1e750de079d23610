package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file and its parent were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRun(RunRecord{Origin: "local", Cause: "self", Length: 5, GridW: 20, GridH: 20}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("Expected 1 run after reopen, got %d", len(runs))
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	records := []RunRecord{
		{Origin: "local", Cause: "boundary", Length: 3, Ticks: 12, GridW: 38, GridH: 18, EndedAt: base},
		{Origin: "ssh:ana", Cause: "self", Length: 9, Ticks: 140, GridW: 20, GridH: 20, Reconciles: 2, EndedAt: base.Add(time.Minute)},
		{Origin: "local", Cause: "boundary", Length: 4, Ticks: 30, GridW: 38, GridH: 18, EndedAt: base.Add(2 * time.Minute)},
	}
	for _, r := range records {
		id, err := store.SaveRun(r)
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
		if id <= 0 {
			t.Errorf("Expected positive ID, got %d", id)
		}
	}

	runs, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}

	// Newest first
	if runs[0].Length != 4 || runs[1].Length != 9 {
		t.Errorf("Unexpected order: %+v", runs)
	}
	got := runs[1]
	if got.Origin != "ssh:ana" || got.Cause != "self" || got.Ticks != 140 || got.Reconciles != 2 {
		t.Errorf("Fields not preserved: %+v", got)
	}
	if !got.EndedAt.Equal(base.Add(time.Minute)) {
		t.Errorf("EndedAt = %v, expected %v", got.EndedAt, base.Add(time.Minute))
	}
}

func TestStoreSaveRunStampsTime(t *testing.T) {
	store := openTestStore(t)
	before := time.Now().Add(-time.Second)

	if _, err := store.SaveRun(RunRecord{Origin: "local", Cause: "self", Length: 3}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	runs, err := store.RecentRuns(1)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if runs[0].EndedAt.Before(before) {
		t.Errorf("EndedAt %v was not stamped", runs[0].EndedAt)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() on empty journal failed: %v", err)
	}
	if stats.Runs != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	last := time.Date(2026, 5, 2, 8, 0, 0, 0, time.UTC)
	store.SaveRun(RunRecord{Origin: "local", Cause: "boundary", Length: 3, Ticks: 10, EndedAt: last.Add(-time.Hour)})
	store.SaveRun(RunRecord{Origin: "local", Cause: "self", Length: 12, Ticks: 200, Reconciles: 4, EndedAt: last})
	store.SaveRun(RunRecord{Origin: "ssh:bo", Cause: "boundary", Length: 6, Ticks: 50, Reconciles: 2, EndedAt: last.Add(-time.Minute)})

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 3 || stats.BoundaryHits != 2 || stats.SelfHits != 1 {
		t.Errorf("Unexpected counts: %+v", stats)
	}
	if stats.TotalTicks != 260 || stats.LongestBody != 12 || stats.DistinctOrigin != 2 {
		t.Errorf("Unexpected aggregates: %+v", stats)
	}
	if stats.AvgReconciles != 2 {
		t.Errorf("AvgReconciles = %v, expected 2", stats.AvgReconciles)
	}
	if !stats.LastPlayed.Equal(last) {
		t.Errorf("LastPlayed = %v, expected %v", stats.LastPlayed, last)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Origin: "local", Cause: "self", Length: 3})
	store.SaveRun(RunRecord{Origin: "local", Cause: "boundary", Length: 3})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
}

func TestStoreRecentRunsDefaultLimit(t *testing.T) {
	store := openTestStore(t)

	for range 15 {
		store.SaveRun(RunRecord{Origin: "local", Cause: "self", Length: 3})
	}
	runs, err := store.RecentRuns(0)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(runs))
	}
}
