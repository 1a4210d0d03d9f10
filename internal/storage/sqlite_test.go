package storage

import (
	"context"
	"path/filepath"
	"testing"

	"finledger/internal/core"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	initial, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load on fresh store: %v", err)
	}
	if len(initial) != 0 {
		t.Fatalf("expected empty store, got %d entries", len(initial))
	}

	entries := []core.Entry{
		{ID: "a", Description: "Salary", Amount: core.Money{Cents: 300000}, Type: core.Income, Category: "Salary", OccurredOn: core.NewDate(2025, 1, 1)},
		{ID: "b", Description: "Groceries", Amount: core.Money{Cents: 15000}, Type: core.Expense, Category: "Food", OccurredOn: core.NewDate(2025, 1, 3), Edited: true},
	}
	if err := store.Save(ctx, entries); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(loaded))
	}
	if loaded[0].ID != "a" || loaded[1].ID != "b" {
		t.Errorf("order not preserved: got %s, %s", loaded[0].ID, loaded[1].ID)
	}
	if loaded[0].Amount.Cents != 300000 || loaded[0].Type != core.Income {
		t.Errorf("first entry fields did not survive: %+v", loaded[0])
	}
	if loaded[1].OccurredOn.ISO() != "2025-01-03" {
		t.Errorf("date did not survive: %q", loaded[1].OccurredOn.ISO())
	}
	if !loaded[1].Edited {
		t.Error("edited flag did not survive")
	}
}

func TestSQLiteStoreSaveReplacesState(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	first := []core.Entry{{ID: "a", Description: "Old", Amount: core.Money{Cents: 100}, Type: core.Expense, Category: "General", OccurredOn: core.NewDate(2025, 1, 1)}}
	if err := store.Save(ctx, first); err != nil {
		t.Fatalf("first Save: %v", err)
	}

	second := []core.Entry{{ID: "b", Description: "New", Amount: core.Money{Cents: 200}, Type: core.Income, Category: "Salary", OccurredOn: core.NewDate(2025, 2, 1)}}
	if err := store.Save(ctx, second); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 1 || loaded[0].ID != "b" {
		t.Fatalf("expected only the second snapshot, got %+v", loaded)
	}
}

func TestSQLiteStoreLoadSkipsCorruptRows(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	good := []core.Entry{{ID: "a", Description: "Rent", Amount: core.Money{Cents: 90000}, Type: core.Expense, Category: "Bills", OccurredOn: core.NewDate(2025, 1, 1)}}
	if err := store.Save(ctx, good); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Sneak in a row whose amount cannot be read back as an integer.
	_, err := store.db.ExecContext(ctx,
		`INSERT INTO entries (id, position, description, amount_cents, type, category, occurred_on, edited)
		 VALUES ('bad', 99, 'Broken', 'garbage', 'expense', 'Bills', '2025-01-02', 0)`)
	if err != nil {
		t.Fatalf("insert corrupt row: %v", err)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load should not fail on a corrupt row: %v", err)
	}
	if len(loaded) != 1 || loaded[0].ID != "a" {
		t.Fatalf("expected only the readable entry, got %+v", loaded)
	}
}
