package report

import (
	"testing"

	"finledger/internal/core"
)

func TestProjectAllPassesThrough(t *testing.T) {
	entries := sampleEntries()
	for _, f := range []CategoryFilter{AllCategories, ""} {
		got := Project(entries, f)
		if len(got) != len(entries) {
			t.Fatalf("filter %q must pass everything through", f)
		}
		for i := range got {
			if got[i].ID != entries[i].ID {
				t.Fatalf("filter %q reordered entries", f)
			}
		}
	}
}

func TestProjectFiltersByCategoryPreservingOrder(t *testing.T) {
	entries := []core.Entry{
		entry("Groceries", 15000, core.Expense, "Food", core.NewDate(2025, 1, 3)),
		entry("Salary", 300000, core.Income, "Salary", core.NewDate(2025, 1, 1)),
		entry("Eat out", 4000, core.Expense, "Food", core.NewDate(2025, 1, 10)),
	}
	got := Project(entries, CategoryFilter("Food"))
	if len(got) != 2 || got[0].ID != "Groceries" || got[1].ID != "Eat out" {
		t.Fatalf("unexpected projection: %+v", got)
	}
}

func TestProjectUnknownCategory(t *testing.T) {
	got := Project(sampleEntries(), CategoryFilter("Travel"))
	if len(got) != 0 {
		t.Fatalf("unknown category must project to empty, got %+v", got)
	}
}

func TestFilteredTotalsDifferFromWholeLedger(t *testing.T) {
	entries := []core.Entry{
		entry("Salary", 300000, core.Income, "Salary", core.NewDate(2025, 1, 1)),
		entry("Groceries", 15000, core.Expense, "Food", core.NewDate(2025, 1, 3)),
	}
	filtered := ComputeTotals(Project(entries, CategoryFilter("Food")))
	if filtered.Income != 0 || filtered.Expense != 15000 {
		t.Fatalf("unexpected filtered totals: %+v", filtered)
	}
	// The category breakdown always reflects the whole ledger.
	breakdown := ByCategory(entries)
	if breakdown["Salary"] != 300000 || breakdown["Food"] != 15000 {
		t.Fatalf("unexpected breakdown: %v", breakdown)
	}
}
