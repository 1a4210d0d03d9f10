package report

import (
	"sort"
	"testing"
	"time"

	"finledger/internal/core"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func entry(desc string, cents int64, ty core.EntryType, cat string, d core.Date) core.Entry {
	return core.Entry{
		ID:          desc,
		Description: desc,
		Amount:      core.Money{Cents: cents},
		Type:        ty,
		Category:    cat,
		OccurredOn:  d,
	}
}

func sampleEntries() []core.Entry {
	return []core.Entry{
		entry("Salary", 300000, core.Income, "Salary", core.NewDate(2025, 1, 1)),
		entry("Groceries", 15000, core.Expense, "Food", core.NewDate(2025, 1, 3)),
	}
}

func TestComputeTotals(t *testing.T) {
	got := ComputeTotals(sampleEntries())
	if got.Income != 300000 || got.Expense != 15000 || got.Balance != 285000 {
		t.Fatalf("unexpected totals: %+v", got)
	}
}

func TestComputeTotalsBalanceIdentity(t *testing.T) {
	entries := []core.Entry{
		entry("a", 12345, core.Income, "General", core.NewDate(2025, 2, 1)),
		entry("b", 67, core.Expense, "Food", core.NewDate(2025, 2, 2)),
		entry("c", 8900, core.Expense, "Bills", core.NewDate(2025, 3, 1)),
		entry("d", 1, core.Income, "General", core.NewDate(2025, 3, 2)),
	}
	got := ComputeTotals(entries)
	if got.Balance != got.Income-got.Expense {
		t.Fatalf("balance %d != income %d - expense %d", got.Balance, got.Income, got.Expense)
	}
}

func TestComputeTotalsEmpty(t *testing.T) {
	got := ComputeTotals(nil)
	if got.Income != 0 || got.Expense != 0 || got.Balance != 0 {
		t.Fatalf("empty snapshot must give zero totals: %+v", got)
	}
}

func TestByCategoryCombinesTypes(t *testing.T) {
	entries := []core.Entry{
		entry("Eat out", 5000, core.Expense, "Food", core.NewDate(2025, 1, 1)),
		entry("Refund", 5000, core.Income, "Food", core.NewDate(2025, 1, 2)),
	}
	got := ByCategory(entries)
	if len(got) != 1 || got["Food"] != 10000 {
		t.Fatalf("income and expense in one category must combine: %v", got)
	}
}

func TestByCategoryEmptySnapshot(t *testing.T) {
	got := ByCategory(nil)
	if len(got) != 1 || got[NoDataCategory] != 1 {
		t.Fatalf("empty snapshot must give the synthetic bucket, got %v", got)
	}
}

func TestByPeriodMonthly(t *testing.T) {
	got := ByPeriod(sampleEntries(), Monthly, testNow)
	if len(got) != 1 {
		t.Fatalf("expected one bucket, got %d", len(got))
	}
	b := got[0]
	if b.Period != "2025-01" || b.Income != 300000 || b.Expense != 15000 {
		t.Fatalf("unexpected bucket: %+v", b)
	}
}

func TestByPeriodKeysAscendingAndUnique(t *testing.T) {
	entries := []core.Entry{
		entry("dec", 100, core.Expense, "General", core.NewDate(2024, 12, 31)),
		entry("feb", 100, core.Expense, "General", core.NewDate(2025, 2, 1)),
		entry("jan a", 100, core.Income, "General", core.NewDate(2025, 1, 5)),
		entry("jan b", 100, core.Expense, "General", core.NewDate(2025, 1, 20)),
	}
	got := ByPeriod(entries, Monthly, testNow)

	keys := make([]string, len(got))
	for i, b := range got {
		keys[i] = b.Period
	}
	if !sort.StringsAreSorted(keys) {
		t.Fatalf("keys not ascending: %v", keys)
	}
	seen := map[string]bool{}
	for _, k := range keys {
		if seen[k] {
			t.Fatalf("duplicate key %q", k)
		}
		seen[k] = true
	}
	if len(keys) != 3 {
		t.Fatalf("expected 3 buckets, got %v", keys)
	}
}

func TestByPeriodWeeklyKey(t *testing.T) {
	// Jan 1 2025 is a Wednesday; the first days of the year land in W01.
	entries := []core.Entry{
		entry("early", 100, core.Income, "General", core.NewDate(2025, 1, 1)),
		entry("later", 200, core.Expense, "General", core.NewDate(2025, 1, 13)),
	}
	got := ByPeriod(entries, Weekly, testNow)
	if len(got) != 2 {
		t.Fatalf("expected two buckets, got %+v", got)
	}
	if got[0].Period != "2025-W01" {
		t.Fatalf("first bucket key = %q", got[0].Period)
	}
	if got[1].Period != "2025-W03" {
		t.Fatalf("second bucket key = %q", got[1].Period)
	}
}

func TestByPeriodOrCurrentSynthesizesBucket(t *testing.T) {
	got := ByPeriodOrCurrent(nil, Monthly, testNow)
	if len(got) != 1 {
		t.Fatalf("expected synthesized bucket, got %+v", got)
	}
	if got[0].Period != "2025-06" || got[0].Income != 0 || got[0].Expense != 0 {
		t.Fatalf("unexpected synthesized bucket: %+v", got[0])
	}
}

func TestLatestPeriodSummary(t *testing.T) {
	if _, ok := LatestPeriodSummary(nil, Monthly, testNow); ok {
		t.Fatalf("empty snapshot must report no latest period")
	}
	entries := []core.Entry{
		entry("jan", 100, core.Income, "General", core.NewDate(2025, 1, 5)),
		entry("mar", 250, core.Expense, "General", core.NewDate(2025, 3, 5)),
	}
	got, ok := LatestPeriodSummary(entries, Monthly, testNow)
	if !ok || got.Period != "2025-03" || got.Expense != 250 {
		t.Fatalf("unexpected latest period: %+v ok=%v", got, ok)
	}
}

func TestGranularityValid(t *testing.T) {
	if !Monthly.Valid() || !Weekly.Valid() {
		t.Fatalf("monthly and weekly must be valid")
	}
	if Granularity("daily").Valid() {
		t.Fatalf("daily is not a supported granularity")
	}
}
