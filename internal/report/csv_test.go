package report

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"finledger/internal/core"
)

func TestToCSVLayout(t *testing.T) {
	got := ToCSV(sampleEntries())
	want := "Title,Amount,Type,Category,Date\n" +
		`"Salary",3000,income,Salary,"2025-01-01"` + "\n" +
		`"Groceries",150,expense,Food,"2025-01-03"`
	if got != want {
		t.Fatalf("unexpected csv:\n%s\nwant:\n%s", got, want)
	}
	if strings.HasSuffix(got, "\n") {
		t.Fatalf("csv must not end with a newline")
	}
}

func TestToCSVQuotesEmbeddedQuotes(t *testing.T) {
	entries := []core.Entry{
		entry(`He said "hi"`, 100, core.Expense, "General", core.NewDate(2025, 1, 5)),
	}
	got := ToCSV(entries)
	if !strings.Contains(got, `"He said ""hi"""`) {
		t.Fatalf("embedded quotes not doubled:\n%s", got)
	}
}

func TestToCSVQuotesCategoryWithMetacharacters(t *testing.T) {
	entries := []core.Entry{
		entry("Dinner", 5000, core.Expense, "Food, Drinks", core.NewDate(2025, 1, 5)),
	}
	got := ToCSV(entries)
	if !strings.Contains(got, `,"Food, Drinks",`) {
		t.Fatalf("category with comma must be quoted:\n%s", got)
	}

	r := csv.NewReader(strings.NewReader(got))
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("standard reader rejected export: %v", err)
	}
	if rows[1][3] != "Food, Drinks" {
		t.Fatalf("category did not round-trip: %q", rows[1][3])
	}
}

func TestToCSVEmptyLedger(t *testing.T) {
	if got := ToCSV(nil); got != "Title,Amount,Type,Category,Date" {
		t.Fatalf("empty ledger must export the bare header, got %q", got)
	}
}

func TestToCSVRoundTripsThroughStandardReader(t *testing.T) {
	entries := []core.Entry{
		entry(`Dinner, "fancy"`, 7550, core.Expense, "Food", core.NewDate(2025, 2, 14)),
		entry("Salary", 300000, core.Income, "Salary", core.NewDate(2025, 2, 1)),
	}
	r := csv.NewReader(strings.NewReader(ToCSV(entries)))
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("standard reader rejected export: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	first := rows[1]
	if first[0] != `Dinner, "fancy"` || first[1] != "75.50" || first[2] != "expense" || first[3] != "Food" || first[4] != "2025-02-14" {
		t.Fatalf("row did not round-trip: %v", first)
	}
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2025, 3, 7, 9, 0, 0, 0, time.UTC)
	if got := ExportFilename(now); got != "finance-export-2025-3-7.csv" {
		t.Fatalf("ExportFilename = %q", got)
	}
}

func TestPrintable(t *testing.T) {
	summary, rows := Printable(sampleEntries())
	if summary != "Income: $3000 | Expense: $150 | Balance: $2850" {
		t.Fatalf("unexpected summary: %q", summary)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Description != "Salary" || rows[0].Date != "2025-01-01" || rows[0].Amount != "3000" {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
}
