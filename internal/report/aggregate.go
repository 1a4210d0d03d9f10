// Package report derives read-only views from a ledger snapshot: running
// totals, category breakdowns, period series and export documents. Every
// function here is pure; nothing in this package mutates the snapshot or
// touches I/O.
package report

import (
	"fmt"
	"sort"
	"time"

	"finledger/internal/core"
)

const (
	Monthly Granularity = "monthly"
	Weekly  Granularity = "weekly"
)

// NoDataCategory is the synthetic breakdown bucket emitted for an empty
// snapshot so chart consumers always have one renderable slice. Its value
// is a unitless 1, not an amount.
const NoDataCategory = "No Data"

type (
	Granularity string

	// Totals is the running ledger summary in cents.
	Totals struct {
		Income  int64
		Expense int64
		Balance int64
	}

	// PeriodTotals is one time bucket of the period series.
	PeriodTotals struct {
		Period  string
		Income  int64
		Expense int64
	}
)

func (g Granularity) Valid() bool {
	return g == Monthly || g == Weekly
}

// ComputeTotals sums income and expense magnitudes over the snapshot.
// Balance is exactly income minus expense; accumulation is integer cents,
// so no rounding occurs.
func ComputeTotals(entries []core.Entry) Totals {
	var t Totals
	for _, e := range entries {
		switch e.Type {
		case core.Income:
			t.Income += e.Amount.Cents
		case core.Expense:
			t.Expense += e.Amount.Cents
		}
	}
	t.Balance = t.Income - t.Expense
	return t
}

// ByCategory aggregates absolute magnitudes per category, combining income
// and expense in the same bucket. Categories without entries are omitted.
// An empty snapshot yields exactly {NoDataCategory: 1}.
func ByCategory(entries []core.Entry) map[string]int64 {
	if len(entries) == 0 {
		return map[string]int64{NoDataCategory: 1}
	}
	sums := make(map[string]int64)
	for _, e := range entries {
		cents := e.Amount.Cents
		if cents < 0 {
			cents = -cents
		}
		sums[e.Category] += cents
	}
	return sums
}

// ByPeriod buckets entries by calendar period and returns the buckets with
// keys in ascending lexical order. The keys (YYYY-MM, YYYY-Www) sort
// lexically in chronological order. An empty snapshot yields an empty
// series; see ByPeriodOrCurrent for chart callers.
func ByPeriod(entries []core.Entry, g Granularity, now time.Time) []PeriodTotals {
	buckets := make(map[string]*PeriodTotals)
	for _, e := range entries {
		key := periodKey(e.OccurredOn, g)
		b, ok := buckets[key]
		if !ok {
			b = &PeriodTotals{Period: key}
			buckets[key] = b
		}
		switch e.Type {
		case core.Income:
			b.Income += e.Amount.Cents
		case core.Expense:
			b.Expense += e.Amount.Cents
		}
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]PeriodTotals, 0, len(keys))
	for _, k := range keys {
		out = append(out, *buckets[k])
	}
	return out
}

// ByPeriodOrCurrent behaves like ByPeriod but synthesizes a single
// zero-valued bucket for the current period when the snapshot is empty,
// for callers that need a non-empty series.
func ByPeriodOrCurrent(entries []core.Entry, g Granularity, now time.Time) []PeriodTotals {
	series := ByPeriod(entries, g, now)
	if len(series) == 0 {
		series = []PeriodTotals{{Period: periodKey(core.ToDate(now), g)}}
	}
	return series
}

// LatestPeriodSummary returns the most recent bucket of the period series,
// or ok=false for an empty snapshot.
func LatestPeriodSummary(entries []core.Entry, g Granularity, now time.Time) (PeriodTotals, bool) {
	series := ByPeriod(entries, g, now)
	if len(series) == 0 {
		return PeriodTotals{}, false
	}
	return series[len(series)-1], true
}

// periodKey derives the bucket key for a date. Weekly numbering uses the
// days-since-Jan-1 count offset by Jan 1's weekday, divided by 7 with
// ceiling. This is an approximation of ISO week numbering, kept for
// compatibility with existing exports.
func periodKey(d core.Date, g Granularity) string {
	if g == Weekly {
		jan1 := time.Date(d.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		days := d.Time.YearDay()
		week := (days + int(jan1.Weekday()) + 6) / 7
		if week < 1 {
			week = 1
		}
		return fmt.Sprintf("%04d-W%02d", d.Year(), week)
	}
	return d.Time.Format("2006-01")
}
