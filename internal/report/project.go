package report

import "finledger/internal/core"

// AllCategories is the filter value that passes the snapshot through
// unchanged.
const AllCategories CategoryFilter = "all"

// CategoryFilter selects either every entry or a single category. It is
// the only point where a "current view" may differ from ledger truth:
// filtered listings and totals consume the projected sequence, while the
// category breakdown and period series intentionally consume the full
// snapshot so whole-ledger charts ignore the active filter.
type CategoryFilter string

func (f CategoryFilter) All() bool {
	return f == "" || f == AllCategories
}

// Project applies the category filter, preserving relative order. The
// result for AllCategories is the input itself; callers must treat it as
// read-only, as they do the snapshot.
func Project(entries []core.Entry, filter CategoryFilter) []core.Entry {
	if filter.All() {
		return entries
	}
	out := make([]core.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Category == string(filter) {
			out = append(out, e)
		}
	}
	return out
}
