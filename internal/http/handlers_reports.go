package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"finledger/internal/core"
	"finledger/internal/report"
)

// handleTotals serves the overall income/expense/balance summary.
func (s *Server) handleTotals(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	totals := report.ComputeTotals(s.service.Entries())

	writeJSON(w, http.StatusOK, map[string]any{
		"income":  core.FormatAmount(totals.Income),
		"expense": core.FormatAmount(totals.Expense),
		"balance": core.FormatAmount(totals.Balance),
	})
}

// handleCategories serves the per-category totals.
func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	buckets := report.ByCategory(s.service.Entries())

	formatted := make(map[string]string, len(buckets))
	for name, cents := range buckets {
		if name == report.NoDataCategory {
			// Synthetic placeholder bucket, not cents. Keep it a bare
			// count so it can never read as a real amount.
			formatted[name] = strconv.FormatInt(cents, 10)
			continue
		}
		formatted[name] = core.FormatAmount(cents)
	}

	writeJSON(w, http.StatusOK, map[string]any{"categories": formatted})
}

// handlePeriods serves period totals bucketed by month or week.
func (s *Server) handlePeriods(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	granularity := report.Granularity(strings.TrimSpace(r.URL.Query().Get("granularity")))
	if granularity == "" {
		granularity = report.Monthly
	}
	if !granularity.Valid() {
		writeError(w, http.StatusBadRequest, "granularity must be 'monthly' or 'weekly'")
		return
	}

	key := string(granularity)
	periods, found := s.periodsCache.Get(key)
	if !found {
		periods = report.ByPeriodOrCurrent(s.service.Entries(), granularity, time.Now())
		s.periodsCache.Set(key, periods)
	}

	type periodResponse struct {
		Period  string `json:"period"`
		Income  string `json:"income"`
		Expense string `json:"expense"`
	}
	out := make([]periodResponse, 0, len(periods))
	for _, p := range periods {
		out = append(out, periodResponse{
			Period:  p.Period,
			Income:  core.FormatAmount(p.Income),
			Expense: core.FormatAmount(p.Expense),
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"granularity": string(granularity),
		"periods":     out,
	})
}
