package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"finledger/internal/core"
	"finledger/internal/report"
)

// handleEntries serves GET (list, optionally filtered by category) and
// POST (create) on /entries.
func (s *Server) handleEntries(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleListEntries(w, r)
	case http.MethodPost:
		s.handleCreateEntry(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
	entries := s.service.Entries()

	filter := report.CategoryFilter(strings.TrimSpace(r.URL.Query().Get("category")))
	entries = report.Project(entries, filter)

	writeJSON(w, http.StatusOK, map[string]any{
		"entries":  toEntryResponses(entries),
		"category": string(filter),
	})
}

func (s *Server) handleCreateEntry(w http.ResponseWriter, r *http.Request) {
	draft, err := decodeDraft(r)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	entry, err := s.service.AddEntry(r.Context(), draft)
	if err != nil {
		slog.ErrorContext(r.Context(), "Entry create error", "error", err)
		writeError(w, statusForMutationError(err), err.Error())
		return
	}

	s.invalidateReports()
	writeJSON(w, http.StatusCreated, toEntryResponse(entry))
}

// handleUpdateEntry replaces the mutable fields of an existing entry.
func (s *Server) handleUpdateEntry(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing id parameter")
		return
	}

	draft, err := decodeDraft(r)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	entry, err := s.service.UpdateEntry(r.Context(), id, draft)
	if err != nil {
		slog.ErrorContext(r.Context(), "Entry update error", "error", err, "id", id)
		writeError(w, statusForMutationError(err), err.Error())
		return
	}

	s.invalidateReports()
	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// handleDeleteEntry removes an entry by ID. Accepts DELETE and POST.
func (s *Server) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete && r.Method != http.MethodPost {
		w.Header().Set("Allow", "DELETE, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if id == "" {
		// Allow the ID in a JSON body as well
		var payload struct {
			ID string `json:"id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err == nil {
			id = strings.TrimSpace(payload.ID)
		}
	}
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing id parameter")
		return
	}

	if err := s.service.RemoveEntry(r.Context(), id); err != nil {
		slog.ErrorContext(r.Context(), "Entry delete error", "error", err, "id", id)
		writeError(w, statusForMutationError(err), err.Error())
		return
	}

	s.invalidateReports()
	writeJSON(w, http.StatusOK, map[string]string{"deleted": id})
}

// handleListCategories returns the categories a client can offer for entry
// creation: the default set first, then any other category already present
// in the ledger, in first-seen order.
func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	categories := make([]string, 0, len(core.DefaultCategories))
	seen := make(map[string]bool, len(core.DefaultCategories))
	for _, c := range core.DefaultCategories {
		categories = append(categories, c)
		seen[c] = true
	}
	for _, e := range s.service.Entries() {
		if !seen[e.Category] {
			categories = append(categories, e.Category)
			seen[e.Category] = true
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{"categories": categories})
}

// handleSeed loads a small demo dataset. Only available when enabled
// through configuration, intended for local development.
func (s *Server) handleSeed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !s.seedEnabled {
		writeError(w, http.StatusForbidden, "seeding is disabled")
		return
	}

	now := time.Now()
	seeds := []core.EntryDraft{
		{Description: "Monthly salary", Amount: core.Money{Cents: 300000}, Type: core.Income, Category: "Salary", OccurredOn: core.ToDate(now.AddDate(0, 0, -14))},
		{Description: "Groceries", Amount: core.Money{Cents: 15000}, Type: core.Expense, Category: "Food", OccurredOn: core.ToDate(now.AddDate(0, 0, -10))},
		{Description: "Electricity bill", Amount: core.Money{Cents: 7800}, Type: core.Expense, Category: "Bills", OccurredOn: core.ToDate(now.AddDate(0, 0, -7))},
		{Description: "Freelance project", Amount: core.Money{Cents: 45000}, Type: core.Income, Category: "General", OccurredOn: core.ToDate(now.AddDate(0, 0, -3))},
	}

	created := 0
	for _, draft := range seeds {
		if _, err := s.service.AddEntry(r.Context(), draft); err != nil {
			slog.ErrorContext(r.Context(), "Seed entry failed", "error", err, "description", draft.Description)
			continue
		}
		created++
	}

	s.invalidateReports()
	writeJSON(w, http.StatusOK, map[string]int{"created": created})
}
