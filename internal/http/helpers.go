package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"finledger/internal/core"
	"finledger/internal/ledger"
)

// entryPayload is the JSON body accepted by the create and update endpoints.
// Amount is a decimal string ("12.50"), Date accepts anything the date
// normalizer understands.
type entryPayload struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Date        string `json:"date"`
}

// entryResponse is the wire shape of a ledger entry.
type entryResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Date        string `json:"date"`
	Edited      bool   `json:"edited"`
}

func toEntryResponse(e core.Entry) entryResponse {
	return entryResponse{
		ID:          e.ID,
		Description: e.Description,
		Amount:      core.FormatAmount(e.Amount.Cents),
		Type:        string(e.Type),
		Category:    e.Category,
		Date:        e.OccurredOn.ISO(),
		Edited:      e.Edited,
	}
}

func toEntryResponses(entries []core.Entry) []entryResponse {
	out := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntryResponse(e))
	}
	return out
}

// decodeDraft reads an entryPayload from the request body and converts it
// into an EntryDraft. Draft validation happens in the ledger.
func decodeDraft(r *http.Request) (core.EntryDraft, error) {
	var payload entryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return core.EntryDraft{}, errors.New("invalid JSON body")
	}

	cents, err := core.ParseDecimalToCents(strings.TrimSpace(payload.Amount))
	if err != nil {
		return core.EntryDraft{}, err
	}

	return core.EntryDraft{
		Description: sanitizeInput(payload.Description),
		Amount:      core.Money{Cents: cents},
		Type:        core.EntryType(strings.TrimSpace(payload.Type)),
		Category:    sanitizeInput(payload.Category),
		OccurredOn:  core.NormalizeDate(payload.Date, time.Now()),
	}, nil
}

// sanitizeInput removes potentially dangerous characters and trims whitespace
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	// Remove control characters except tab, newline, carriage return
	result := strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1 // remove character
		}
		return r
	}, s)
	return result
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// statusForMutationError maps service errors onto HTTP status codes.
func statusForMutationError(err error) int {
	switch {
	case errors.Is(err, ledger.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrEmptyDescription),
		errors.Is(err, core.ErrInvalidAmount),
		errors.Is(err, core.ErrInvalidType),
		errors.Is(err, core.ErrInvalidCategory):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
