// Package ledger owns the ordered, mutable collection of finance entries.
// It is the single source of truth; every derived view is computed from a
// Snapshot and never from shared mutable state.
package ledger

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"finledger/internal/core"
)

var ErrNotFound = errors.New("entry not found")

// Ledger is an ordered sequence of entries, oldest first. Identity is a
// generated key assigned at Add and is never positional: removing an entry
// does not change any other entry's identity, and an identity is never
// reused after deletion.
//
// Mutations are serialized with a mutex so concurrent callers keep the
// one-writer-at-a-time guarantee.
type Ledger struct {
	mu      sync.Mutex
	entries []core.Entry
}

func New() *Ledger {
	return &Ledger{}
}

// Hydrate replaces the ledger content with persisted entries. Entries that
// arrive without identity (legacy exports) are assigned one.
func (l *Ledger) Hydrate(entries []core.Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = make([]core.Entry, len(entries))
	copy(l.entries, entries)
	for i := range l.entries {
		if l.entries[i].ID == "" {
			l.entries[i].ID = uuid.NewString()
		}
	}
}

// Add validates the draft, assigns identity and appends the entry.
// The ledger is unchanged when validation fails.
func (l *Ledger) Add(draft core.EntryDraft) (core.Entry, error) {
	if err := draft.Validate(); err != nil {
		return core.Entry{}, fmt.Errorf("add entry: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	e := core.Entry{
		ID:          uuid.NewString(),
		Description: draft.Description,
		Amount:      draft.Amount,
		Type:        draft.Type,
		Category:    draft.Category,
		OccurredOn:  draft.OccurredOn,
	}
	l.entries = append(l.entries, e)
	return e, nil
}

// Update replaces all mutable fields of the entry with the given identity
// and marks it edited. The edited flag is display metadata only; it never
// affects aggregation.
func (l *Ledger) Update(id string, draft core.EntryDraft) (core.Entry, error) {
	if err := draft.Validate(); err != nil {
		return core.Entry{}, fmt.Errorf("update entry %s: %w", id, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.entries {
		if l.entries[i].ID != id {
			continue
		}
		l.entries[i].Description = draft.Description
		l.entries[i].Amount = draft.Amount
		l.entries[i].Type = draft.Type
		l.entries[i].Category = draft.Category
		l.entries[i].OccurredOn = draft.OccurredOn
		l.entries[i].Edited = true
		return l.entries[i], nil
	}
	return core.Entry{}, fmt.Errorf("update entry %s: %w", id, ErrNotFound)
}

// Remove deletes the entry with the given identity.
func (l *Ledger) Remove(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.entries {
		if l.entries[i].ID == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("remove entry %s: %w", id, ErrNotFound)
}

// Get returns the entry with the given identity.
func (l *Ledger) Get(id string) (core.Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, e := range l.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return core.Entry{}, fmt.Errorf("get entry %s: %w", id, ErrNotFound)
}

// Snapshot returns a copy of the entries in ledger order. The copy shares
// no mutable state with the ledger.
func (l *Ledger) Snapshot() []core.Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]core.Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len reports the number of entries.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
