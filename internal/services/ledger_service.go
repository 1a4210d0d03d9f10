package services

import (
	"context"
	"fmt"
	"log/slog"

	"finledger/internal/amqp"
	"finledger/internal/core"
	"finledger/internal/ledger"
	"finledger/internal/storage"
)

// EventPublisher is the slice of the AMQP client the service needs. A nil
// publisher disables events without changing any code path.
type EventPublisher interface {
	PublishEntryChange(ctx context.Context, id, op string) error
	Close() error
}

// LedgerService orchestrates ledger mutations across the in-memory ledger,
// the persistence backend and the event publisher. The ledger is the source
// of truth; persistence and events follow it and never block a mutation.
type LedgerService struct {
	ledger *ledger.Ledger
	store  storage.Store
	events EventPublisher
}

func NewLedgerService(l *ledger.Ledger, store storage.Store, events EventPublisher) *LedgerService {
	return &LedgerService{
		ledger: l,
		store:  store,
		events: events,
	}
}

// Hydrate loads persisted entries into the ledger. A failed load degrades to
// an empty ledger so the service always starts.
func (s *LedgerService) Hydrate(ctx context.Context) {
	if s.store == nil {
		return
	}

	entries, err := s.store.Load(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load persisted ledger, starting empty", "error", err)
		return
	}

	s.ledger.Hydrate(entries)
	slog.InfoContext(ctx, "Ledger hydrated", "entries", s.ledger.Len())
}

// AddEntry records a new entry and returns its assigned ID.
func (s *LedgerService) AddEntry(ctx context.Context, draft core.EntryDraft) (core.Entry, error) {
	entry, err := s.ledger.Add(draft)
	if err != nil {
		return core.Entry{}, fmt.Errorf("add entry: %w", err)
	}

	s.persist(ctx)
	s.publish(ctx, entry.ID, amqp.OpCreated)

	return entry, nil
}

// UpdateEntry replaces the mutable fields of an existing entry.
func (s *LedgerService) UpdateEntry(ctx context.Context, id string, draft core.EntryDraft) (core.Entry, error) {
	entry, err := s.ledger.Update(id, draft)
	if err != nil {
		return core.Entry{}, err
	}

	s.persist(ctx)
	s.publish(ctx, entry.ID, amqp.OpUpdated)

	return entry, nil
}

// RemoveEntry deletes an entry by ID.
func (s *LedgerService) RemoveEntry(ctx context.Context, id string) error {
	if err := s.ledger.Remove(id); err != nil {
		return err
	}

	s.persist(ctx)
	s.publish(ctx, id, amqp.OpDeleted)

	return nil
}

// Entries returns the current ledger snapshot.
func (s *LedgerService) Entries() []core.Entry {
	return s.ledger.Snapshot()
}

// Entry returns a single entry by ID.
func (s *LedgerService) Entry(id string) (core.Entry, error) {
	return s.ledger.Get(id)
}

func (s *LedgerService) persist(ctx context.Context) {
	if s.store == nil {
		return
	}

	if err := s.store.Save(ctx, s.ledger.Snapshot()); err != nil {
		slog.ErrorContext(ctx, "Failed to persist ledger", "error", err)
		// The mutation already happened in memory, don't fail the request
	}
}

func (s *LedgerService) publish(ctx context.Context, id, op string) {
	if s.events == nil {
		return
	}

	if err := s.events.PublishEntryChange(ctx, id, op); err != nil {
		slog.ErrorContext(ctx, "Failed to publish entry change",
			"id", id, "op", op, "error", err)
	}
}

// Close closes both the storage backend and the event publisher.
func (s *LedgerService) Close() error {
	var errs []error

	if s.store != nil {
		if err := s.store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("storage: %w", err))
		}
	}

	if s.events != nil {
		if err := s.events.Close(); err != nil {
			errs = append(errs, fmt.Errorf("events: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close ledger service: %v", errs)
	}

	return nil
}
