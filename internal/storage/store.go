package storage

import (
	"context"

	"finledger/internal/core"
)

// Store is the persistence collaborator for the ledger. The core calls
// Load once at startup and Save after every successful mutation with a
// complete snapshot; both sides treat the other as potentially absent, so
// missing or corrupt state degrades to an empty ledger instead of failing.
type Store interface {
	Load(ctx context.Context) ([]core.Entry, error)
	Save(ctx context.Context, entries []core.Entry) error
	Close() error
}
