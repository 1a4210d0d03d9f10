package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"finledger/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists ledger snapshots in a local SQLite database. Save
// replaces the whole entry set inside one transaction, mirroring the
// full-state write the ledger hands it after every mutation.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load reads the persisted entries in ledger order. Rows that cannot be
// interpreted are skipped rather than failing the whole load, so a partly
// corrupt state still hydrates what it can.
func (s *SQLiteStore) Load(ctx context.Context) ([]core.Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, description, amount_cents, type, category, occurred_on, edited
		 FROM entries ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	var entries []core.Entry
	for rows.Next() {
		var (
			e          core.Entry
			amountCent int64
			typ        string
			occurredOn string
			edited     int64
		)
		if err := rows.Scan(&e.ID, &e.Description, &amountCent, &typ, &e.Category, &occurredOn, &edited); err != nil {
			slog.WarnContext(ctx, "Skipping unreadable entry row", "error", err)
			continue
		}
		e.Amount = core.Money{Cents: amountCent}
		e.Type = core.EntryType(typ)
		e.OccurredOn = core.NormalizeDate(occurredOn, time.Now())
		e.Edited = edited != 0
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan entries: %w", err)
	}

	slog.InfoContext(ctx, "Loaded ledger from SQLite", "entries", len(entries))
	return entries, nil
}

// Save writes the complete snapshot, replacing any previous state.
func (s *SQLiteStore) Save(ctx context.Context, entries []core.Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return fmt.Errorf("clear entries: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO entries (id, position, description, amount_cents, type, category, occurred_on, edited)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range entries {
		edited := 0
		if e.Edited {
			edited = 1
		}
		if _, err := stmt.ExecContext(ctx, e.ID, i, e.Description, e.Amount.Cents,
			string(e.Type), e.Category, e.OccurredOn.ISO(), edited); err != nil {
			return fmt.Errorf("insert entry %s: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

var _ Store = (*SQLiteStore)(nil)
