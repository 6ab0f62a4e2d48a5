package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"

	"github.com/sharepad/sharepad/internal/dbx"
	"github.com/sharepad/sharepad/internal/filex"
	"github.com/sharepad/sharepad/internal/history/migrations"
)

// Compile-time interface check
var _ Store = (*SQLiteStore)(nil)

// SQLiteStore persists the history in a local SQLite database so shares
// survive restarts. Timestamps are stored as RFC3339 UTC strings, which sort
// lexicographically; rowid breaks ties within the same second.
type SQLiteStore struct {
	db       *sql.DB
	capacity int
}

// OpenSQLite opens (or creates) the database at dsn, applies the embedded
// migrations and returns a bounded store.
func OpenSQLite(ctx context.Context, dsn string, capacity int) (*SQLiteStore, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	if _, err := filex.EnsureParentDir(dsn); err != nil {
		return nil, fmt.Errorf("failed to prepare history directory: %w", err)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return nil, fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return nil, fmt.Errorf("failed to run history migrations: %w", err)
	}

	return &SQLiteStore{db: db, capacity: capacity}, nil
}

// NewSQLiteStore wraps an already migrated database handle. Used by tests.
func NewSQLiteStore(db *sql.DB, capacity int) *SQLiteStore {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &SQLiteStore{db: db, capacity: capacity}
}

// Add inserts the entry and trims the table back to capacity inside one
// transaction, so concurrent completed shares cannot lose updates.
func (s *SQLiteStore) Add(ctx context.Context, entry *Entry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO shares (id, text, link, created_at) VALUES (?, ?, ?, ?)`,
			entry.ID, entry.Text, entry.Link, entry.CreatedAt.UTC().Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("failed to insert share: %w", err)
		}

		_, err = tx.ExecContext(ctx,
			`DELETE FROM shares WHERE id NOT IN (
				SELECT id FROM shares ORDER BY created_at DESC, rowid DESC LIMIT ?
			)`, s.capacity)
		if err != nil {
			return fmt.Errorf("failed to trim history: %w", err)
		}
		return nil
	})
}

func (s *SQLiteStore) List(ctx context.Context) ([]Entry, error) {
	return s.query(ctx,
		`SELECT id, text, link, created_at FROM shares
		 ORDER BY created_at DESC, rowid DESC`)
}

func (s *SQLiteStore) Search(ctx context.Context, filter Filter) ([]Entry, error) {
	// substring match is done in SQL; date bounds are cheap enough to apply
	// on the scanned rows and keep the query trivial
	rows, err := s.query(ctx,
		`SELECT id, text, link, created_at FROM shares
		 WHERE lower(text) LIKE '%' || lower(?) || '%' OR lower(link) LIKE '%' || lower(?) || '%'
		 ORDER BY created_at DESC, rowid DESC`,
		filter.Query, filter.Query)
	if err != nil {
		return nil, err
	}

	out := make([]Entry, 0, len(rows))
	for i := range rows {
		if filter.Matches(&rows[i]) {
			out = append(out, rows[i])
		}
	}
	return out, nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM shares`); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) query(ctx context.Context, q string, args ...any) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select shares: %w", err)
	}
	defer rows.Close()

	var result []Entry
	for rows.Next() {
		var item Entry
		var ts string
		if err := rows.Scan(&item.ID, &item.Text, &item.Link, &ts); err != nil {
			return nil, err
		}
		item.CreatedAt, err = time.Parse(time.RFC3339, ts)
		if err != nil {
			return nil, fmt.Errorf("failed to parse share timestamp: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
