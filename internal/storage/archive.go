package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/redshift-games/tyrian-world/internal/services"
	"github.com/redshift-games/tyrian-world/pkg/session"
)

const archiveSchema = `
CREATE TABLE IF NOT EXISTS worlds (
	id TEXT PRIMARY KEY,
	status TEXT NOT NULL,
	seed TEXT NOT NULL DEFAULT '',
	record TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	completed_at INTEGER
)`

// SQLiteArchive keeps every generation record in a local SQLite
// database, outliving the session store TTL
type SQLiteArchive struct {
	db *sql.DB
}

// Ensure SQLiteArchive implements Archive interface
var _ services.Archive = (*SQLiteArchive)(nil)

// OpenArchive opens the archive database at path, creating it and its
// schema if needed
func OpenArchive(path string) (*SQLiteArchive, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("archive path is required")
	}

	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open archive db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping archive db: %w", err)
	}
	if _, err := db.Exec(archiveSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create archive schema: %w", err)
	}

	return &SQLiteArchive{db: db}, nil
}

func (a *SQLiteArchive) Ping(ctx context.Context) error {
	return a.db.PingContext(ctx)
}

func (a *SQLiteArchive) Close() error {
	return a.db.Close()
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

// SaveRecord stores or replaces the archived copy of a record
func (a *SQLiteArchive) SaveRecord(ctx context.Context, rec *session.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	var completedAt sql.NullInt64
	if rec.CompletedAt != nil {
		completedAt = sql.NullInt64{Int64: toMillis(*rec.CompletedAt), Valid: true}
	}

	_, err = a.db.ExecContext(ctx, `
INSERT INTO worlds (id, status, seed, record, created_at, completed_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	status = excluded.status,
	seed = excluded.seed,
	record = excluded.record,
	completed_at = excluded.completed_at`,
		rec.ID.String(), string(rec.Status), rec.Seed, string(data),
		toMillis(rec.CreatedAt), completedAt)
	if err != nil {
		return fmt.Errorf("archive record: %w", err)
	}
	return nil
}

// LoadRecord retrieves an archived record.
// Returns nil if the record was never archived.
func (a *SQLiteArchive) LoadRecord(ctx context.Context, id uuid.UUID) (*session.Record, error) {
	var data string
	err := a.db.QueryRowContext(ctx,
		`SELECT record FROM worlds WHERE id = ?`, id.String()).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("load archived record: %w", err)
	}

	var rec session.Record
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return nil, fmt.Errorf("unmarshal archived record: %w", err)
	}
	return &rec, nil
}
