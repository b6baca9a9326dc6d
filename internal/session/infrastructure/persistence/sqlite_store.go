package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/felixgeelhaar/vocalis/internal/session/domain"
	_ "modernc.org/sqlite" // register the sqlite driver
)

// SQLiteStore persists request attributes in a local SQLite database. It is
// the zero-config backend for local mode.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the SQLite database at path and ensures
// the attribute schema exists.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	schema := `
		CREATE TABLE IF NOT EXISTS session_attributes (
			session_id TEXT NOT NULL,
			key        TEXT NOT NULL,
			value      TEXT NOT NULL,
			updated_at TEXT NOT NULL,
			PRIMARY KEY (session_id, key)
		)
	`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

// Set upserts the attribute for the session.
func (s *SQLiteStore) Set(ctx context.Context, sessionID, key, value string) error {
	query := `
		INSERT INTO session_attributes (session_id, key, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (session_id, key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.ExecContext(ctx, query, sessionID, key, value, now)
	return err
}

// Get retrieves the value for key.
func (s *SQLiteStore) Get(ctx context.Context, sessionID, key string) (string, error) {
	query := `SELECT value FROM session_attributes WHERE session_id = ? AND key = ?`
	var value string
	err := s.db.QueryRowContext(ctx, query, sessionID, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrAttributeNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// Delete removes the value for key.
func (s *SQLiteStore) Delete(ctx context.Context, sessionID, key string) error {
	query := `DELETE FROM session_attributes WHERE session_id = ? AND key = ?`
	_, err := s.db.ExecContext(ctx, query, sessionID, key)
	return err
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

var _ domain.AttributeStore = (*SQLiteStore)(nil)
