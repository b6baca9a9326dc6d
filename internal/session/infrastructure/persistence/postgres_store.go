package persistence

import (
	"context"
	"errors"

	"github.com/felixgeelhaar/vocalis/internal/session/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists request attributes in Postgres.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a Postgres-backed attribute store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Set upserts the attribute for the session.
func (s *PostgresStore) Set(ctx context.Context, sessionID, key, value string) error {
	query := `
		INSERT INTO session_attributes (session_id, key, value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (session_id, key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at
	`
	_, err := s.pool.Exec(ctx, query, sessionID, key, value)
	return err
}

// Get retrieves the value for key.
func (s *PostgresStore) Get(ctx context.Context, sessionID, key string) (string, error) {
	query := `SELECT value FROM session_attributes WHERE session_id = $1 AND key = $2`
	var value string
	err := s.pool.QueryRow(ctx, query, sessionID, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", domain.ErrAttributeNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// Delete removes the value for key.
func (s *PostgresStore) Delete(ctx context.Context, sessionID, key string) error {
	query := `DELETE FROM session_attributes WHERE session_id = $1 AND key = $2`
	_, err := s.pool.Exec(ctx, query, sessionID, key)
	return err
}

var _ domain.AttributeStore = (*PostgresStore)(nil)
