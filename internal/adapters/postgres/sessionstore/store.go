// Package sessionstore is the Postgres implementation of the session store
// port. It only reads the sessions table; issuing and revoking sessions is
// the authentication subsystem's job.
package sessionstore

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/domain"
	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/ports/out/sessionstore"
)

// Store is a Postgres implementation of sessionstore.Store.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Lookup maps a token to its principal. Expired sessions are filtered in
// the query, so a stale token reads exactly like an unknown one.
func (s *Store) Lookup(ctx context.Context, token string) (domain.PrincipalID, error) {
	if s.pool == nil {
		return "", errors.New("nil postgres pool")
	}

	var principal string
	err := s.pool.QueryRow(ctx, `
		SELECT principal_id
		FROM sessions
		WHERE token = $1
		  AND (expires_at IS NULL OR expires_at > now())
	`, token).Scan(&principal)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", sessionstore.ErrNotFound
		}
		return "", err
	}
	return domain.PrincipalID(principal), nil
}

// Seed inserts a session row directly. Test fixtures only.
func (s *Store) Seed(ctx context.Context, token string, principal domain.PrincipalID, expiresAt time.Time) error {
	var exp *time.Time
	if !expiresAt.IsZero() {
		u := expiresAt.UTC()
		exp = &u
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO sessions (token, principal_id, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (token) DO UPDATE
		SET principal_id = EXCLUDED.principal_id,
		    expires_at = EXCLUDED.expires_at
	`, token, string(principal), exp)
	return err
}
