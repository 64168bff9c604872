// Package identityrepo is the Postgres implementation of the identity
// repository port.
package identityrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/adapters/postgres"
	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/domain"
	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/ports/out/identityrepo"
)

// Repo is a Postgres implementation of identityrepo.Repository.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) Create(ctx context.Context, rec identityrepo.Identity) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO identities (id, email, username, created_at)
		VALUES ($1, $2, $3, $4)
	`, string(rec.ID), rec.Email, rec.Username, rec.CreatedAt.UTC())
	if err != nil {
		if pe, ok := postgres.AsPgError(err); ok && pe.Code == postgres.UniqueViolationCode {
			switch pe.ConstraintName {
			case "identities_email_unique":
				return identityrepo.ErrEmailAlreadyInUse
			default:
				return identityrepo.ErrAlreadyExists
			}
		}
		return err
	}
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.PrincipalID) (identityrepo.Identity, error) {
	if r.pool == nil {
		return identityrepo.Identity{}, errors.New("nil postgres pool")
	}
	return r.scanOne(ctx, `
		SELECT id, email, username, created_at
		FROM identities
		WHERE id = $1
	`, string(id))
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (identityrepo.Identity, error) {
	if r.pool == nil {
		return identityrepo.Identity{}, errors.New("nil postgres pool")
	}
	return r.scanOne(ctx, `
		SELECT id, email, username, created_at
		FROM identities
		WHERE lower(email) = lower($1)
	`, email)
}

func (r *Repo) scanOne(ctx context.Context, query string, arg any) (identityrepo.Identity, error) {
	var (
		id        string
		email     string
		username  string
		createdAt time.Time
	)
	err := r.pool.QueryRow(ctx, query, arg).Scan(&id, &email, &username, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return identityrepo.Identity{}, identityrepo.ErrNotFound
		}
		return identityrepo.Identity{}, err
	}
	return identityrepo.Identity{
		ID:        domain.PrincipalID(id),
		Email:     email,
		Username:  username,
		CreatedAt: createdAt.UTC(),
	}, nil
}
