// Package teamrepo is the Postgres implementation of the team repository
// port. The member and leader sets live in join tables and are rewritten
// together with the team row in one transaction.
package teamrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/adapters/postgres"
	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/domain"
	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/ports/out/teamrepo"
)

// Repo is a Postgres implementation of teamrepo.Repository.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) Create(ctx context.Context, tm teamrepo.Team) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}

	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO teams (id, name, description, longitude, latitude, city, state, country, created_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		`,
			string(tm.ID),
			tm.Name,
			tm.Description,
			tm.Lng,
			tm.Lat,
			tm.City,
			tm.State,
			tm.Country,
			tm.CreatedAt.UTC(),
		)
		if err != nil {
			if pe, ok := postgres.AsPgError(err); ok && pe.Code == postgres.UniqueViolationCode {
				return teamrepo.ErrAlreadyExists
			}
			return err
		}
		if err := syncPrincipals(ctx, tx, "team_members", tm.ID, tm.Members); err != nil {
			return err
		}
		return syncPrincipals(ctx, tx, "team_leaders", tm.ID, tm.Leaders)
	})
}

func (r *Repo) Update(ctx context.Context, tm teamrepo.Team) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}

	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE teams
			SET name = $2,
			    description = $3,
			    longitude = $4,
			    latitude = $5,
			    city = $6,
			    state = $7,
			    country = $8
			WHERE id = $1
		`,
			string(tm.ID),
			tm.Name,
			tm.Description,
			tm.Lng,
			tm.Lat,
			tm.City,
			tm.State,
			tm.Country,
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return teamrepo.ErrNotFound
		}
		if err := syncPrincipals(ctx, tx, "team_members", tm.ID, tm.Members); err != nil {
			return err
		}
		return syncPrincipals(ctx, tx, "team_leaders", tm.ID, tm.Leaders)
	})
}

func (r *Repo) Delete(ctx context.Context, id domain.TeamID) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}

	// Join tables cascade.
	tag, err := r.pool.Exec(ctx, `DELETE FROM teams WHERE id = $1`, string(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return teamrepo.ErrNotFound
	}
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.TeamID) (teamrepo.Team, error) {
	if r.pool == nil {
		return teamrepo.Team{}, errors.New("nil postgres pool")
	}

	row := r.pool.QueryRow(ctx, `
		SELECT id, name, description, longitude, latitude, city, state, country, created_at
		FROM teams
		WHERE id = $1
	`, string(id))

	tm, err := scanTeam(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return teamrepo.Team{}, teamrepo.ErrNotFound
		}
		return teamrepo.Team{}, err
	}

	if tm.Members, err = loadPrincipals(ctx, r.pool, "team_members", id); err != nil {
		return teamrepo.Team{}, err
	}
	if tm.Leaders, err = loadPrincipals(ctx, r.pool, "team_leaders", id); err != nil {
		return teamrepo.Team{}, err
	}
	return tm, nil
}

func (r *Repo) List(ctx context.Context) ([]teamrepo.Team, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, name, description, longitude, latitude, city, state, country, created_at
		FROM teams
		ORDER BY lower(name) ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []teamrepo.Team
	for rows.Next() {
		tm, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, tm)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		if out[i].Members, err = loadPrincipals(ctx, r.pool, "team_members", out[i].ID); err != nil {
			return nil, err
		}
		if out[i].Leaders, err = loadPrincipals(ctx, r.pool, "team_leaders", out[i].ID); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func scanTeam(row pgx.Row) (teamrepo.Team, error) {
	var (
		id, name, description string
		lng, lat              float64
		city, state, country  string
		createdAt             time.Time
	)
	err := row.Scan(&id, &name, &description, &lng, &lat, &city, &state, &country, &createdAt)
	if err != nil {
		return teamrepo.Team{}, err
	}
	return teamrepo.Team{
		ID:          domain.TeamID(id),
		Name:        name,
		Description: description,
		Lng:         lng,
		Lat:         lat,
		City:        city,
		State:       state,
		Country:     country,
		CreatedAt:   createdAt.UTC(),
	}, nil
}

func syncPrincipals(ctx context.Context, tx pgx.Tx, table string, teamID domain.TeamID, principals []domain.PrincipalID) error {
	if _, err := tx.Exec(ctx, `DELETE FROM `+table+` WHERE team_id = $1`, string(teamID)); err != nil {
		return err
	}
	for _, p := range principals {
		_, err := tx.Exec(ctx, `
			INSERT INTO `+table+` (team_id, principal_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, string(teamID), string(p))
		if err != nil {
			return err
		}
	}
	return nil
}

func loadPrincipals(ctx context.Context, pool *pgxpool.Pool, table string, teamID domain.TeamID) ([]domain.PrincipalID, error) {
	rows, err := pool.Query(ctx, `
		SELECT principal_id FROM `+table+` WHERE team_id = $1 ORDER BY principal_id
	`, string(teamID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.PrincipalID
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		out = append(out, domain.PrincipalID(p))
	}
	return out, rows.Err()
}
