// Package arearepo is the Postgres implementation of the adopted-area
// repository port.
package arearepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/adapters/postgres"
	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/domain"
	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/ports/out/arearepo"
)

const areaColumns = `
	id, owner_id, area_name, adoptee_name, email, adoption_type,
	end_date, is_active, note, longitude, latitude, city, state, country,
	created_at
`

// Repo is a Postgres implementation of arearepo.Repository.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) Create(ctx context.Context, a arearepo.Area) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO adopted_areas (`+areaColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	`,
		string(a.ID),
		string(a.Owner),
		a.AreaName,
		a.AdopteeName,
		a.Email,
		string(a.AdoptionType),
		datePtr(a.EndDate),
		a.IsActive,
		a.Note,
		a.Lng,
		a.Lat,
		a.City,
		a.State,
		a.Country,
		a.CreatedAt.UTC(),
	)
	if err != nil {
		if pe, ok := postgres.AsPgError(err); ok && pe.Code == postgres.UniqueViolationCode {
			return arearepo.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *Repo) Update(ctx context.Context, a arearepo.Area) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE adopted_areas
		SET owner_id = $2,
		    area_name = $3,
		    adoptee_name = $4,
		    email = $5,
		    adoption_type = $6,
		    end_date = $7,
		    is_active = $8,
		    note = $9,
		    longitude = $10,
		    latitude = $11,
		    city = $12,
		    state = $13,
		    country = $14,
		    created_at = $15
		WHERE id = $1
	`,
		string(a.ID),
		string(a.Owner),
		a.AreaName,
		a.AdopteeName,
		a.Email,
		string(a.AdoptionType),
		datePtr(a.EndDate),
		a.IsActive,
		a.Note,
		a.Lng,
		a.Lat,
		a.City,
		a.State,
		a.Country,
		a.CreatedAt.UTC(),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return arearepo.ErrNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id domain.AreaID) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM adopted_areas WHERE id = $1`, string(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return arearepo.ErrNotFound
	}
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.AreaID) (arearepo.Area, error) {
	if r.pool == nil {
		return arearepo.Area{}, errors.New("nil postgres pool")
	}

	row := r.pool.QueryRow(ctx, `
		SELECT `+areaColumns+`
		FROM adopted_areas
		WHERE id = $1
	`, string(id))

	a, err := scanArea(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return arearepo.Area{}, arearepo.ErrNotFound
		}
		return arearepo.Area{}, err
	}
	return a, nil
}

func (r *Repo) ListActive(ctx context.Context) ([]arearepo.Area, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	return r.list(ctx, `
		SELECT `+areaColumns+`
		FROM adopted_areas
		WHERE is_active
		ORDER BY created_at DESC, id ASC
	`)
}

func (r *Repo) ListByOwner(ctx context.Context, owner domain.PrincipalID) ([]arearepo.Area, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	return r.list(ctx, `
		SELECT `+areaColumns+`
		FROM adopted_areas
		WHERE owner_id = $1
		ORDER BY created_at DESC, id ASC
	`, string(owner))
}

// DeactivateExpired is the sweep's bulk write: one UPDATE covering every
// active temporary adoption whose end date has passed.
func (r *Repo) DeactivateExpired(ctx context.Context, today time.Time) (int64, error) {
	if r.pool == nil {
		return 0, errors.New("nil postgres pool")
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE adopted_areas
		SET is_active = FALSE
		WHERE adoption_type = $1
		  AND is_active
		  AND end_date IS NOT NULL
		  AND end_date < $2
	`, string(domain.AdoptionTemporary), pgtype.Date{Time: today, Valid: true})
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repo) list(ctx context.Context, query string, args ...any) ([]arearepo.Area, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []arearepo.Area
	for rows.Next() {
		a, err := scanArea(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanArea(row pgx.Row) (arearepo.Area, error) {
	var (
		id, owner             string
		areaName, adopteeName string
		email, adoptionType   string
		endDate               pgtype.Date
		isActive              bool
		note                  string
		lng, lat              float64
		city, state, country  string
		createdAt             time.Time
	)
	err := row.Scan(
		&id, &owner, &areaName, &adopteeName, &email, &adoptionType,
		&endDate, &isActive, &note, &lng, &lat, &city, &state, &country,
		&createdAt,
	)
	if err != nil {
		return arearepo.Area{}, err
	}
	return arearepo.Area{
		ID:           domain.AreaID(id),
		Owner:        domain.PrincipalID(owner),
		AreaName:     areaName,
		AdopteeName:  adopteeName,
		Email:        email,
		AdoptionType: domain.AdoptionType(adoptionType),
		EndDate:      dateToTimePtr(endDate),
		IsActive:     isActive,
		Note:         note,
		Lng:          lng,
		Lat:          lat,
		City:         city,
		State:        state,
		Country:      country,
		CreatedAt:    createdAt.UTC(),
	}, nil
}

func datePtr(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: t.UTC(), Valid: true}
}

func dateToTimePtr(d pgtype.Date) *time.Time {
	if !d.Valid {
		return nil
	}
	u := time.Date(d.Time.Year(), d.Time.Month(), d.Time.Day(), 0, 0, 0, 0, time.UTC)
	return &u
}
