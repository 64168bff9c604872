// Package areas implements the adopted-area lifecycle: owner-scoped
// create/update/delete plus the public active layer.
package areas

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/domain"
	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/ports/out/arearepo"
	clockport "github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/ports/out/clock"
)

const (
	maxNameLen = 100
	maxNoteLen = 500
)

type Service struct {
	repo arearepo.Repository
	clk  clockport.Clock

	newAreaID func() domain.AreaID
}

func NewService(repo arearepo.Repository, clk clockport.Clock) *Service {
	return &Service{
		repo: repo,
		clk:  clk,
		newAreaID: func() domain.AreaID {
			return domain.AreaID(uuid.NewString())
		},
	}
}

// Create validates the full field set and persists a new area owned by actor.
// Validation happens entirely before the single repository write, so a
// rejected payload leaves storage untouched.
func (s *Service) Create(ctx context.Context, actor domain.PrincipalID, in AreaInput) (domain.AdoptedArea, error) {
	v, aerr := s.validate(in)
	if aerr != nil {
		return domain.AdoptedArea{}, aerr
	}

	now := s.clk.Now()
	rec := arearepo.Area{
		ID:           s.newAreaID(),
		Owner:        actor,
		AreaName:     v.areaName,
		AdopteeName:  v.adopteeName,
		Email:        v.email,
		AdoptionType: v.adoptionType,
		EndDate:      v.endDate,
		IsActive:     true,
		Note:         v.note,
		Lng:          v.location.Lng,
		Lat:          v.location.Lat,
		City:         v.city,
		State:        v.state,
		Country:      v.country,
		CreatedAt:    now,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return domain.AdoptedArea{}, err
	}
	return toDomain(rec), nil
}

// ListActivePublic returns every active area projected to its public fields.
// Unauthenticated by design; the owner's identity never leaves this layer.
func (s *Service) ListActivePublic(ctx context.Context) ([]PublicArea, error) {
	recs, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]PublicArea, 0, len(recs))
	for _, rec := range recs {
		out = append(out, PublicArea{
			ID:          string(rec.ID),
			AreaName:    rec.AreaName,
			AdopteeName: rec.AdopteeName,
			Email:       rec.Email,
			Lng:         rec.Lng,
			Lat:         rec.Lat,
			City:        rec.City,
			State:       rec.State,
			Country:     rec.Country,
			Note:        rec.Note,
		})
	}
	return out, nil
}

// ListMine returns the actor's areas, deactivated ones included.
func (s *Service) ListMine(ctx context.Context, actor domain.PrincipalID) ([]domain.AdoptedArea, error) {
	recs, err := s.repo.ListByOwner(ctx, actor)
	if err != nil {
		return nil, err
	}
	out := make([]domain.AdoptedArea, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toDomain(rec))
	}
	return out, nil
}

// Update replaces every editable field of an area the actor owns.
// A record that exists but belongs to someone else reports NOT_FOUND,
// indistinguishable from a missing id.
func (s *Service) Update(ctx context.Context, actor domain.PrincipalID, id domain.AreaID, in UpdateAreaInput) (domain.AdoptedArea, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, arearepo.ErrNotFound) {
			return domain.AdoptedArea{}, errNotFound()
		}
		return domain.AdoptedArea{}, err
	}
	if rec.Owner != actor {
		return domain.AdoptedArea{}, errNotFound()
	}

	v, aerr := s.validate(in.AreaInput)
	if aerr != nil {
		return domain.AdoptedArea{}, aerr
	}

	// Full overwrite; only identity, ownership and creation time survive.
	rec.AreaName = v.areaName
	rec.AdopteeName = v.adopteeName
	rec.Email = v.email
	rec.AdoptionType = v.adoptionType
	rec.EndDate = v.endDate
	rec.IsActive = in.IsActive
	rec.Note = v.note
	rec.Lng = v.location.Lng
	rec.Lat = v.location.Lat
	rec.City = v.city
	rec.State = v.state
	rec.Country = v.country

	if err := s.repo.Update(ctx, rec); err != nil {
		return domain.AdoptedArea{}, err
	}
	return toDomain(rec), nil
}

// Delete permanently removes an area the actor owns. Distinct from
// deactivation: the record is gone, not hidden.
func (s *Service) Delete(ctx context.Context, actor domain.PrincipalID, id domain.AreaID) error {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, arearepo.ErrNotFound) {
			return errNotFound()
		}
		return err
	}
	if rec.Owner != actor {
		return errNotFound()
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, arearepo.ErrNotFound) {
			return errNotFound()
		}
		return err
	}
	return nil
}

type validatedArea struct {
	areaName     string
	adopteeName  string
	email        string
	adoptionType domain.AdoptionType
	endDate      *time.Time
	note         string
	location     domain.GeoPoint
	city         string
	state        string
	country      string
}

func (s *Service) validate(in AreaInput) (validatedArea, *Error) {
	var v validatedArea

	v.areaName = domain.NormalizeHumanName(in.AreaName)
	if v.areaName == "" {
		return v, validationError("area_name", "must be non-empty")
	}
	if runeLen(v.areaName) > maxNameLen {
		return v, validationError("area_name", "must be at most 100 characters")
	}

	v.adopteeName = domain.NormalizeHumanName(in.AdopteeName)
	if v.adopteeName == "" {
		return v, validationError("adoptee_name", "must be non-empty")
	}
	if runeLen(v.adopteeName) > maxNameLen {
		return v, validationError("adoptee_name", "must be at most 100 characters")
	}

	v.email = strings.TrimSpace(in.Email)
	if err := validateEmail(v.email); err != nil {
		return v, validationError("email", err.Error())
	}

	v.adoptionType = domain.AdoptionType(in.AdoptionType)
	if !v.adoptionType.Valid() {
		return v, validationError("adoption_type", `must be "indefinite" or "temporary"`)
	}
	switch v.adoptionType {
	case domain.AdoptionTemporary:
		if in.EndDate == nil {
			return v, validationError("end_date", "required for temporary adoptions")
		}
		end := dateOnly(*in.EndDate)
		if !end.After(dateOnly(s.clk.Now())) {
			return v, validationError("end_date", "must be in the future")
		}
		v.endDate = &end
	case domain.AdoptionIndefinite:
		if in.EndDate != nil {
			return v, validationError("end_date", "must be absent for indefinite adoptions")
		}
	}

	v.note = strings.TrimSpace(in.Note)
	if runeLen(v.note) > maxNoteLen {
		return v, validationError("note", "must be at most 500 characters")
	}

	if in.Lng == nil {
		return v, validationError("lng", "must be present")
	}
	if in.Lat == nil {
		return v, validationError("lat", "must be present")
	}
	loc, err := domain.NewGeoPoint(*in.Lng, *in.Lat)
	if err != nil {
		return v, validationError("location", err.Error())
	}
	v.location = loc

	v.city = domain.NormalizeHumanName(in.City)
	v.state = domain.NormalizeHumanName(in.State)
	v.country = domain.NormalizeHumanName(in.Country)
	for _, f := range []struct {
		name string
		val  string
	}{{"city", v.city}, {"state", v.state}, {"country", v.country}} {
		if f.val == "" {
			return v, validationError(f.name, "must be non-empty")
		}
		if runeLen(f.val) > maxNameLen {
			return v, validationError(f.name, "must be at most 100 characters")
		}
	}

	return v, nil
}

func validateEmail(email string) error {
	if email == "" {
		return errors.New("must be non-empty")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return err
	}
	// Ensure no "Name <email@x>" format sneaks in.
	if addr.Address != email {
		return errors.New("must be a bare email address")
	}
	return nil
}

func runeLen(s string) int { return len([]rune(s)) }

// dateOnly truncates t to UTC midnight; end dates compare day-granular.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func toDomain(rec arearepo.Area) domain.AdoptedArea {
	out := domain.AdoptedArea{
		ID:           rec.ID,
		Owner:        rec.Owner,
		AreaName:     rec.AreaName,
		AdopteeName:  rec.AdopteeName,
		Email:        rec.Email,
		AdoptionType: rec.AdoptionType,
		IsActive:     rec.IsActive,
		Note:         rec.Note,
		Location:     domain.GeoPoint{Lng: rec.Lng, Lat: rec.Lat},
		City:         rec.City,
		State:        rec.State,
		Country:      rec.Country,
		CreatedAt:    rec.CreatedAt,
	}
	if rec.EndDate != nil {
		d := *rec.EndDate
		out.EndDate = &d
	}
	return out
}
