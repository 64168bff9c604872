// Package teams implements team governance: membership, leadership and the
// leader-quorum invariants.
//
// Invariants held here, not in storage:
//   - a team keeps 1..5 leaders from creation onward
//   - leadership is granted only to current members
//   - removing membership removes leadership with it
package teams

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/domain"
	clockport "github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/ports/out/clock"
	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/ports/out/teamrepo"
)

const (
	maxLeaders = 5

	maxNameLen        = 100
	maxDescriptionLen = 500
)

type Service struct {
	repo teamrepo.Repository
	clk  clockport.Clock

	newTeamID func() domain.TeamID
}

func NewService(repo teamrepo.Repository, clk clockport.Clock) *Service {
	return &Service{
		repo: repo,
		clk:  clk,
		newTeamID: func() domain.TeamID {
			return domain.TeamID(uuid.NewString())
		},
	}
}

// CreateTeam persists a new team with the actor as its first member and
// leader, so the leader quorum holds from the first write.
func (s *Service) CreateTeam(ctx context.Context, actor domain.PrincipalID, in TeamInput) (domain.Team, error) {
	v, aerr := s.validate(in)
	if aerr != nil {
		return domain.Team{}, aerr
	}

	rec := teamrepo.Team{
		ID:          s.newTeamID(),
		Name:        v.name,
		Description: v.description,
		Lng:         v.headquarters.Lng,
		Lat:         v.headquarters.Lat,
		City:        v.city,
		State:       v.state,
		Country:     v.country,
		Members:     []domain.PrincipalID{actor},
		Leaders:     []domain.PrincipalID{actor},
		CreatedAt:   s.clk.Now(),
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return domain.Team{}, err
	}
	return toDomain(rec), nil
}

// GetTeam is a public read.
func (s *Service) GetTeam(ctx context.Context, id domain.TeamID) (domain.Team, error) {
	rec, err := s.load(ctx, id)
	if err != nil {
		return domain.Team{}, err
	}
	return toDomain(rec), nil
}

// ListTeams is a public read.
func (s *Service) ListTeams(ctx context.Context) ([]domain.Team, error) {
	recs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Team, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toDomain(rec))
	}
	return out, nil
}

// UpdateTeam replaces name/description/headquarters wholesale. Leaders only.
func (s *Service) UpdateTeam(ctx context.Context, actor domain.PrincipalID, id domain.TeamID, in TeamInput) (domain.Team, error) {
	rec, err := s.load(ctx, id)
	if err != nil {
		return domain.Team{}, err
	}
	if !containsPrincipal(rec.Leaders, actor) {
		return domain.Team{}, errForbidden()
	}

	v, aerr := s.validate(in)
	if aerr != nil {
		return domain.Team{}, aerr
	}

	rec.Name = v.name
	rec.Description = v.description
	rec.Lng = v.headquarters.Lng
	rec.Lat = v.headquarters.Lat
	rec.City = v.city
	rec.State = v.state
	rec.Country = v.country

	if err := s.repo.Update(ctx, rec); err != nil {
		return domain.Team{}, err
	}
	return toDomain(rec), nil
}

// DeleteTeam removes the team outright. Leaders only.
func (s *Service) DeleteTeam(ctx context.Context, actor domain.PrincipalID, id domain.TeamID) error {
	rec, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if !containsPrincipal(rec.Leaders, actor) {
		return errForbidden()
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, teamrepo.ErrNotFound) {
			return errNotFound()
		}
		return err
	}
	return nil
}

// JoinTeam adds the actor to the member set. Re-joining is a no-op success.
func (s *Service) JoinTeam(ctx context.Context, actor domain.PrincipalID, id domain.TeamID) (domain.Team, error) {
	rec, err := s.load(ctx, id)
	if err != nil {
		return domain.Team{}, err
	}
	if containsPrincipal(rec.Members, actor) {
		return toDomain(rec), nil
	}
	rec.Members = append(rec.Members, actor)
	if err := s.repo.Update(ctx, rec); err != nil {
		return domain.Team{}, err
	}
	return toDomain(rec), nil
}

// LeaveTeam removes the actor from both the member and leader sets: a
// non-member cannot remain a leader. A sole leader may not leave — that
// would orphan the team's leadership — and must promote another member (or
// delete the team) first. Leaving a team the actor is not a member of is a
// no-op success, mirroring JoinTeam's idempotence.
func (s *Service) LeaveTeam(ctx context.Context, actor domain.PrincipalID, id domain.TeamID) (domain.Team, error) {
	rec, err := s.load(ctx, id)
	if err != nil {
		return domain.Team{}, err
	}
	if !containsPrincipal(rec.Members, actor) {
		return toDomain(rec), nil
	}
	if containsPrincipal(rec.Leaders, actor) && len(rec.Leaders) == 1 {
		return domain.Team{}, errLastLeader()
	}

	rec.Members = removePrincipal(rec.Members, actor)
	rec.Leaders = removePrincipal(rec.Leaders, actor)
	if err := s.repo.Update(ctx, rec); err != nil {
		return domain.Team{}, err
	}
	return toDomain(rec), nil
}

// AddLeader promotes a current member to leader. Leaders only; the leader
// set is capped at 5. Promoting someone who already leads is a no-op
// success.
func (s *Service) AddLeader(ctx context.Context, requester domain.PrincipalID, id domain.TeamID, target domain.PrincipalID) (domain.Team, error) {
	rec, err := s.load(ctx, id)
	if err != nil {
		return domain.Team{}, err
	}
	if !containsPrincipal(rec.Leaders, requester) {
		return domain.Team{}, errForbidden()
	}
	if containsPrincipal(rec.Leaders, target) {
		return toDomain(rec), nil
	}
	if len(rec.Leaders) >= maxLeaders {
		return domain.Team{}, errLeaderLimit()
	}
	if !containsPrincipal(rec.Members, target) {
		return domain.Team{}, errNotAMember()
	}

	rec.Leaders = append(rec.Leaders, target)
	if err := s.repo.Update(ctx, rec); err != nil {
		return domain.Team{}, err
	}
	return toDomain(rec), nil
}

// RemoveLeader demotes a leader back to plain member. Leaders only; the
// last leader is protected.
func (s *Service) RemoveLeader(ctx context.Context, requester domain.PrincipalID, id domain.TeamID, target domain.PrincipalID) (domain.Team, error) {
	rec, err := s.load(ctx, id)
	if err != nil {
		return domain.Team{}, err
	}
	if !containsPrincipal(rec.Leaders, requester) {
		return domain.Team{}, errForbidden()
	}
	if !containsPrincipal(rec.Leaders, target) {
		return domain.Team{}, errNotALeader()
	}
	if len(rec.Leaders) <= 1 {
		return domain.Team{}, errLastLeader()
	}

	// Leadership only; membership stays.
	rec.Leaders = removePrincipal(rec.Leaders, target)
	if err := s.repo.Update(ctx, rec); err != nil {
		return domain.Team{}, err
	}
	return toDomain(rec), nil
}

func (s *Service) load(ctx context.Context, id domain.TeamID) (teamrepo.Team, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, teamrepo.ErrNotFound) {
			return teamrepo.Team{}, errNotFound()
		}
		return teamrepo.Team{}, err
	}
	return rec, nil
}

type validatedTeam struct {
	name         string
	description  string
	headquarters domain.GeoPoint
	city         string
	state        string
	country      string
}

func (s *Service) validate(in TeamInput) (validatedTeam, *Error) {
	var v validatedTeam

	v.name = domain.NormalizeHumanName(in.Name)
	if v.name == "" {
		return v, validationError("name", "must be non-empty")
	}
	if runeLen(v.name) > maxNameLen {
		return v, validationError("name", "must be at most 100 characters")
	}

	v.description = strings.TrimSpace(in.Description)
	if runeLen(v.description) > maxDescriptionLen {
		return v, validationError("description", "must be at most 500 characters")
	}

	if in.Lng == nil {
		return v, validationError("lng", "must be present")
	}
	if in.Lat == nil {
		return v, validationError("lat", "must be present")
	}
	hq, err := domain.NewGeoPoint(*in.Lng, *in.Lat)
	if err != nil {
		return v, validationError("headquarters", err.Error())
	}
	v.headquarters = hq

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

func runeLen(s string) int { return len([]rune(s)) }

func containsPrincipal(ps []domain.PrincipalID, p domain.PrincipalID) bool {
	for _, q := range ps {
		if q == p {
			return true
		}
	}
	return false
}

func removePrincipal(ps []domain.PrincipalID, p domain.PrincipalID) []domain.PrincipalID {
	out := ps[:0]
	for _, q := range ps {
		if q != p {
			out = append(out, q)
		}
	}
	return out
}

func toDomain(rec teamrepo.Team) domain.Team {
	return domain.Team{
		ID:           rec.ID,
		Name:         rec.Name,
		Description:  rec.Description,
		Headquarters: domain.GeoPoint{Lng: rec.Lng, Lat: rec.Lat},
		City:         rec.City,
		State:        rec.State,
		Country:      rec.Country,
		Members:      append([]domain.PrincipalID(nil), rec.Members...),
		Leaders:      append([]domain.PrincipalID(nil), rec.Leaders...),
		CreatedAt:    rec.CreatedAt,
	}
}
