package teamrepo

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/domain"
	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/ports/out/teamrepo"
)

// Repo is an in-memory implementation of teamrepo.Repository.
// It is safe for concurrent use. Update replaces the whole aggregate under
// one lock, which gives the per-record atomicity the contract asks for.
type Repo struct {
	mu sync.RWMutex

	byID map[domain.TeamID]teamrepo.Team
}

func NewRepo() *Repo {
	return &Repo{byID: make(map[domain.TeamID]teamrepo.Team)}
}

func (r *Repo) Create(ctx context.Context, t teamrepo.Team) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[t.ID]; ok {
		return teamrepo.ErrAlreadyExists
	}
	r.byID[t.ID] = cloneTeam(t)
	return nil
}

func (r *Repo) Update(ctx context.Context, t teamrepo.Team) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[t.ID]; !ok {
		return teamrepo.ErrNotFound
	}
	r.byID[t.ID] = cloneTeam(t)
	return nil
}

func (r *Repo) Delete(ctx context.Context, id domain.TeamID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return teamrepo.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.TeamID) (teamrepo.Team, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byID[id]
	if !ok {
		return teamrepo.Team{}, teamrepo.ErrNotFound
	}
	return cloneTeam(t), nil
}

func (r *Repo) List(ctx context.Context) ([]teamrepo.Team, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]teamrepo.Team, 0, len(r.byID))
	for _, t := range r.byID {
		out = append(out, cloneTeam(t))
	}
	sortTeamsByName(out)
	return out, nil
}

func cloneTeam(t teamrepo.Team) teamrepo.Team {
	out := t
	out.Members = append([]domain.PrincipalID(nil), t.Members...)
	out.Leaders = append([]domain.PrincipalID(nil), t.Leaders...)
	return out
}

func sortTeamsByName(ts []teamrepo.Team) {
	sort.Slice(ts, func(i, j int) bool {
		ni := strings.ToLower(ts[i].Name)
		nj := strings.ToLower(ts[j].Name)
		if ni == nj {
			return ts[i].ID < ts[j].ID
		}
		return ni < nj
	})
}

var _ teamrepo.Repository = (*Repo)(nil)
