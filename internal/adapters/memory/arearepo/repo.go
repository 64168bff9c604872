package arearepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/domain"
	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/ports/out/arearepo"
)

// Repo is an in-memory implementation of arearepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu sync.RWMutex

	byID map[domain.AreaID]arearepo.Area
}

func NewRepo() *Repo {
	return &Repo{byID: make(map[domain.AreaID]arearepo.Area)}
}

func (r *Repo) Create(ctx context.Context, a arearepo.Area) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[a.ID]; ok {
		return arearepo.ErrAlreadyExists
	}
	r.byID[a.ID] = cloneArea(a)
	return nil
}

func (r *Repo) Update(ctx context.Context, a arearepo.Area) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[a.ID]; !ok {
		return arearepo.ErrNotFound
	}
	r.byID[a.ID] = cloneArea(a)
	return nil
}

func (r *Repo) Delete(ctx context.Context, id domain.AreaID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return arearepo.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.AreaID) (arearepo.Area, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.byID[id]
	if !ok {
		return arearepo.Area{}, arearepo.ErrNotFound
	}
	return cloneArea(a), nil
}

func (r *Repo) ListActive(ctx context.Context) ([]arearepo.Area, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]arearepo.Area, 0, len(r.byID))
	for _, a := range r.byID {
		if !a.IsActive {
			continue
		}
		out = append(out, cloneArea(a))
	}
	sortAreasNewestFirst(out)
	return out, nil
}

func (r *Repo) ListByOwner(ctx context.Context, owner domain.PrincipalID) ([]arearepo.Area, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]arearepo.Area, 0)
	for _, a := range r.byID {
		if a.Owner != owner {
			continue
		}
		out = append(out, cloneArea(a))
	}
	sortAreasNewestFirst(out)
	return out, nil
}

func (r *Repo) DeactivateExpired(ctx context.Context, today time.Time) (int64, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for id, a := range r.byID {
		if a.AdoptionType != domain.AdoptionTemporary || !a.IsActive || a.EndDate == nil {
			continue
		}
		if a.EndDate.Before(today) {
			a.IsActive = false
			r.byID[id] = a
			n++
		}
	}
	return n, nil
}

func cloneArea(a arearepo.Area) arearepo.Area {
	out := a
	if a.EndDate != nil {
		d := *a.EndDate
		out.EndDate = &d
	}
	return out
}

func sortAreasNewestFirst(as []arearepo.Area) {
	sort.Slice(as, func(i, j int) bool {
		if as[i].CreatedAt.Equal(as[j].CreatedAt) {
			return as[i].ID < as[j].ID
		}
		return as[i].CreatedAt.After(as[j].CreatedAt)
	})
}

var _ arearepo.Repository = (*Repo)(nil)
