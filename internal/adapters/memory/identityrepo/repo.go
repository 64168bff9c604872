package identityrepo

import (
	"context"
	"sync"

	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/domain"
	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/ports/out/identityrepo"
)

// Repo is an in-memory implementation of identityrepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu sync.RWMutex

	byID    map[domain.PrincipalID]identityrepo.Identity
	byEmail map[string]domain.PrincipalID
}

func NewRepo() *Repo {
	return &Repo{
		byID:    make(map[domain.PrincipalID]identityrepo.Identity),
		byEmail: make(map[string]domain.PrincipalID),
	}
}

func (r *Repo) Create(ctx context.Context, id identityrepo.Identity) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id.ID]; ok {
		return identityrepo.ErrAlreadyExists
	}
	email := domain.NormalizeEmail(id.Email)
	if _, ok := r.byEmail[email]; ok {
		return identityrepo.ErrEmailAlreadyInUse
	}

	id.Email = email
	r.byID[id.ID] = id
	r.byEmail[email] = id.ID
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.PrincipalID) (identityrepo.Identity, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.byID[id]
	if !ok {
		return identityrepo.Identity{}, identityrepo.ErrNotFound
	}
	return rec, nil
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (identityrepo.Identity, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[domain.NormalizeEmail(email)]
	if !ok {
		return identityrepo.Identity{}, identityrepo.ErrNotFound
	}
	return r.byID[id], nil
}

var _ identityrepo.Repository = (*Repo)(nil)
