// Package session resolves opaque session tokens to acting identities.
package session

import (
	"context"
	"errors"
	"strings"

	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/domain"
	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/ports/out/identityrepo"
	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/ports/out/sessionstore"
)

// ErrUnauthenticated is the only error Resolve returns. Missing token,
// unknown token, expired session, principal gone, storage failure — all of
// it collapses here so callers cannot probe session-store internals.
var ErrUnauthenticated = errors.New("unauthenticated")

// Resolver maps an opaque session token to the Identity it was issued for.
// Pure lookup; it never creates, renews, or deletes sessions.
type Resolver struct {
	sessions   sessionstore.Store
	identities identityrepo.Repository
}

func NewResolver(sessions sessionstore.Store, identities identityrepo.Repository) *Resolver {
	return &Resolver{sessions: sessions, identities: identities}
}

// Resolve returns the acting identity for token, or ErrUnauthenticated.
func (r *Resolver) Resolve(ctx context.Context, token string) (domain.Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.Identity{}, ErrUnauthenticated
	}

	principal, err := r.sessions.Lookup(ctx, token)
	if err != nil {
		return domain.Identity{}, ErrUnauthenticated
	}

	rec, err := r.identities.GetByID(ctx, principal)
	if err != nil {
		return domain.Identity{}, ErrUnauthenticated
	}

	return domain.Identity{
		ID:        rec.ID,
		Email:     rec.Email,
		Username:  rec.Username,
		CreatedAt: rec.CreatedAt,
	}, nil
}
