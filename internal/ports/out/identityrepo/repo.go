package identityrepo

import (
	"context"
	"time"

	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/domain"
)

// Identity is the persistence shape used by the identity repository.
// Email is stored in canonical (lowercased) form.
type Identity struct {
	ID       domain.PrincipalID
	Email    string
	Username string

	CreatedAt time.Time
}

// Repository provides access to persisted identities.
//
// The core only reads and provisions identity records; credential material
// (password hashes, reset tokens) lives entirely in the authentication
// subsystem and never crosses this interface.
type Repository interface {
	Create(ctx context.Context, id Identity) error

	GetByID(ctx context.Context, id domain.PrincipalID) (Identity, error)

	// GetByEmail matches case-insensitively; implementations may assume the
	// stored form is already lowercased.
	GetByEmail(ctx context.Context, email string) (Identity, error)
}
