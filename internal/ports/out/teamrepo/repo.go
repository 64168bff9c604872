package teamrepo

import (
	"context"
	"time"

	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/domain"
)

// Team is the persistence shape used by the team repository.
//
// Members and Leaders are stored as plain sets of principal ids; the
// repository does not enforce Leaders ⊆ Members or any leader-count bound.
// Those invariants belong to the governance service.
type Team struct {
	ID domain.TeamID

	Name        string
	Description string
	Lng         float64
	Lat         float64
	City        string
	State       string
	Country     string

	Members []domain.PrincipalID
	Leaders []domain.PrincipalID

	CreatedAt time.Time
}

// Repository provides access to persisted teams.
//
// Update replaces the whole aggregate, member and leader sets included, as
// one atomic write. Concurrent updates resolve last-write-wins.
//
// List returns teams ordered by Name ascending (case-insensitive), ties
// broken by ID ascending.
type Repository interface {
	Create(ctx context.Context, t Team) error
	Update(ctx context.Context, t Team) error
	Delete(ctx context.Context, id domain.TeamID) error

	GetByID(ctx context.Context, id domain.TeamID) (Team, error)
	List(ctx context.Context) ([]Team, error)
}
