package arearepo

import (
	"context"
	"time"

	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/domain"
)

// Area is the persistence shape used by the adopted-area repository.
// It's an internal record, not an HTTP DTO.
type Area struct {
	ID    domain.AreaID
	Owner domain.PrincipalID

	AreaName     string
	AdopteeName  string
	Email        string
	AdoptionType domain.AdoptionType
	// EndDate is nil for indefinite adoptions; date-only, stored as UTC midnight.
	EndDate  *time.Time
	IsActive bool
	Note     string
	Lng      float64
	Lat      float64
	City     string
	State    string
	Country  string

	CreatedAt time.Time
}

// Repository provides access to persisted adopted areas.
//
// Result ordering expectations:
//   - List methods return results ordered by CreatedAt descending, ties broken
//     by ID ascending, to keep behavior deterministic.
//
// Atomicity expectations:
//   - Create/Update/Delete apply per-record atomically: either the full record
//     lands or none of it does.
//   - DeactivateExpired applies as one bulk write.
type Repository interface {
	Create(ctx context.Context, a Area) error
	Update(ctx context.Context, a Area) error
	Delete(ctx context.Context, id domain.AreaID) error

	GetByID(ctx context.Context, id domain.AreaID) (Area, error)

	// ListActive returns every record with IsActive set, owner included
	// (the public projection happens at the application layer).
	ListActive(ctx context.Context) ([]Area, error)

	// ListByOwner returns the owner's records, active or not.
	ListByOwner(ctx context.Context, owner domain.PrincipalID) ([]Area, error)

	// DeactivateExpired clears IsActive on every temporary adoption whose end
	// date is strictly before the given day, in one bulk operation, and
	// reports how many records changed. No other field is touched.
	DeactivateExpired(ctx context.Context, today time.Time) (int64, error)
}
