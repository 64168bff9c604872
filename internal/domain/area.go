package domain

import "time"

// AdoptionType distinguishes open-ended adoptions from ones with an end date.
type AdoptionType string

const (
	AdoptionIndefinite AdoptionType = "indefinite"
	AdoptionTemporary  AdoptionType = "temporary"
)

// Valid reports whether t is a known adoption type.
func (t AdoptionType) Valid() bool {
	return t == AdoptionIndefinite || t == AdoptionTemporary
}

// AdoptedArea is a coastal cleanup site claimed by a principal for
// stewardship.
//
// Invariants (enforced by the areas service before any write):
//   - AdoptionType == AdoptionTemporary  => EndDate != nil
//   - AdoptionType == AdoptionIndefinite => EndDate == nil
type AdoptedArea struct {
	ID    AreaID
	Owner PrincipalID

	AreaName     string
	AdopteeName  string
	Email        string
	AdoptionType AdoptionType
	// EndDate has date-only semantics at the edges; stored as UTC midnight.
	EndDate  *time.Time
	IsActive bool
	Note     string
	Location GeoPoint
	City     string
	State    string
	Country  string

	CreatedAt time.Time
}
