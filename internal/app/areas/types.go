package areas

import "time"

// AreaInput carries the full editable field set of an adopted area.
//
// Lat/Lng are pointers so "component missing" is distinguishable from zero
// (the equator and the prime meridian are valid coordinates). EndDate has
// date-only semantics; nil means absent.
type AreaInput struct {
	AreaName     string
	AdopteeName  string
	Email        string
	AdoptionType string
	EndDate      *time.Time
	Note         string
	Lng          *float64
	Lat          *float64
	City         string
	State        string
	Country      string
}

// UpdateAreaInput is the Update payload. Update has full-replace semantics:
// every editable field must be supplied again, including IsActive (setting it
// false is how an owner deactivates, true is how they reactivate).
type UpdateAreaInput struct {
	AreaInput
	IsActive bool
}

// PublicArea is the projection served on the public active layer.
// The owner's identity is deliberately excluded.
type PublicArea struct {
	ID          string
	AreaName    string
	AdopteeName string
	Email       string
	Lng         float64
	Lat         float64
	City        string
	State       string
	Country     string
	Note        string
}
