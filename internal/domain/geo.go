package domain

import (
	"errors"
	"math"
)

var (
	// ErrLongitudeOutOfRange indicates a longitude outside [-180, 180].
	ErrLongitudeOutOfRange = errors.New("longitude must be between -180 and 180")

	// ErrLatitudeOutOfRange indicates a latitude outside [-90, 90].
	ErrLatitudeOutOfRange = errors.New("latitude must be between -90 and 90")
)

// GeoPoint is a validated (longitude, latitude) pair.
//
// It is a value type: two GeoPoints with equal coordinates are
// interchangeable. Construct it through NewGeoPoint so an out-of-range pair
// can never circulate inside the application.
type GeoPoint struct {
	Lng float64
	Lat float64
}

// NewGeoPoint validates the coordinate pair and returns the canonical value.
// Range checking only; no geodesy. NaN and infinities fail the range check.
func NewGeoPoint(lng, lat float64) (GeoPoint, error) {
	if math.IsNaN(lng) || math.IsInf(lng, 0) || lng < -180 || lng > 180 {
		return GeoPoint{}, ErrLongitudeOutOfRange
	}
	if math.IsNaN(lat) || math.IsInf(lat, 0) || lat < -90 || lat > 90 {
		return GeoPoint{}, ErrLatitudeOutOfRange
	}
	return GeoPoint{Lng: lng, Lat: lat}, nil
}
