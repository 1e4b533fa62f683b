package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

const (
	// LatitudeMin is the minimum valid latitude in decimal degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the maximum valid latitude in decimal degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the minimum valid longitude in decimal degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the maximum valid longitude in decimal degrees.
	LongitudeMax = 180.0
)

// ErrLocationIsNotConstructed is returned when attempting to use an improperly initialized Location.
// Locations must be created using the NewLocation constructor to ensure validity.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// Location represents a geographic point in decimal degrees with validated coordinates.
// It is an immutable value object used for order installation addresses and the
// site surveys and installation activities derived from them.
//
// The zero value of Location is invalid and will fail validation - use the
// constructor to create instances.
//
// Example:
//
//	loc, err := kernel.NewLocation(41.0082, 28.9784)
//	if err != nil {
//	    // Handle validation error
//	}
type Location struct {
	latitude  float64
	longitude float64

	guard guard.ConstructorGuard
}

// NewLocation creates a Location with the given coordinates in decimal degrees.
// Latitude must lie within [-90, 90] and longitude within [-180, 180].
func NewLocation(latitude, longitude float64) (Location, error) {
	if latitude < LatitudeMin || latitude > LatitudeMax {
		return Location{}, errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}

	if longitude < LongitudeMin || longitude > LongitudeMax {
		return Location{}, errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}

	return Location{
		latitude:  latitude,
		longitude: longitude,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Latitude returns the latitude in decimal degrees.
func (l Location) Latitude() float64 {
	return l.latitude
}

// Longitude returns the longitude in decimal degrees.
func (l Location) Longitude() float64 {
	return l.longitude
}

// IsEqual compares two locations by their coordinates.
func (l Location) IsEqual(other Location) bool {
	return l.latitude == other.latitude && l.longitude == other.longitude
}

// String returns a "lat,long" representation suitable for logging.
func (l Location) String() string {
	return fmt.Sprintf("%.6f,%.6f", l.latitude, l.longitude)
}

// Validate ensures the Location was created via NewLocation.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}
