// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/paulmach/orb"
)

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Latitude  float64 // The geographic latitude, [-90, 90].
	Longitude float64 // The geographic longitude, [-180, 180].
}

// Point converts the coordinates to an orb.Point (lon, lat order).
func (c Coordinates) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// Valid reports whether the coordinates lie within geographic bounds.
// Out-of-range values indicate an upstream geocoding fault and must not
// be silently clamped.
func (c Coordinates) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// Sitter is the core record for a pet sitter, fetched once per discovery
// request and never mutated by this service.
type Sitter struct {
	ID              int64       // Unique sitter identifier.
	UserID          int64       // The account that owns this sitter profile; ratings hang off it.
	Name            string      // Display name.
	ExperienceYears int         // Years of pet-sitting experience.
	Personality     string      // Free-text personality/motivation statement.
	Subscription    string      // Subscription tier name, e.g. "Basic", "Plus".
	Coordinates     Coordinates // Stored home coordinates.
	Employee        bool        // True for staff-tier employees.
	Certifications  string      // Comma-delimited certification list; empty when absent.
	CreatedAt       time.Time   // Timestamp of when this sitter was created.
	UpdatedAt       time.Time   // Timestamp of the last modification.
}
