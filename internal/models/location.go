package models

import (
	"fmt"
	"strings"
	"time"
)

// Coordinate is a point on the Earth's surface in decimal degrees
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Validate checks that the coordinate is within the valid range
func (c Coordinate) Validate() error {
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("latitude out of range: %f", c.Lat)
	}
	if c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("longitude out of range: %f", c.Lon)
	}
	return nil
}

// Location kinds
const (
	KindHome     = "home"
	KindBusiness = "business"
)

// NamedLocation is a user-configured place with a match radius.
// Exactly one location has kind "home"; it is the origin for all
// distance lookups. Business locations are matched in SortOrder.
type NamedLocation struct {
	ID           int64   `json:"id" db:"id"`
	Name         string  `json:"name" db:"name"`
	Kind         string  `json:"kind" db:"kind"`
	Lat          float64 `json:"lat" db:"lat"`
	Lon          float64 `json:"lon" db:"lon"`
	RadiusKm     float64 `json:"radius_km" db:"radius_km"`
	Address      string  `json:"address,omitempty" db:"address"`
	TravelReason string  `json:"travel_reason,omitempty" db:"travel_reason"`
	SortOrder    int     `json:"sort_order" db:"sort_order"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Center returns the location's center coordinate
func (l *NamedLocation) Center() Coordinate {
	return Coordinate{Lat: l.Lat, Lon: l.Lon}
}

// Validate checks invariants of a named location
func (l *NamedLocation) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("location name must not be empty")
	}
	if l.Kind != KindHome && l.Kind != KindBusiness {
		return fmt.Errorf("invalid location kind: %q", l.Kind)
	}
	if l.RadiusKm <= 0 {
		return fmt.Errorf("radius must be positive, got %f", l.RadiusKm)
	}
	return l.Center().Validate()
}
