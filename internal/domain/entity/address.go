// Package entity contains the core business objects of the project.
package entity

import (
	"math"
	"regexp"
	"strings"

	"github.com/paulmach/orb"
)

// Coordinates is a WGS84 position.
type Coordinates struct {
	Lat float64
	Lon float64
}

// NewCoordinates returns nil unless both values are present and finite.
func NewCoordinates(lat, lon *float64) *Coordinates {
	if lat == nil || lon == nil || math.IsNaN(*lat) || math.IsNaN(*lon) {
		return nil
	}

	return &Coordinates{Lat: *lat, Lon: *lon}
}

// IsZero reports the (0,0) sentinel some listing sources emit for unknown positions.
func (c *Coordinates) IsZero() bool {
	return c != nil && c.Lat == 0 && c.Lon == 0
}

// InRange reports whether the position is a valid latitude/longitude pair.
func (c *Coordinates) InRange() bool {
	return c != nil && c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// Point converts to an orb point (lon, lat order).
func (c Coordinates) Point() orb.Point {
	return orb.Point{c.Lon, c.Lat}
}

// ParsedAddress is the structured form of a free-text listing address.
// Empty strings stand for absent values.
type ParsedAddress struct {
	AddressNumber string
	StreetAddress string // includes the leading civic number, e.g. "123 Main St"
	City          string
	ProvinceState string
	PostalCode    string // canonical form, upper-case without spaces
}

var leadingNumberPattern = regexp.MustCompile(`^\s*\d+[A-Za-z]?(-[A-Za-z0-9]+)?\s+`)

// StreetName returns the street address without its leading civic number.
func (a ParsedAddress) StreetName() string {
	return strings.TrimSpace(leadingNumberPattern.ReplaceAllString(a.StreetAddress, ""))
}

// AddressComponents is the provider-agnostic bag of fields a geocoder returns.
type AddressComponents struct {
	AddressNumber string
	StreetName    string
	City          string
	ProvinceState string
	Country       string
	PostalCode    string
}

// IsEmpty reports whether no component was supplied.
func (c AddressComponents) IsEmpty() bool {
	return c == AddressComponents{}
}

// GeocodeQuery is a structured forward-geocoding request.
type GeocodeQuery struct {
	AddressNumber string
	StreetAddress string
	City          string
	PostalCode    string
	ProvinceState string
	Country       string
}

// Key identifies identical queries for caching within a run.
func (q GeocodeQuery) Key() string {
	return strings.Join([]string{q.AddressNumber, q.StreetAddress, q.City, q.PostalCode}, "|")
}

// Text renders the query as a single free-text line, skipping empty parts.
func (q GeocodeQuery) Text() string {
	street := q.StreetAddress
	if q.AddressNumber != "" && !strings.HasPrefix(strings.TrimSpace(street), q.AddressNumber) {
		street = strings.TrimSpace(q.AddressNumber + " " + street)
	}

	parts := make([]string, 0, 5)
	for _, p := range []string{street, q.City, q.PostalCode, q.ProvinceState, q.Country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	return strings.Join(parts, ", ")
}

// GeocodeResult is a provider response reduced to what the pipeline uses.
type GeocodeResult struct {
	FormattedAddress string
	Coordinates      *Coordinates
	Components       AddressComponents
}
