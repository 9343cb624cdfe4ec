// Package service defines the interfaces of external collaborators the use
// cases depend on.
package service

import (
	"context"

	"poolscout/internal/domain/entity"
)

// Geocoder resolves addresses to positions and back. Implementations map
// their provider's response into the provider-agnostic entity.GeocodeResult.
//
// Errors are classified with the domain error taxonomy: ErrGeocodeNoResult
// when the provider has no match, ErrQuotaExceeded when the provider keeps
// rejecting calls for rate or quota reasons after retries, ErrGeocodeFailed
// for everything else.
type Geocoder interface {
	// ForwardGeocode resolves a structured address query.
	ForwardGeocode(ctx context.Context, query entity.GeocodeQuery) (*entity.GeocodeResult, error)

	// ReverseGeocode resolves the address closest to a position.
	ReverseGeocode(ctx context.Context, at entity.Coordinates) (*entity.GeocodeResult, error)
}

// GeocodeCache persists successful forward-geocoding results between runs.
type GeocodeCache interface {
	Load(ctx context.Context) (map[string]*entity.GeocodeResult, error)
	Save(ctx context.Context, results map[string]*entity.GeocodeResult) error
}
