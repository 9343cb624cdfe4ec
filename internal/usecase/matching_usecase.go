package usecase

import (
	"context"

	"poolscout/internal/domain/entity"
)

// MatchStrategy names how a listing was tied to an existing property.
type MatchStrategy string

const (
	MatchStrategyNone                MatchStrategy = "none"
	MatchStrategyAddressExpansion    MatchStrategy = "address_expansion"
	MatchStrategyCoordinateProximity MatchStrategy = "coordinate_proximity"
)

// MatchInput is the address of a listing to reconcile.
type MatchInput struct {
	AddressNumber string
	StreetName    string
	PostalCode    string
	Municipality  string
	Coordinates   *entity.Coordinates
}

// MatchResult carries the matched property, or nil with MatchStrategyNone.
type MatchResult struct {
	Property       *entity.Property
	Strategy       MatchStrategy
	DistanceMeters float64
}

// Matched reports whether a property was found.
func (r *MatchResult) Matched() bool {
	return r != nil && r.Property != nil
}

// EntityMatcher finds the master property a listing belongs to.
type EntityMatcher interface {
	Match(ctx context.Context, in MatchInput) (*MatchResult, error)
}
