package repository

import (
	"context"

	"poolscout/internal/domain/entity"
	"poolscout/internal/errors"

	"github.com/paulmach/orb"
)

// Domain-specific errors for master store persistence.
var (
	// ErrPropertyNotFound is returned when no property satisfies a lookup.
	ErrPropertyNotFound = errors.New("property not found")
	// ErrDuplicateKey is returned when a surrogate key collides with a stored one.
	ErrDuplicateKey = errors.New("duplicate key")
)

// PropertyRepository defines lookups and writes on master-store properties.
type PropertyRepository interface {
	// FindPropertiesByPostalCode returns candidates sharing a canonical postal code.
	FindPropertiesByPostalCode(ctx context.Context, postalCode string) ([]*entity.Property, error)

	// FindNearestProperty returns the closest property within radiusMeters and
	// its distance. Returns ErrPropertyNotFound when none is in range.
	FindNearestProperty(ctx context.Context, at entity.Coordinates, radiusMeters float64) (*entity.Property, float64, error)

	// FindPropertiesWithinBound returns properties whose geometry intersects the bound.
	FindPropertiesWithinBound(ctx context.Context, bound orb.Bound) ([]*entity.Property, error)

	// InsertProperties persists new properties and fills in their generated ids.
	// A surrogate key collision returns ErrDuplicateKey.
	InsertProperties(ctx context.Context, properties []*entity.Property) error

	// UpdatePropertyLocation overwrites the stored position of a property.
	UpdatePropertyLocation(ctx context.Context, propertyID string, at entity.Coordinates) error
}

// PoolRepository defines writes on master-store pools.
type PoolRepository interface {
	// InsertPools persists pools. Pools whose source pool id is already stored
	// are skipped; the number actually inserted is returned.
	InsertPools(ctx context.Context, pools []*entity.Pool) (int, error)

	// HasPool reports whether the property already owns a pool.
	HasPool(ctx context.Context, propertyID string) (bool, error)
}

// MasterListingRepository defines writes on listings linked to master properties.
type MasterListingRepository interface {
	// UpsertListings inserts listings or refreshes the mutable fields of stored ones.
	UpsertListings(ctx context.Context, listings []*entity.MasterListing) (int, error)

	// MarkListingsRemoved flags listings as removed, skipping those already removed.
	MarkListingsRemoved(ctx context.Context, removals []entity.ListingRemoval) (entity.RemovalUpdateResult, error)
}
