// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"poolscout/internal/domain/entity"
)

// ListingRepository defines the operations on the listing store, which holds
// every listing the search provider returned together with its sighting history.
type ListingRepository interface {
	// FindSearchLocations lists every area the listing source is queried for.
	FindSearchLocations(ctx context.Context) ([]entity.SearchLocation, error)

	// StageListings replaces the staging table content with the given rows.
	StageListings(ctx context.Context, rows []*entity.ListingRow) (int, error)

	// InsertNewListings copies staged listings whose MLS id is not stored yet.
	InsertNewListings(ctx context.Context) (int, error)

	// RecordSightings upserts the last time each stored listing was seen in a
	// search location. Sightings for unknown MLS ids are skipped.
	RecordSightings(ctx context.Context, sightings []entity.Sighting, seenAt time.Time) (int, error)

	// DetectRemovals records listings that were seen before in one of the
	// queried locations but not during the run started at runAt.
	DetectRemovals(ctx context.Context, queried []string, runAt time.Time) (int, error)

	// DetectRelistings records removed listings that reappear under a new MLS id
	// at a matching address with a different price.
	DetectRelistings(ctx context.Context) (int, error)

	// FindNewPoolListings returns pool listings collected at or after since.
	FindNewPoolListings(ctx context.Context, since time.Time) ([]*entity.StoredListing, error)

	// FindRemovedPoolListings returns pool listings removed at or after since.
	FindRemovedPoolListings(ctx context.Context, since time.Time) ([]*entity.StoredListing, error)
}

// ListingTransactionManager runs listing store work inside one transaction.
type ListingTransactionManager interface {
	Execute(ctx context.Context, fn func(repo ListingRepository) error) error
}
