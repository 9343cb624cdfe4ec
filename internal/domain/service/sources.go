package service

import (
	"context"

	"poolscout/internal/domain/entity"

	"github.com/paulmach/orb"
)

// ListingSource fetches the current listings of one search location.
type ListingSource interface {
	FetchListings(ctx context.Context, location entity.SearchLocation) ([]entity.RawListing, error)
}

// PoolSource extracts pool features from open map data inside an area.
type PoolSource interface {
	FetchPools(ctx context.Context, area orb.MultiPolygon) ([]entity.OSMPool, error)
}
