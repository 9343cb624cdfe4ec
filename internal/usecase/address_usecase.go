package usecase

import (
	"context"

	"poolscout/internal/domain/entity"
)

// CorrectionResult is the outcome of one correction pass over a batch.
type CorrectionResult struct {
	// Listings holds every input row except critical rows that still fail
	// validation, in input order.
	Listings []entity.Listing
	// Dropped holds the critical rows that could not be resolved.
	Dropped []entity.Listing

	Attempted int // provider calls made
	CacheHits int // critical rows answered from the cache
	Corrected int // rows changed by provider data
	Failed    int // provider calls that returned no usable result
	Skipped   int // critical rows beyond the correction cap
}

// AddressCorrector repairs critical address rows through a paid geocoder.
type AddressCorrector interface {
	// Correct geocodes the critical rows, merges what the provider returns,
	// re-validates and drops critical rows that still fail. When the provider
	// quota runs out, the partial result is returned together with an error
	// wrapping ErrQuotaExceeded.
	Correct(ctx context.Context, listings []entity.Listing, critical []int) (*CorrectionResult, error)
}
