package address

import (
	"poolscout/internal/domain/entity"
)

// TriageResult partitions failing rows by whether paid geocoding is needed.
type TriageResult struct {
	// Critical rows have no usable coordinates and must be geocoded.
	Critical []int
	// Minor rows already have coordinates and are kept as they are.
	Minor []int
}

// NeedsGeocoding reports whether coordinates are missing or the (0,0) sentinel.
func NeedsGeocoding(c *entity.Coordinates) bool {
	return c == nil || c.IsZero()
}

// Triage splits failing indices into critical and minor. Indices outside the
// listing slice are treated as critical since nothing is known about them.
func Triage(listings []entity.Listing, failing []int) TriageResult {
	var res TriageResult
	for _, idx := range failing {
		if idx < 0 || idx >= len(listings) || NeedsGeocoding(listings[idx].Coordinates) {
			res.Critical = append(res.Critical, idx)

			continue
		}
		res.Minor = append(res.Minor, idx)
	}

	return res
}
