package dedup

import (
	"poolscout/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

const (
	bearingSouthWest = 225.0
	bearingNorthEast = 45.0
)

// BoundingBox returns the extent of the rows with valid coordinates, pushed
// out by bufferMeters towards the south-west and north-east corners.
// The second result is false when no row has a usable position.
func BoundingBox(rows []entity.StagedAddress, bufferMeters float64) (orb.Bound, bool) {
	var base orb.Bound
	found := false
	for _, r := range rows {
		if !r.Coordinates.InRange() {
			continue
		}
		p := r.Coordinates.Point()
		if !found {
			base = p.Bound()
			found = true

			continue
		}
		base = base.Extend(p)
	}

	if !found {
		return orb.Bound{}, false
	}

	return BufferBound(base, bufferMeters), true
}

// BufferBound moves the min corner along the south-west bearing and the max
// corner along the north-east bearing.
func BufferBound(b orb.Bound, meters float64) orb.Bound {
	if meters <= 0 {
		return b
	}

	sw := geo.PointAtBearingAndDistance(b.Min, bearingSouthWest, meters)
	ne := geo.PointAtBearingAndDistance(b.Max, bearingNorthEast, meters)

	return orb.Bound{Min: sw, Max: ne}
}
