package area

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/maptile"
	"github.com/paulmach/orb/planar"
)

// maxZoom bounds ZoomForSize; tiles at z20 are a few dozen meters wide.
const maxZoom = 20

// ZoomForSize returns the web-mercator zoom whose tiles are closest to
// sizeDeg degrees of longitude wide.
func ZoomForSize(sizeDeg float64) maptile.Zoom {
	if sizeDeg <= 0 || sizeDeg >= 360 {
		return 0
	}

	z := math.Round(math.Log2(360 / sizeDeg))

	return maptile.Zoom(math.Min(z, maxZoom))
}

// Tiles returns the tiles at zoom that overlap the area, ordered by row then
// column.
func Tiles(mp orb.MultiPolygon, zoom maptile.Zoom) []maptile.Tile {
	bound := mp.Bound()
	minTile := maptile.At(orb.Point{bound.Min.Lon(), bound.Max.Lat()}, zoom)
	maxTile := maptile.At(orb.Point{bound.Max.Lon(), bound.Min.Lat()}, zoom)

	tiles := make([]maptile.Tile, 0)
	for y := minTile.Y; y <= maxTile.Y; y++ {
		for x := minTile.X; x <= maxTile.X; x++ {
			tile := maptile.Tile{X: x, Y: y, Z: zoom}
			if Overlaps(mp, tile.Bound()) {
				tiles = append(tiles, tile)
			}
		}
	}

	return tiles
}

// Overlaps reports whether the bound and the area share any point. It checks
// containment in both directions, which is enough for tiles much smaller
// than the area or areas much smaller than a tile.
func Overlaps(mp orb.MultiPolygon, b orb.Bound) bool {
	if !mp.Bound().Intersects(b) {
		return false
	}

	for _, corner := range []orb.Point{b.Min, b.Max, b.LeftTop(), b.RightBottom(), b.Center()} {
		if planar.MultiPolygonContains(mp, corner) {
			return true
		}
	}
	for _, poly := range mp {
		for _, ring := range poly {
			for _, p := range ring {
				if b.Contains(p) {
					return true
				}
			}
		}
	}

	return false
}

// Quadrants splits a tile into its four children.
func Quadrants(tile maptile.Tile) []maptile.Tile {
	children := tile.Children()

	return children[:]
}

// WidthMeters is the geodesic width of a bound along its southern edge.
func WidthMeters(b orb.Bound) float64 {
	return geo.Distance(b.Min, orb.Point{b.Max.Lon(), b.Min.Lat()})
}
