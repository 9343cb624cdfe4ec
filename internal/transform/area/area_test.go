package area

import (
	"testing"

	domainerrors "poolscout/internal/domain/errors"
	"poolscout/internal/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const monctonWKT = "POLYGON((-64.8 46.0, -64.7 46.0, -64.7 46.1, -64.8 46.1, -64.8 46.0))"

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		polys int
	}{
		{name: "wkt polygon", input: monctonWKT, polys: 1},
		{
			name:  "wkt multipolygon",
			input: "MULTIPOLYGON(((-64.8 46.0, -64.7 46.0, -64.7 46.1, -64.8 46.0)),((-63 45, -62.9 45, -62.9 45.1, -63 45)))",
			polys: 2,
		},
		{
			name:  "geojson geometry",
			input: `{"type":"Polygon","coordinates":[[[-64.8,46.0],[-64.7,46.0],[-64.7,46.1],[-64.8,46.1],[-64.8,46.0]]]}`,
			polys: 1,
		},
		{
			name:  "geojson feature",
			input: `{"type":"Feature","properties":{},"geometry":{"type":"Polygon","coordinates":[[[-64.8,46.0],[-64.7,46.0],[-64.7,46.1],[-64.8,46.0]]]}}`,
			polys: 1,
		},
		{
			name: "geojson feature collection",
			input: `{"type":"FeatureCollection","features":[` +
				`{"type":"Feature","properties":{},"geometry":{"type":"Polygon","coordinates":[[[-64.8,46.0],[-64.7,46.0],[-64.7,46.1],[-64.8,46.0]]]}},` +
				`{"type":"Feature","properties":{},"geometry":{"type":"Point","coordinates":[-64.75,46.05]}}]}`,
			polys: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mp, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Len(t, mp, tt.polys)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: "  "},
		{name: "garbage", input: "not a polygon"},
		{name: "point only", input: "POINT(-64.8 46.0)"},
		{name: "broken json", input: `{"type":"Polygon","coordinates":`},
		{name: "out of range", input: "POLYGON((-200 46.0, -64.7 46.0, -64.7 46.1, -200 46.0))"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mp, err := Parse(tt.input)
			require.Error(t, err)
			assert.Nil(t, mp)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidPolygon))
		})
	}
}

func TestZoomForSize(t *testing.T) {
	assert.Equal(t, maptile.Zoom(14), ZoomForSize(0.02))
	assert.Equal(t, maptile.Zoom(0), ZoomForSize(0))
	assert.Equal(t, maptile.Zoom(maxZoom), ZoomForSize(1e-9))
}

func TestTiles_CoverPolygon(t *testing.T) {
	mp, err := Parse(monctonWKT)
	require.NoError(t, err)

	tiles := Tiles(mp, 14)
	require.NotEmpty(t, tiles)

	covered := orb.Bound{Min: tiles[0].Bound().Min, Max: tiles[0].Bound().Max}
	for _, tile := range tiles {
		assert.True(t, Overlaps(mp, tile.Bound()))
		covered = covered.Union(tile.Bound())
	}
	assert.True(t, covered.Contains(mp.Bound().Min))
	assert.True(t, covered.Contains(mp.Bound().Max))
}

func TestTiles_SkipTilesOutsideTriangle(t *testing.T) {
	triangle := orb.MultiPolygon{{{{-64.8, 46.0}, {-64.6, 46.0}, {-64.8, 46.2}, {-64.8, 46.0}}}}
	square := orb.MultiPolygon{triangle.Bound().ToPolygon()}

	assert.Less(t, len(Tiles(triangle, 14)), len(Tiles(square, 14)))
}

func TestQuadrants(t *testing.T) {
	tile := maptile.At(orb.Point{-64.75, 46.05}, 14)
	children := Quadrants(tile)
	require.Len(t, children, 4)
	for _, c := range children {
		assert.Equal(t, maptile.Zoom(15), c.Z)
		assert.True(t, tile.Bound().Contains(c.Bound().Center()))
	}
}

func TestWidthMeters(t *testing.T) {
	b := orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{0.01, 0.01}}
	assert.InDelta(t, 1113, WidthMeters(b), 5)
}
