// Package area parses the polygons that bound open-data extraction and
// splits them into map tiles.
package area

import (
	"encoding/json"
	"strings"

	domainerrors "poolscout/internal/domain/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/geojson"
)

// Parse reads a GeoJSON geometry, feature or feature collection, or a WKT
// string, and returns its polygons. Anything but polygonal input is rejected.
func Parse(input string) (orb.MultiPolygon, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, domainerrors.ErrInvalidPolygon.WithDetails("empty polygon")
	}

	var (
		geom orb.Geometry
		err  error
	)
	if strings.HasPrefix(input, "{") {
		geom, err = parseGeoJSON([]byte(input))
	} else {
		geom, err = wkt.Unmarshal(input)
	}
	if err != nil {
		return nil, domainerrors.ErrInvalidPolygon.WithDetails(err.Error())
	}

	mp := polygons(geom)
	if len(mp) == 0 {
		return nil, domainerrors.ErrInvalidPolygon.WithDetails("input contains no polygon")
	}
	if err := validate(mp); err != nil {
		return nil, err
	}

	return mp, nil
}

func parseGeoJSON(data []byte) (orb.Geometry, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, err
	}

	switch head.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, err
		}
		collection := make(orb.Collection, 0, len(fc.Features))
		for _, f := range fc.Features {
			collection = append(collection, f.Geometry)
		}

		return collection, nil
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, err
		}

		return f.Geometry, nil
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, err
		}

		return g.Geometry(), nil
	}
}

func polygons(geom orb.Geometry) orb.MultiPolygon {
	switch g := geom.(type) {
	case orb.Polygon:
		return orb.MultiPolygon{g}
	case orb.MultiPolygon:
		return g
	case orb.Bound:
		return orb.MultiPolygon{g.ToPolygon()}
	case orb.Collection:
		var mp orb.MultiPolygon
		for _, child := range g {
			mp = append(mp, polygons(child)...)
		}

		return mp
	default:
		return nil
	}
}

func validate(mp orb.MultiPolygon) error {
	for _, poly := range mp {
		if len(poly) == 0 || len(poly[0]) < 4 {
			return domainerrors.ErrInvalidPolygon.WithDetails("polygon ring needs at least four points")
		}
		for _, ring := range poly {
			for _, p := range ring {
				if p.Lat() < -90 || p.Lat() > 90 || p.Lon() < -180 || p.Lon() > 180 {
					return domainerrors.ErrInvalidPolygon.WithDetails("coordinate out of range")
				}
			}
		}
	}

	return nil
}
