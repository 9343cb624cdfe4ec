package address

import (
	"strings"

	"poolscout/internal/domain/entity"
)

// Merge applies a geocoding result to a listing without erasing anything the
// provider did not supply. Coordinates are replaced only when the result has
// both of them. It reports whether any field changed.
func Merge(l entity.Listing, res *entity.GeocodeResult) (entity.Listing, bool) {
	if res == nil {
		return l, false
	}

	comp := FillMissing(res.Components, res.FormattedAddress)
	before := l

	a := &l.Address
	set(&a.AddressNumber, comp.AddressNumber)
	if street := strings.TrimSpace(comp.StreetName); street != "" {
		if a.AddressNumber != "" {
			street = a.AddressNumber + " " + street
		}
		a.StreetAddress = street
	}
	set(&a.City, comp.City)
	if comp.PostalCode != "" {
		a.PostalCode = CanonicalPostalCode(comp.PostalCode)
	}
	if comp.ProvinceState != "" {
		a.ProvinceState = MatchProvince(comp.ProvinceState)
	}

	if res.Coordinates != nil {
		c := *res.Coordinates
		l.Coordinates = &c
	}

	return l, l.Address != before.Address || !sameCoordinates(l.Coordinates, before.Coordinates)
}

func set(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

func sameCoordinates(a, b *entity.Coordinates) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}
