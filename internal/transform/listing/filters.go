package listing

import (
	"strings"

	"poolscout/internal/domain/entity"
)

var nonHomeCategories = []string{
	"Recreation",
	"Apartment",
	"Other",
	"Unknown",
	"Mobile Home",
	"Manufactured Home/Mobile",
	"Parking",
	"Residential Commercial Mix",
}

// IsHome reports whether a house category describes a detached-style home.
// Matching is a case-insensitive substring test.
func IsHome(category string) bool {
	c := strings.ToLower(category)
	for _, nonHome := range nonHomeCategories {
		if strings.Contains(c, strings.ToLower(nonHome)) {
			return false
		}
	}

	return true
}

// FilterHomes keeps listings whose category is a home and returns how many
// were removed.
func FilterHomes(listings []entity.Listing) ([]entity.Listing, int) {
	out := make([]entity.Listing, 0, len(listings))
	for _, l := range listings {
		if IsHome(l.HouseCategory) {
			out = append(out, l)
		}
	}

	return out, len(listings) - len(out)
}
