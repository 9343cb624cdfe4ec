// Package listing cleans raw listings and filters out non-home categories.
package listing

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"poolscout/internal/domain/entity"
	domainerrors "poolscout/internal/domain/errors"

	"github.com/shopspring/decimal"
)

const sqmToSqft = 10.7639

var (
	numberPattern   = regexp.MustCompile(`[-+]?\d*\.?\d+`)
	sizeUnitPattern = regexp.MustCompile(`([A-Za-z]+)`)
	sizeNumPattern  = regexp.MustCompile(`([\d,.]+)`)
	priceStrip      = regexp.MustCompile(`[$,\s]`)
)

// CleanResult is the output of Clean with the rows it had to drop.
type CleanResult struct {
	Listings       []entity.Listing
	DuplicateMLS   int
	MissingMLS     int
	UnparsedPrices int
}

// Clean deduplicates raw listings by MLS id, keeping the first, and coerces
// the free-text numeric fields. A non-empty batch where no row has an MLS id
// or an address is malformed.
func Clean(raw []entity.RawListing) (CleanResult, error) {
	var res CleanResult
	if len(raw) == 0 {
		return res, nil
	}

	if !someRow(raw, func(r entity.RawListing) bool { return strings.TrimSpace(r.MLSID) != "" }) {
		return res, domainerrors.ErrMalformedInput.WithDetails("no listing carries an MLS id")
	}
	if !someRow(raw, func(r entity.RawListing) bool { return strings.TrimSpace(r.Address) != "" }) {
		return res, domainerrors.ErrMalformedInput.WithDetails("no listing carries an address")
	}

	seen := make(map[string]struct{}, len(raw))
	res.Listings = make([]entity.Listing, 0, len(raw))

	for _, r := range raw {
		mls := strings.TrimSpace(r.MLSID)
		if mls == "" {
			res.MissingMLS++

			continue
		}
		if _, dup := seen[mls]; dup {
			res.DuplicateMLS++

			continue
		}
		seen[mls] = struct{}{}

		l := entity.Listing{
			MLSID:          mls,
			Description:    strings.TrimSpace(r.Description),
			Amenities:      strings.TrimSpace(r.Amenities),
			RawAddress:     strings.TrimSpace(r.Address),
			Bedrooms:       ParseBedrooms(r.Bedrooms),
			Bathrooms:      ParseFirstNumber(r.Bathrooms),
			SizeSqft:       ParseSizeSqft(r.Size),
			Stories:        ParseFirstNumber(r.Stories),
			HouseCategory:  strings.TrimSpace(r.HouseCategory),
			SearchLocation: r.SearchLocation,
			CollectedAt:    r.CollectedAt,
			Coordinates:    entity.NewCoordinates(r.Latitude, r.Longitude),
		}

		l.Price = ParsePrice(r.Price)
		if !l.Price.Valid && strings.TrimSpace(r.Price) != "" {
			res.UnparsedPrices++
		}

		res.Listings = append(res.Listings, l)
	}

	return res, nil
}

// ParseBedrooms handles "4", "4.0" and "4 + 1" style counts.
func ParseBedrooms(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	if strings.Contains(s, "+") {
		var total float64
		found := false
		for _, part := range strings.Split(s, "+") {
			if v := ParseFirstNumber(part); v != nil {
				total += *v
				found = true
			}
		}
		if !found {
			return nil
		}
		n := int(total)

		return &n
	}

	v := ParseFirstNumber(s)
	if v == nil {
		return nil
	}
	n := int(*v)

	return &n
}

// ParseFirstNumber returns the first numeric token in s.
func ParseFirstNumber(s string) *float64 {
	m := numberPattern.FindString(strings.TrimSpace(s))
	if m == "" {
		return nil
	}

	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}

	return &v
}

// ParseSizeSqft converts a size with an optional unit to square feet. Values
// without a unit are taken as square feet, acreage is recorded as 0 and
// unknown units as nil.
func ParseSizeSqft(s string) *float64 {
	num := sizeNumPattern.FindString(s)
	if strings.Trim(num, ",.") == "" {
		return nil
	}

	v, err := strconv.ParseFloat(strings.ReplaceAll(num, ",", ""), 64)
	if err != nil {
		return nil
	}

	unit := strings.ToLower(sizeUnitPattern.FindString(s))
	switch unit {
	case "", "sqft", "ft2", "ft", "sf":
	case "sqm", "m2", "m":
		v *= sqmToSqft
	case "ac", "acre", "acres":
		v = 0
	default:
		return nil
	}

	return &v
}

// ParsePrice reads "$1,299,000" style prices.
func ParsePrice(s string) decimal.NullDecimal {
	cleaned := priceStrip.ReplaceAllString(s, "")
	if cleaned == "" {
		return decimal.NullDecimal{}
	}

	if d, err := decimal.NewFromString(cleaned); err == nil {
		return decimal.NewNullDecimal(d)
	}

	if v := ParseFirstNumber(cleaned); v != nil {
		return decimal.NewNullDecimal(decimal.NewFromFloat(*v))
	}

	return decimal.NullDecimal{}
}

func someRow(raw []entity.RawListing, fn func(entity.RawListing) bool) bool {
	for _, r := range raw {
		if fn(r) {
			return true
		}
	}

	return false
}
