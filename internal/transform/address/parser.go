// Package address parses, validates, triages, corrects and expands Canadian
// listing addresses.
package address

import (
	"regexp"
	"strings"

	"poolscout/internal/domain/entity"
)

var (
	postalPattern         = regexp.MustCompile(`(?i)\b[ABCEGHJ-NPRSTVXY]\d[ABCEGHJ-NPRSTV-Z][ -]?\d[ABCEGHJ-NPRSTV-Z]\d\b`)
	leadingDigits         = regexp.MustCompile(`^\s*(\d+)`)
	parenthetical         = regexp.MustCompile(`\([^)]*\)`)
	postalSeparators      = regexp.MustCompile(`[\s-]`)
	collapsibleWhitespace = regexp.MustCompile(`\s+`)
)

// CanonicalPostalCode upper-cases a postal code and removes spaces and dashes.
func CanonicalPostalCode(s string) string {
	return strings.ToUpper(postalSeparators.ReplaceAllString(strings.TrimSpace(s), ""))
}

// ExtractPostalCode returns the first Canadian postal code in s, canonicalized.
func ExtractPostalCode(s string) string {
	m := postalPattern.FindString(s)
	if m == "" {
		return ""
	}

	return CanonicalPostalCode(m)
}

// Parse splits a listing address of the form "<street>|<city>, <province> <postal>".
// Fields that cannot be found are left empty.
func Parse(raw string) entity.ParsedAddress {
	var a entity.ParsedAddress

	rawPostal := postalPattern.FindString(raw)
	if rawPostal != "" {
		a.PostalCode = CanonicalPostalCode(rawPostal)
	}

	street, rest, ok := strings.Cut(raw, "|")
	if !ok {
		return a
	}

	a.StreetAddress = collapse(street)
	if m := leadingDigits.FindStringSubmatch(a.StreetAddress); m != nil {
		a.AddressNumber = m[1]
	}

	city, region, _ := strings.Cut(rest, ",")
	a.City = collapse(parenthetical.ReplaceAllString(city, ""))

	if rawPostal != "" {
		region = strings.Replace(region, rawPostal, "", 1)
	}
	a.ProvinceState = MatchProvince(region)

	return a
}

// ParseListings returns a copy of listings with Address parsed from RawAddress.
func ParseListings(listings []entity.Listing) []entity.Listing {
	out := make([]entity.Listing, len(listings))
	for i, l := range listings {
		l.Address = Parse(l.RawAddress)
		out[i] = l
	}

	return out
}

func collapse(s string) string {
	return strings.TrimSpace(collapsibleWhitespace.ReplaceAllString(s, " "))
}
