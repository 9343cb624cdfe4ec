package address

import (
	"regexp"
	"strings"

	"poolscout/internal/domain/entity"
)

const defaultCountry = "Canada"

var (
	formattedStreetPattern = regexp.MustCompile(`^(\d+[A-Za-z]?)\s+(.+)$`)
	formattedRegionPattern = regexp.MustCompile(`^([A-Z]{2})\s*([A-Z]\d[A-Z]\s*\d[A-Z]\d)?$`)
)

// ParseFormatted reads components out of a provider's one-line address such
// as "123 Main St, Toronto, ON M5V 3A8, Canada".
func ParseFormatted(formatted string) entity.AddressComponents {
	var c entity.AddressComponents

	s := strings.TrimSpace(formatted)
	if s == "" {
		return c
	}

	c.Country = defaultCountry
	if trimmed, ok := strings.CutSuffix(s, ", Canada"); ok {
		s = trimmed
	}

	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	if m := formattedStreetPattern.FindStringSubmatch(parts[0]); m != nil {
		c.AddressNumber = m[1]
		c.StreetName = m[2]
	} else {
		c.StreetName = parts[0]
	}

	if len(parts) >= 2 {
		c.City = parts[1]
	}

	if len(parts) >= 3 {
		if m := formattedRegionPattern.FindStringSubmatch(parts[len(parts)-1]); m != nil {
			c.ProvinceState = m[1]
			if m[2] != "" {
				c.PostalCode = CanonicalPostalCode(m[2])
			}
		}
	}

	return c
}

// FillMissing completes structured components with whatever the formatted
// address carries. Structured values always win.
func FillMissing(c entity.AddressComponents, formatted string) entity.AddressComponents {
	f := ParseFormatted(formatted)

	fill := func(dst *string, v string) {
		if strings.TrimSpace(*dst) == "" {
			*dst = v
		}
	}
	fill(&c.AddressNumber, f.AddressNumber)
	fill(&c.StreetName, f.StreetName)
	fill(&c.City, f.City)
	fill(&c.ProvinceState, f.ProvinceState)
	fill(&c.PostalCode, f.PostalCode)
	fill(&c.Country, f.Country)

	return c
}
