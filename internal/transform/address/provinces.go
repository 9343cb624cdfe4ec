package address

import (
	"strings"

	"poolscout/internal/transform/textnorm"
)

var provinces = []string{
	"Alberta",
	"British Columbia",
	"Manitoba",
	"New Brunswick",
	"Newfoundland and Labrador",
	"Nova Scotia",
	"Ontario",
	"Prince Edward Island",
	"Quebec",
	"Saskatchewan",
	"Northwest Territories",
	"Nunavut",
	"Yukon",
}

var provinceCodes = map[string]string{
	"AB": "Alberta",
	"BC": "British Columbia",
	"MB": "Manitoba",
	"NB": "New Brunswick",
	"NL": "Newfoundland and Labrador",
	"NS": "Nova Scotia",
	"ON": "Ontario",
	"PE": "Prince Edward Island",
	"QC": "Quebec",
	"SK": "Saskatchewan",
	"NT": "Northwest Territories",
	"NU": "Nunavut",
	"YT": "Yukon",
}

// MatchProvince maps free text to a province or territory name: exact name or
// two-letter code first, then a name contained in the text. Unmatched text is
// returned trimmed.
func MatchProvince(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	if name, ok := provinceCodes[strings.ToUpper(trimmed)]; ok {
		return name
	}

	normalized := textnorm.Normalize(trimmed)
	for _, name := range provinces {
		if normalized == textnorm.Normalize(name) {
			return name
		}
	}

	padded := " " + normalized + " "
	for _, name := range provinces {
		if strings.Contains(padded, " "+textnorm.Normalize(name)+" ") {
			return name
		}
	}

	return trimmed
}

// ProvinceCode returns the two-letter code for a province name or code.
func ProvinceCode(raw string) string {
	name := MatchProvince(raw)
	for code, n := range provinceCodes {
		if n == name {
			return code
		}
	}

	return ""
}
