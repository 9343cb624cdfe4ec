package address

import (
	"strings"
)

// DefaultMaxVariants bounds the variant set built for one address.
const DefaultMaxVariants = 256

var streetTypes = map[string][]string{
	"st":        {"street", "st"},
	"street":    {"street", "st"},
	"ave":       {"avenue", "ave"},
	"avenue":    {"avenue", "ave"},
	"rd":        {"road", "rd"},
	"road":      {"road", "rd"},
	"blvd":      {"boulevard", "blvd"},
	"boulevard": {"boulevard", "blvd"},
	"dr":        {"drive", "dr"},
	"drive":     {"drive", "dr"},
	"ct":        {"court", "ct"},
	"court":     {"court", "ct"},
	"ln":        {"lane", "ln"},
	"lane":      {"lane", "ln"},
	"pl":        {"place", "pl"},
	"place":     {"place", "pl"},
	"cir":       {"circle", "cir"},
	"circle":    {"circle", "cir"},
	"way":       {"way"},
	"pkwy":      {"parkway", "pkwy"},
	"parkway":   {"parkway", "pkwy"},
	"hwy":       {"highway", "hwy"},
	"highway":   {"highway", "hwy"},
	"sq":        {"square", "sq"},
	"square":    {"square", "sq"},
	"ter":       {"terrace", "ter"},
	"terrace":   {"terrace", "ter"},
	"trl":       {"trail", "trl"},
	"trail":     {"trail", "trl"},
	"cres":      {"crescent", "cres"},
	"crescent":  {"crescent", "cres"},
}

var directionals = map[string][]string{
	"n":         {"north", "n"},
	"north":     {"north", "n"},
	"s":         {"south", "s"},
	"south":     {"south", "s"},
	"e":         {"east", "e"},
	"east":      {"east", "e"},
	"w":         {"west", "w"},
	"west":      {"west", "w"},
	"ne":        {"northeast", "ne"},
	"northeast": {"northeast", "ne"},
	"nw":        {"northwest", "nw"},
	"northwest": {"northwest", "nw"},
	"se":        {"southeast", "se"},
	"southeast": {"southeast", "se"},
	"sw":        {"southwest", "sw"},
	"southwest": {"southwest", "sw"},
}

// ExpansionKey is the address data used to build variants.
type ExpansionKey struct {
	AddressNumber string
	StreetName    string
	Municipality  string
	PostalCode    string
}

// VariantSet is a set of normalized address strings.
type VariantSet map[string]struct{}

// Intersects reports whether the two sets share at least one variant.
func (v VariantSet) Intersects(other VariantSet) bool {
	small, large := v, other
	if len(small) > len(large) {
		small, large = large, small
	}
	for s := range small {
		if _, ok := large[s]; ok {
			return true
		}
	}

	return false
}

// Expander builds bounded variant sets by substituting street types and
// directionals one word at a time.
type Expander struct {
	maxVariants int
}

// NewExpander returns an Expander. A non-positive cap uses DefaultMaxVariants.
func NewExpander(maxVariants int) *Expander {
	if maxVariants <= 0 {
		maxVariants = DefaultMaxVariants
	}

	return &Expander{maxVariants: maxVariants}
}

// Expand returns the variants of an address across its compositions: number
// and street, plus municipality, plus postal code, and the full address with
// country. Keys without a number or street produce an empty set.
func (e *Expander) Expand(k ExpansionKey) VariantSet {
	set := VariantSet{}

	number := strings.TrimSpace(k.AddressNumber)
	street := strings.TrimSpace(k.StreetName)
	if number == "" || street == "" {
		return set
	}

	base := number + " " + street
	compositions := []string{base}
	if m := strings.TrimSpace(k.Municipality); m != "" {
		compositions = append(compositions, base+" "+m)
	}
	postal := CanonicalPostalCode(k.PostalCode)
	if postal != "" {
		compositions = append(compositions, base+" "+postal)
	}

	full := []string{number, street}
	if m := strings.TrimSpace(k.Municipality); m != "" {
		full = append(full, m)
	}
	if postal != "" {
		full = append(full, postal)
	}
	full = append(full, defaultCountry)
	compositions = append(compositions, strings.Join(full, " "))

	for _, c := range compositions {
		if !e.expandInto(set, normalizeWords(c)) {
			break
		}
	}

	return set
}

// expandInto adds the composition and its single-word substitutions. It
// returns false once the cap is reached.
func (e *Expander) expandInto(set VariantSet, words []string) bool {
	if !e.add(set, words) {
		return false
	}

	for i, w := range words {
		for _, table := range []map[string][]string{streetTypes, directionals} {
			for _, replacement := range table[w] {
				next := make([]string, len(words))
				copy(next, words)
				next[i] = replacement
				if !e.add(set, next) {
					return false
				}
			}
		}
	}

	return true
}

func (e *Expander) add(set VariantSet, words []string) bool {
	if len(set) >= e.maxVariants {
		return false
	}
	set[strings.Join(words, " ")] = struct{}{}

	return true
}

func normalizeWords(s string) []string {
	fields := strings.Fields(strings.ToLower(s))
	words := fields[:0]
	for _, f := range fields {
		f = strings.Trim(f, ".,;")
		if f != "" {
			words = append(words, f)
		}
	}

	return words
}
