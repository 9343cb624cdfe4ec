package address

import (
	"regexp"
	"strings"
	"unicode"

	"poolscout/internal/domain/entity"
)

// Problem names one structural defect of a parsed address.
type Problem string

const (
	ProblemMissingStreet   Problem = "missing_street_address"
	ProblemMissingCity     Problem = "missing_city"
	ProblemMissingPostal   Problem = "missing_postal_code"
	ProblemMissingNumber   Problem = "missing_address_number"
	ProblemInvalidNumber   Problem = "invalid_address_number"
	ProblemInvalidPostal   Problem = "invalid_postal_code"
	ProblemStreetNoLetters Problem = "street_without_letters"
)

var (
	addressNumberPattern = regexp.MustCompile(`^\d+[A-Z]?$|^\d+-?[A-Z]?$`)
	postalFormatPattern  = regexp.MustCompile(`^[A-Z]\d[A-Z]\d[A-Z]\d$`)
)

// Issue lists the problems found on one row.
type Issue struct {
	Index    int
	Problems []Problem
}

// Check returns every problem with a single address, or nil when it is valid.
func Check(a entity.ParsedAddress) []Problem {
	var problems []Problem

	street := present(a.StreetAddress)
	city := present(a.City)
	postal := present(a.PostalCode)
	number := present(a.AddressNumber)

	if street == "" {
		problems = append(problems, ProblemMissingStreet)
	}
	if city == "" {
		problems = append(problems, ProblemMissingCity)
	}
	if postal == "" {
		problems = append(problems, ProblemMissingPostal)
	}
	if number == "" {
		problems = append(problems, ProblemMissingNumber)
	}

	if number != "" && !addressNumberPattern.MatchString(number) {
		problems = append(problems, ProblemInvalidNumber)
	}
	if postal != "" && !postalFormatPattern.MatchString(CanonicalPostalCode(postal)) {
		problems = append(problems, ProblemInvalidPostal)
	}
	if street != "" && !strings.ContainsFunc(street, unicode.IsLetter) {
		problems = append(problems, ProblemStreetNoLetters)
	}

	return problems
}

// Valid reports whether the address passes every check.
func Valid(a entity.ParsedAddress) bool {
	return len(Check(a)) == 0
}

// Validate checks every address and returns the failing rows in index order.
func Validate(addrs []entity.ParsedAddress) []Issue {
	var issues []Issue
	for i, a := range addrs {
		if problems := Check(a); len(problems) > 0 {
			issues = append(issues, Issue{Index: i, Problems: problems})
		}
	}

	return issues
}

// ValidateListings validates the parsed address of every listing.
func ValidateListings(listings []entity.Listing) []Issue {
	addrs := make([]entity.ParsedAddress, len(listings))
	for i := range listings {
		addrs[i] = listings[i].Address
	}

	return Validate(addrs)
}

// FailingIndices extracts the row indices from issues.
func FailingIndices(issues []Issue) []int {
	indices := make([]int, len(issues))
	for i, issue := range issues {
		indices[i] = issue.Index
	}

	return indices
}

// present treats the literal placeholders some exports emit as empty.
func present(s string) string {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "nan", "none", "null":
		return ""
	}

	return s
}
