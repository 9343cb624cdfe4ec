package address

import (
	"testing"

	"poolscout/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func validAddress() entity.ParsedAddress {
	return entity.ParsedAddress{
		AddressNumber: "123",
		StreetAddress: "123 Main St",
		City:          "Toronto",
		ProvinceState: "Ontario",
		PostalCode:    "M5V3A8",
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(a *entity.ParsedAddress)
		want   []Problem
	}{
		{name: "valid", mutate: func(*entity.ParsedAddress) {}, want: nil},
		{name: "suffix letter", mutate: func(a *entity.ParsedAddress) { a.AddressNumber = "12B" }, want: nil},
		{name: "dash suffix", mutate: func(a *entity.ParsedAddress) { a.AddressNumber = "12-A" }, want: nil},
		{name: "spaced postal code normalizes", mutate: func(a *entity.ParsedAddress) { a.PostalCode = "m5v 3a8" }, want: nil},
		{
			name:   "placeholder values count as missing",
			mutate: func(a *entity.ParsedAddress) { a.City = "nan"; a.PostalCode = "None" },
			want:   []Problem{ProblemMissingCity, ProblemMissingPostal},
		},
		{
			name:   "missing number",
			mutate: func(a *entity.ParsedAddress) { a.AddressNumber = "" },
			want:   []Problem{ProblemMissingNumber},
		},
		{
			name:   "bad number",
			mutate: func(a *entity.ParsedAddress) { a.AddressNumber = "Lot 5" },
			want:   []Problem{ProblemInvalidNumber},
		},
		{
			name:   "bad postal code",
			mutate: func(a *entity.ParsedAddress) { a.PostalCode = "12345" },
			want:   []Problem{ProblemInvalidPostal},
		},
		{
			name:   "street without letters",
			mutate: func(a *entity.ParsedAddress) { a.StreetAddress = "123 4" },
			want:   []Problem{ProblemStreetNoLetters},
		},
		{
			name:   "everything missing",
			mutate: func(a *entity.ParsedAddress) { *a = entity.ParsedAddress{} },
			want:   []Problem{ProblemMissingStreet, ProblemMissingCity, ProblemMissingPostal, ProblemMissingNumber},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := validAddress()
			tt.mutate(&a)
			assert.Equal(t, tt.want, Check(a))
		})
	}
}

func TestValidate_ParsedScenario(t *testing.T) {
	issues := Validate([]entity.ParsedAddress{Parse("123 Main St|Toronto, ON M5V3A8")})
	assert.Empty(t, issues)
}

func TestValidate_ReturnsFailingIndices(t *testing.T) {
	addrs := []entity.ParsedAddress{
		validAddress(),
		{StreetAddress: "Main St", City: "Toronto", PostalCode: "M5V3A8"},
		validAddress(),
		{AddressNumber: "5", StreetAddress: "5 King St", City: "Toronto"},
	}

	issues := Validate(addrs)

	assert.Equal(t, []int{1, 3}, FailingIndices(issues))
	assert.Equal(t, []Problem{ProblemMissingNumber}, issues[0].Problems)
	assert.Equal(t, []Problem{ProblemMissingPostal}, issues[1].Problems)
}

func TestTriage(t *testing.T) {
	listings := []entity.Listing{
		{MLSID: "ok", Coordinates: &entity.Coordinates{Lat: 43.6, Lon: -79.4}},
		{MLSID: "missing"},
		{MLSID: "zero", Coordinates: &entity.Coordinates{}},
		{MLSID: "has-coords", Coordinates: &entity.Coordinates{Lat: 42.9, Lon: -78.9}},
		{MLSID: "lat-only-zero", Coordinates: &entity.Coordinates{Lat: 0, Lon: -78.9}},
	}

	res := Triage(listings, []int{1, 2, 3, 4})

	assert.Equal(t, []int{1, 2}, res.Critical)
	assert.Equal(t, []int{3, 4}, res.Minor)
	assert.ElementsMatch(t, []int{1, 2, 3, 4}, append(append([]int{}, res.Critical...), res.Minor...))
}

func TestTriage_NoFailures(t *testing.T) {
	res := Triage([]entity.Listing{{MLSID: "a"}}, nil)
	assert.Empty(t, res.Critical)
	assert.Empty(t, res.Minor)
}
