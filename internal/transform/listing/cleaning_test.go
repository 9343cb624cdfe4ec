package listing

import (
	"testing"
	"time"

	"poolscout/internal/domain/entity"
	domainerrors "poolscout/internal/domain/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestParseBedrooms(t *testing.T) {
	tests := []struct {
		in   string
		want *int
	}{
		{in: "4", want: ptr(4)},
		{in: "4.0", want: ptr(4)},
		{in: "4 + 1", want: ptr(5)},
		{in: "4+1", want: ptr(5)},
		{in: "4+ ", want: ptr(4)},
		{in: "studio", want: nil},
		{in: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseBedrooms(tt.in))
		})
	}
}

func TestParseSizeSqft(t *testing.T) {
	tests := []struct {
		in   string
		want *float64
	}{
		{in: "1,500 sqft", want: ptr(1500.0)},
		{in: "1500", want: ptr(1500.0)},
		{in: "100 m2", want: ptr(1076.39)},
		{in: "0.5 ac", want: ptr(0.0)},
		{in: "12 hectares", want: nil},
		{in: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseSizeSqft(tt.in)
			if tt.want == nil {
				assert.Nil(t, got)

				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-6)
		})
	}
}

func TestParsePrice(t *testing.T) {
	assert.True(t, ParsePrice("$1,299,000").Decimal.Equal(decimal.NewFromInt(1299000)))
	assert.True(t, ParsePrice("$2,500/Monthly").Decimal.Equal(decimal.NewFromInt(2500)))
	assert.False(t, ParsePrice("Contact agent").Valid)
	assert.False(t, ParsePrice("").Valid)
}

func TestClean(t *testing.T) {
	collected := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	raw := []entity.RawListing{
		{MLSID: " X1 ", Address: "1 A St|Town, ON", Bedrooms: "3+1", Price: "$500,000", Size: "2,000 sqft", Latitude: ptr(43.1), Longitude: ptr(-79.2), CollectedAt: collected},
		{MLSID: "X1", Address: "duplicate"},
		{MLSID: "", Address: "no id"},
		{MLSID: "X2", Address: "2 B St|Town, ON", Price: "call", Latitude: ptr(43.1)},
	}

	res, err := Clean(raw)

	require.NoError(t, err)
	require.Len(t, res.Listings, 2)
	assert.Equal(t, 1, res.DuplicateMLS)
	assert.Equal(t, 1, res.MissingMLS)
	assert.Equal(t, 1, res.UnparsedPrices)

	first := res.Listings[0]
	assert.Equal(t, "X1", first.MLSID)
	assert.Equal(t, ptr(4), first.Bedrooms)
	assert.Equal(t, ptr(2000.0), first.SizeSqft)
	assert.Equal(t, &entity.Coordinates{Lat: 43.1, Lon: -79.2}, first.Coordinates)
	assert.Equal(t, collected, first.CollectedAt)

	assert.Nil(t, res.Listings[1].Coordinates, "a lone latitude is not a position")
}

func TestClean_MalformedBatch(t *testing.T) {
	_, err := Clean([]entity.RawListing{{Description: "no id"}, {Description: "still none"}})
	assert.ErrorIs(t, err, domainerrors.ErrMalformedInput)

	_, err = Clean([]entity.RawListing{{MLSID: "A"}})
	assert.ErrorIs(t, err, domainerrors.ErrMalformedInput)

	res, err := Clean(nil)
	assert.NoError(t, err)
	assert.Empty(t, res.Listings)
}

func TestFilterHomes(t *testing.T) {
	in := []entity.Listing{
		{MLSID: "1", HouseCategory: "Single Family"},
		{MLSID: "2", HouseCategory: "Apartment"},
		{MLSID: "3", HouseCategory: "mobile home"},
		{MLSID: "4", HouseCategory: ""},
		{MLSID: "5", HouseCategory: "Residential Commercial Mix"},
	}

	out, removed := FilterHomes(in)

	assert.Equal(t, 3, removed)
	require.Len(t, out, 2)
	assert.Equal(t, "1", out[0].MLSID)
	assert.Equal(t, "4", out[1].MLSID)
}
