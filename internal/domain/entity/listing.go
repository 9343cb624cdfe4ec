package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawListing is a listing exactly as the search provider returned it.
// Numeric fields are free text and may be malformed.
type RawListing struct {
	MLSID          string
	Description    string
	Amenities      string
	Address        string
	Bedrooms       string
	Bathrooms      string
	Size           string
	Stories        string
	Price          string
	HouseCategory  string
	Latitude       *float64
	Longitude      *float64
	SearchLocation string
	CollectedAt    time.Time
}

// Listing is a cleaned listing flowing through the transform stages.
type Listing struct {
	MLSID          string
	Description    string
	Amenities      string
	RawAddress     string
	Bedrooms       *int
	Bathrooms      *float64
	SizeSqft       *float64
	Stories        *float64
	Price          decimal.NullDecimal
	HouseCategory  string
	SearchLocation string
	CollectedAt    time.Time
	Coordinates    *Coordinates
	Address        ParsedAddress
	Pool           PoolVerdict
}

// FullDescription is the text persisted for a listing: description plus amenities.
func (l *Listing) FullDescription() string {
	switch {
	case l.Amenities == "":
		return l.Description
	case l.Description == "":
		return l.Amenities
	default:
		return l.Description + " | Amenities: " + l.Amenities
	}
}

// SearchLocation is one area the listing source is queried for.
type SearchLocation struct {
	CountryCode   string
	ProvinceState string
	SearchArea    string
}

// Tag renders the location in the form stored alongside listings, e.g. "CA-ON-Fort Erie".
func (s SearchLocation) Tag() string {
	return s.CountryCode + "-" + s.ProvinceState + "-" + s.SearchArea
}

// StoredListing is a persisted listing read back for reconciliation.
type StoredListing struct {
	MLSID         string
	AddressNumber string
	StreetName    string
	Municipality  string
	ProvinceState string
	PostalCode    string
	Coordinates   *Coordinates
	CollectedAt   time.Time
	Description   string
	Bedrooms      *int
	Bathrooms     *float64
	SizeSqft      *float64
	Stories       *float64
	HouseCategory string
	Price         decimal.NullDecimal
	PoolType      PoolType
	PoolMentioned bool
	RemovalDate   *time.Time
}

// ListingLoadResult reports what a listing persistence step wrote.
type ListingLoadResult struct {
	Inserted        int
	SightingsStored int
	Removed         int
	Relisted        int
}

// ListingRow is a listing prepared for the listing store.
type ListingRow struct {
	MLSID          string
	DateCollected  time.Time
	Description    string
	Bedrooms       *int
	Bathrooms      *float64
	SizeSqft       *float64
	Stories        *float64
	HouseCategory  string
	Price          decimal.NullDecimal
	AddressNumber  int64
	StreetName     string
	FullStreetName string
	Municipality   string
	ProvinceState  string
	PostalCode     string
	PoolMentioned  bool
	PoolType       PoolType
	Lat            float64
	Lon            float64
	SearchLocation string
}

// Sighting records that a listing was returned for a search location.
type Sighting struct {
	MLSID          string
	SearchLocation string
}

// SkippedListing is a listing left out of the load with the reason why.
type SkippedListing struct {
	MLSID  string
	Reason string
}
