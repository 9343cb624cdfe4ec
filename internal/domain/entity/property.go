package entity

import "time"

// Property is a canonical master-store address with its geolocation.
// AddressID is the numeric surrogate key shared with listings and pools.
type Property struct {
	ID            string // uuid
	AddressID     int64
	AddressNumber string
	StreetName    string
	Municipality  string
	ProvinceState string
	PostalCode    string
	Country       string
	Coordinates   *Coordinates
}

// MasterListing links a listing to the property it was reconciled against.
type MasterListing struct {
	MLSID                string
	PropertyAddressID    int64
	Bathrooms            *float64
	Bedrooms             *int
	DateCollected        time.Time
	Description          string
	HouseCategory        string
	ListingAddressNumber string
	Price                *int64
	SizeSqft             *float64
	Stories              *float64
}

// ListingRemoval marks a master listing as taken off the market.
type ListingRemoval struct {
	MLSID       string
	RemovalDate time.Time
}

// RemovalUpdateResult reports how removal marks were applied.
type RemovalUpdateResult struct {
	Updated        int
	NotFound       int
	AlreadyRemoved int
}
