package model

import (
	"time"

	"github.com/google/uuid"
)

// PropertyRow is a 'properties' row as read by the matching and dedup
// queries. The geom GEOGRAPHY(POINT, 4326) column is written with PostGIS
// functions in raw SQL and never mapped.
type PropertyRow struct {
	ID            uuid.UUID
	AddressID     int64
	AddressNumber string
	StreetName    string
	Municipality  string
	ProvinceState string
	PostalCode    string
	Country       string
	Lat           *float64
	Lon           *float64
	DistanceM     float64
}

// PoolModel is the GORM-specific struct for the 'pools' table.
type PoolModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	PropertyID   uuid.UUID `gorm:"type:uuid;not null;index"`
	PoolType     string    `gorm:"type:varchar(20)"`
	SourcePoolID *int64    `gorm:"uniqueIndex"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (PoolModel) TableName() string {
	return "pools"
}

// MasterListingModel is the GORM-specific struct for the master 'listings' table.
type MasterListingModel struct {
	MLSID                string   `gorm:"column:mls_id;type:varchar(32);primaryKey"`
	PropertyAddressID    int64    `gorm:"not null;index"`
	Bathrooms            *float64 `gorm:"column:bathrooms"`
	Bedrooms             *int     `gorm:"column:bedrooms"`
	DateCollected        time.Time
	Description          string `gorm:"type:text"`
	HouseCat             string `gorm:"column:house_cat;type:varchar(100)"`
	IsRemoved            bool   `gorm:"not null;default:false"`
	ListingAddressNumber string `gorm:"type:varchar(20)"`
	Price                *int64
	RemovalDate          *time.Time
	SizeSqft             *float64
	Stories              *float64
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (MasterListingModel) TableName() string {
	return "listings"
}
