package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ListingStagingModel mirrors the 'listing_staging' table. The table is
// truncated and refilled on every listing run.
type ListingStagingModel struct {
	MLSID          string              `gorm:"column:mls_id;type:varchar(32);not null"`
	DateCollected  time.Time           `gorm:"column:date_collected;not null"`
	Description    string              `gorm:"column:description;type:text"`
	Bedrooms       *int                `gorm:"column:bedrooms"`
	Bathrooms      *float64            `gorm:"column:bathrooms"`
	SizeSqft       *float64            `gorm:"column:size_sqft"`
	Stories        *float64            `gorm:"column:stories"`
	HouseCategory  string              `gorm:"column:house_cat;type:varchar(100)"`
	Price          decimal.NullDecimal `gorm:"column:price;type:numeric(14,2)"`
	AddressNumber  int64               `gorm:"column:address_number"`
	StreetName     string              `gorm:"column:street_name;type:varchar(255)"`
	FullStreetName string              `gorm:"column:full_street_name;type:varchar(255)"`
	Municipality   string              `gorm:"column:municipality;type:varchar(100)"`
	ProvinceState  string              `gorm:"column:province_state;type:varchar(50)"`
	PostalCode     string              `gorm:"column:postal_code;type:varchar(10)"`
	PoolMentioned  bool                `gorm:"column:pool_mentioned;not null;default:false"`
	PoolType       string              `gorm:"column:pool_type;type:varchar(20)"`
	Lat            float64             `gorm:"column:lat"`
	Lon            float64             `gorm:"column:lon"`
}

// TableName explicitly sets the table name for GORM.
func (ListingStagingModel) TableName() string {
	return "listing_staging"
}

// PoolListingRow is a pool listing read back from the 'listing' table,
// optionally joined with its removal record.
type PoolListingRow struct {
	MLSID         string `gorm:"column:mls_id"`
	AddressNumber string
	StreetName    string
	Municipality  string
	ProvinceState string
	PostalCode    string
	Lat           *float64
	Lon           *float64
	DateCollected time.Time
	Description   string
	Bedrooms      *int
	Bathrooms     *float64
	SizeSqft      *float64
	Stories       *float64
	HouseCat      string
	Price         decimal.NullDecimal
	PoolType      string
	PoolMentioned bool
	RemovalDate   *time.Time
}

// SearchLocationModel mirrors the 'search_locations' table.
type SearchLocationModel struct {
	CountryCode   string `gorm:"column:country_code;type:varchar(2);primaryKey"`
	ProvinceState string `gorm:"column:province_state;type:varchar(50);primaryKey"`
	SearchArea    string `gorm:"column:search_area;type:varchar(100);primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (SearchLocationModel) TableName() string {
	return "search_locations"
}
