package entity

// StagePool is a raw pool observation in the staging store. Access is the
// OpenStreetMap access tag ("private", "yes", ...), "unknown" when untagged.
type StagePool struct {
	ID       int64
	Position Coordinates
	Access   string
	OSMID    *int64
}

// StageAddress is a reverse-geocoded address observation in the staging store.
type StageAddress struct {
	ID            int64
	AddressNumber string
	StreetName    string
	Municipality  string
	ProvinceState string
	PostalCode    string
	Country       string
	Coordinates   *Coordinates
}

// Assignment links a staged pool to its nearest staged address until the pair
// is promoted to the master store.
type Assignment struct {
	ID             int64
	PoolID         int64
	AddressID      int64
	DistanceMeters float64
	Uploaded       bool
}

// StagedAddress is one assignment joined with its pool and address, the unit
// the dedup cleaner works on.
type StagedAddress struct {
	AssignmentID  int64
	PoolID        int64
	AddressNumber string
	StreetName    string
	Municipality  string
	ProvinceState string
	PostalCode    string
	Country       string
	Coordinates   *Coordinates

	// NewAddressID is the surrogate key assigned to rows that survive dedup.
	NewAddressID int64
}
