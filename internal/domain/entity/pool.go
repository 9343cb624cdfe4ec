package entity

// PoolType is the persisted construction category of a pool.
type PoolType string

const (
	PoolTypeNone        PoolType = "none"
	PoolTypeInGround    PoolType = "in-ground"
	PoolTypeAboveGround PoolType = "above-ground"
)

// PoolCategory is the intermediate ownership verdict of the classifier.
type PoolCategory string

const (
	PoolCategoryNone      PoolCategory = "none"
	PoolCategoryPrivate   PoolCategory = "private"
	PoolCategoryCommunity PoolCategory = "community"
	PoolCategoryUnknown   PoolCategory = "unknown"
)

// Construction is the intermediate construction verdict of the classifier.
type Construction string

const (
	ConstructionUnknown     Construction = "unknown"
	ConstructionInGround    Construction = "in-ground"
	ConstructionAboveGround Construction = "above-ground"
)

// PoolVerdict is the persisted outcome attached to a listing.
// Type is never anything but PoolTypeNone when Flag is false.
type PoolVerdict struct {
	Flag bool
	Type PoolType
}

// NoPool is the verdict for listings without a private pool.
var NoPool = PoolVerdict{Flag: false, Type: PoolTypeNone}

// PoolAnalysis carries every intermediate signal behind a verdict. Only the
// Verdict survives persistence.
type PoolAnalysis struct {
	Mentioned    bool
	Excluded     bool
	Negated      bool
	Communal     bool
	Private      bool
	InGround     bool
	AboveGround  bool
	Dimensions   bool
	Category     PoolCategory
	Construction Construction
	Confidence   float64
	Evidence     string
	Verdict      PoolVerdict
}

// Pool is a pool owned by a master property.
type Pool struct {
	ID           string // uuid
	PropertyID   string // uuid
	PoolType     PoolType
	SourcePoolID *int64 // stage pool id when promoted from the open-data pipeline
}

// OSMPool is a pool observation extracted from OpenStreetMap.
type OSMPool struct {
	OSMID    int64
	OSMType  string // node, way or relation
	Position Coordinates
	Tags     map[string]string
}
