package model

// StagePoolModel is the GORM-specific struct for the stage 'pool' table.
// PoolType holds the OpenStreetMap access tag.
type StagePoolModel struct {
	ID       int64   `gorm:"primaryKey;autoIncrement"`
	Lat      float64 `gorm:"not null"`
	Lon      float64 `gorm:"not null"`
	PoolType string  `gorm:"type:varchar(50)"`
	OSMID    *int64  `gorm:"column:osm_id"`
}

// TableName explicitly sets the table name for GORM.
func (StagePoolModel) TableName() string {
	return "pool"
}

// AssignmentModel is the GORM-specific struct for the stage 'assignment' table.
type AssignmentModel struct {
	ID             int64 `gorm:"primaryKey;autoIncrement"`
	PoolID         int64 `gorm:"not null;index"`
	AddressID      int64 `gorm:"not null"`
	DistanceMeters float64
	Uploaded       *bool `gorm:"default:false"`
}

// TableName explicitly sets the table name for GORM.
func (AssignmentModel) TableName() string {
	return "assignment"
}

// PendingAssignmentRow is an assignment joined with its pool and address.
type PendingAssignmentRow struct {
	AssignmentID  int64
	PoolID        int64
	AddressNumber string
	StreetName    string
	Municipality  string
	ProvinceState string
	PostalCode    string
	Country       string
	Lat           *float64
	Lon           *float64
}
