package model

// DistrictModel mirrors the read-only 'districts' reference table holding the
// province/city/area tree.
type DistrictModel struct {
	ID     int64  `gorm:"primary_key"`
	Parent string `gorm:"type:varchar(6);not null;index:idx_districts_on_parent"`
	Code   string `gorm:"type:varchar(6);not null;index:idx_districts_on_code"`
	Name   string `gorm:"type:varchar(50);not null"`
}

// TableName explicitly sets the table name for GORM.
func (DistrictModel) TableName() string {
	return "districts"
}
