package model

import (
	"github.com/google/uuid"
)

// AddressModel mirrors the 'shipping_addresses' table. The default flag has
// no partial unique index; the address usecase keeps the one-default-per-owner
// invariant inside a transaction.
type AddressModel struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OwnerID uuid.UUID `gorm:"type:uuid;not null;index:idx_shipping_addresses_on_owner"`

	Name  string `gorm:"type:varchar(50);not null"`
	Phone string `gorm:"type:varchar(20);not null"`

	ProvinceCode string `gorm:"type:varchar(6)"`
	ProvinceName string `gorm:"type:varchar(50)"`
	CityCode     string `gorm:"type:varchar(6)"`
	CityName     string `gorm:"type:varchar(50)"`
	AreaCode     string `gorm:"type:varchar(6)"`
	AreaName     string `gorm:"type:varchar(50)"`

	Detail string `gorm:"type:varchar(255)"`
	Zip    string `gorm:"type:varchar(10)"`
	Tag    string `gorm:"type:varchar(20)"`

	IsDefault bool `gorm:"not null;default:false"`

	AuditColumns `gorm:"embedded"`
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "shipping_addresses"
}
