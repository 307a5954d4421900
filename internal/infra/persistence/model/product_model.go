package model

import (
	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	CategoryID int64     `gorm:"not null;index:idx_products_on_category"`
	ItemType   string    `gorm:"type:varchar(50)"`
	Title      string    `gorm:"type:varchar(100);not null"`
	SellPoint  string    `gorm:"type:varchar(255)"`
	Price      int64     `gorm:"not null"`
	Num        int       `gorm:"not null;default:0"`
	Image      string    `gorm:"type:varchar(500)"`
	Status     int       `gorm:"type:smallint;not null;default:1"`
	Priority   int       `gorm:"not null;default:0"`

	AuditColumns `gorm:"embedded"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
