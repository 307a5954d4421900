package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. Recipient columns are a snapshot of
// the shipping address taken when the order was placed.
type OrderModel struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OwnerID uuid.UUID `gorm:"type:uuid;not null;index:idx_orders_on_owner"`

	RecvName     string `gorm:"type:varchar(50);not null"`
	RecvPhone    string `gorm:"type:varchar(20);not null"`
	RecvProvince string `gorm:"type:varchar(50)"`
	RecvCity     string `gorm:"type:varchar(50)"`
	RecvArea     string `gorm:"type:varchar(50)"`
	RecvAddress  string `gorm:"type:varchar(255);not null"`

	TotalPrice int64      `gorm:"not null"`
	Status     int        `gorm:"type:smallint;not null;default:0"`
	OrderedAt  time.Time  `gorm:"not null"`
	PaidAt     *time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`

	AuditColumns `gorm:"embedded"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Title, image and price are
// frozen copies of the product row at order time.
type OrderItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index:idx_order_items_on_order"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Title     string    `gorm:"type:varchar(100);not null"`
	Image     string    `gorm:"type:varchar(500)"`
	Price     int64     `gorm:"not null"`
	Num       int       `gorm:"not null"`

	AuditColumns `gorm:"embedded"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
