package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order is a placed order with the recipient fields denormalized from the
// chosen shipping address at creation time, so later address edits do not
// rewrite order history.
type Order struct {
	ID      uuid.UUID
	OwnerID uuid.UUID

	RecvName     string
	RecvPhone    string
	RecvProvince string
	RecvCity     string
	RecvArea     string
	RecvAddress  string

	TotalPrice int64
	Status     int // 0 unpaid, 1 paid, 2 shipped, 3 closed.
	OrderedAt  time.Time
	PaidAt     *time.Time

	Items []OrderItem

	Audit
}

// OrderItem is one product line inside an order. Title, image and price are
// captured at order time.
type OrderItem struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Title     string
	Image     string
	Price     int64
	Num       int

	Audit
}
