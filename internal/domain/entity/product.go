package entity

import "github.com/google/uuid"

// Product is one catalog item. Prices are integral CNY fen to avoid floats.
type Product struct {
	ID          uuid.UUID
	CategoryID  int64
	ItemType    string
	Title       string
	SellPoint   string
	Price       int64
	Num         int // Remaining stock.
	Image       string
	Status      int // 1 on sale, 2 off shelf, 3 deleted.
	Priority    int // Sort weight for the hot list.
	Audit
}
