package repository

import (
	"context"

	"store/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderRepository persists orders and their item lines.
type OrderRepository interface {
	// InsertOrder persists the order head and returns the affected row count.
	InsertOrder(ctx context.Context, order *entity.Order) (int64, error)

	// InsertOrderItem persists one item line and returns the affected row count.
	InsertOrderItem(ctx context.Context, item *entity.OrderItem) (int64, error)

	// FindByOwner retrieves the owner's orders, newest first, items included.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Order, error)
}
