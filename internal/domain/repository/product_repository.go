package repository

import (
	"context"

	"store/internal/domain/entity"
	"store/internal/errors"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a catalog item is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository reads the product catalog.
type ProductRepository interface {
	// FindHotList retrieves the highest-priority on-sale products, capped at
	// the given limit.
	FindHotList(ctx context.Context, limit int) ([]*entity.Product, error)

	// FindByID retrieves one product. Returns ErrProductNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
}
