package usecase

import (
	"context"

	"store/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateOrderItemInput is one product line of a new order.
type CreateOrderItemInput struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Num       int       `json:"num" validate:"required,min=1"`
}

// CreateOrderInput references the shipping address whose recipient fields
// are copied onto the order.
type CreateOrderInput struct {
	AddressID uuid.UUID              `json:"addressId" validate:"required"`
	Items     []CreateOrderItemInput `json:"items" validate:"required,min=1,dive"`
}

// OrderUsecase creates and lists orders.
type OrderUsecase interface {
	Create(ctx context.Context, ownerID uuid.UUID, actor string, input *CreateOrderInput) (*entity.Order, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Order, error)
}
