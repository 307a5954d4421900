package usecase

import (
	"context"

	"store/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductUsecase reads the catalog: the landing-page hot list and single
// product details.
type ProductUsecase interface {
	HotList(ctx context.Context) ([]*entity.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
}
