package impl

import (
	"context"

	"store/internal/domain/entity"
	domainerrors "store/internal/domain/errors"
	"store/internal/domain/repository"
	"store/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// hotListLimit caps the landing-page hot list.
const hotListLimit = 4

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
}

// NewProductService is the constructor for productService.
func NewProductService(productRepo repository.ProductRepository) usecase.ProductUsecase {
	return &productService{productRepo: productRepo}
}

// HotList returns the highest-priority on-sale products.
func (srv *productService) HotList(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindHotList(ctx, hotListLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load hot list")
	}

	return products, nil
}

// GetByID returns one product's detail.
func (srv *productService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product does not exist")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}
