package postgres

import (
	"context"

	"store/internal/domain/entity"
	"store/internal/domain/repository"
	"store/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// On-sale status value in the products table.
const productStatusOnSale = 1

// productRepository implements the repository.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindHotList retrieves the highest-priority on-sale products.
func (repo *productRepository) FindHotList(ctx context.Context, limit int) ([]*entity.Product, error) {
	var productMs []*model.ProductModel
	err := repo.db.WithContext(ctx).
		Where("status = ?", productStatusOnSale).
		Order("priority DESC").
		Limit(limit).
		Find(&productMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list hot products")
	}

	products := make([]*entity.Product, 0, len(productMs))
	for _, productM := range productMs {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// FindByID retrieves one product by its id.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:         data.ID,
		CategoryID: data.CategoryID,
		ItemType:   data.ItemType,
		Title:      data.Title,
		SellPoint:  data.SellPoint,
		Price:      data.Price,
		Num:        data.Num,
		Image:      data.Image,
		Status:     data.Status,
		Priority:   data.Priority,
		Audit:      toAuditDomain(data.AuditColumns),
	}
}
