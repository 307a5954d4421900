package impl

import (
	"context"
	"testing"

	"store/internal/domain/entity"
	domainerrors "store/internal/domain/errors"
	"store/internal/domain/repository"
	mockRepo "store/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductService_HotList_Success(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewProductService(productRepo)

	ctx := context.Background()
	expected := []*entity.Product{
		{ID: uuid.New(), Title: "保溫杯", Price: 9900, Priority: 10},
		{ID: uuid.New(), Title: "雨傘", Price: 4500, Priority: 8},
	}

	productRepo.EXPECT().FindHotList(ctx, hotListLimit).Return(expected, nil)

	products, err := service.HotList(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, products)
}

func TestProductService_HotList_RepositoryError(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewProductService(productRepo)

	ctx := context.Background()

	productRepo.EXPECT().FindHotList(ctx, hotListLimit).Return(nil, errors.New("db error"))

	products, err := service.HotList(ctx)

	assert.Error(t, err)
	assert.Nil(t, products)
	assert.Contains(t, err.Error(), "failed to load hot list")
}

func TestProductService_GetByID_Success(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewProductService(productRepo)

	ctx := context.Background()
	expected := &entity.Product{
		ID:        uuid.New(),
		Title:     "保溫杯",
		SellPoint: "保溫24小時",
		Price:     9900,
		Status:    1,
	}

	productRepo.EXPECT().FindByID(ctx, expected.ID).Return(expected, nil)

	product, err := service.GetByID(ctx, expected.ID)

	require.NoError(t, err)
	assert.Equal(t, expected, product)
}

func TestProductService_GetByID_NotFound(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewProductService(productRepo)

	ctx := context.Background()
	productID := uuid.New()

	productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	product, err := service.GetByID(ctx, productID)

	assert.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}
