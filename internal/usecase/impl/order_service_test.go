package impl

import (
	"context"
	"testing"

	"store/internal/domain/entity"
	domainerrors "store/internal/domain/errors"
	"store/internal/domain/repository"
	mockRepo "store/internal/mocks/repository"
	"store/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	t         *testing.T
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)

	service := NewOrderService(OrderServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		Logger:    newDiscardLogger(),
	})

	return orderServiceFixtures{
		t:         t,
		service:   service,
		txManager: txManager,
		orderRepo: orderRepo,
	}
}

// onExecute stubs the transaction manager so the callback runs against a
// factory prepared by setup, with result as the transaction outcome.
func (fx orderServiceFixtures) onExecute(ctx context.Context, result error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(factory)
			_ = fn(factory)
		}).
		Return(result)
}

func newTestShippingAddress(ownerID uuid.UUID) *entity.ShippingAddress {
	return &entity.ShippingAddress{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		Name:         "王小明",
		Phone:        "13512345678",
		ProvinceName: "廣東省",
		CityName:     "深圳市",
		AreaName:     "南山區",
		Detail:       "科技園路1號",
	}
}

func TestOrderService_Create_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	orderID := uuid.New()
	address := newTestShippingAddress(ownerID)

	cup := &entity.Product{ID: uuid.New(), Title: "保溫杯", Image: "/upload/cup.png", Price: 9900}
	umbrella := &entity.Product{ID: uuid.New(), Title: "雨傘", Image: "/upload/umbrella.png", Price: 4500}

	input := &usecase.CreateOrderInput{
		AddressID: address.ID,
		Items: []usecase.CreateOrderItemInput{
			{ProductID: cup.ID, Num: 2},
			{ProductID: umbrella.ID, Num: 1},
		},
	}

	var insertedItems []*entity.OrderItem

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)

		factory.EXPECT().AddressRepo().Return(mockAddressRepo)
		factory.EXPECT().ProductRepo().Return(mockProductRepo)
		factory.EXPECT().OrderRepo().Return(mockOrderRepo)

		mockAddressRepo.EXPECT().FindByID(ctx, address.ID).Return(address, nil)
		mockProductRepo.EXPECT().FindByID(ctx, cup.ID).Return(cup, nil)
		mockProductRepo.EXPECT().FindByID(ctx, umbrella.ID).Return(umbrella, nil)

		mockOrderRepo.EXPECT().
			InsertOrder(ctx, mock.AnythingOfType("*entity.Order")).
			Run(func(ctx context.Context, order *entity.Order) {
				order.ID = orderID
			}).
			Return(int64(1), nil)

		mockOrderRepo.EXPECT().
			InsertOrderItem(ctx, mock.AnythingOfType("*entity.OrderItem")).
			Run(func(ctx context.Context, item *entity.OrderItem) {
				insertedItems = append(insertedItems, item)
			}).
			Return(int64(1), nil)
	})

	order, err := fx.service.Create(ctx, ownerID, "walter", input)

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, orderID, order.ID)
	assert.Equal(t, ownerID, order.OwnerID)
	assert.Equal(t, address.Name, order.RecvName)
	assert.Equal(t, address.Phone, order.RecvPhone)
	assert.Equal(t, address.ProvinceName, order.RecvProvince)
	assert.Equal(t, address.CityName, order.RecvCity)
	assert.Equal(t, address.AreaName, order.RecvArea)
	assert.Equal(t, address.Detail, order.RecvAddress)
	assert.Equal(t, int64(2*9900+4500), order.TotalPrice)
	assert.Equal(t, "walter", order.CreatedBy)
	assert.False(t, order.OrderedAt.IsZero())

	require.Len(t, insertedItems, 2)
	require.Len(t, order.Items, 2)
	assert.Equal(t, orderID, insertedItems[0].OrderID)
	assert.Equal(t, cup.ID, insertedItems[0].ProductID)
	assert.Equal(t, cup.Title, insertedItems[0].Title)
	assert.Equal(t, cup.Image, insertedItems[0].Image)
	assert.Equal(t, cup.Price, insertedItems[0].Price)
	assert.Equal(t, 2, insertedItems[0].Num)
	assert.Equal(t, umbrella.ID, insertedItems[1].ProductID)
}

func TestOrderService_Create_AddressNotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := &usecase.CreateOrderInput{
		AddressID: uuid.New(),
		Items:     []usecase.CreateOrderItemInput{{ProductID: uuid.New(), Num: 1}},
	}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrAddressNotFound, "shipping address does not exist"), func(factory *mockRepo.MockRepositoryFactory) {
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)

		factory.EXPECT().AddressRepo().Return(mockAddressRepo)
		factory.EXPECT().ProductRepo().Return(mockProductRepo)
		factory.EXPECT().OrderRepo().Return(mockOrderRepo)

		mockAddressRepo.EXPECT().FindByID(ctx, input.AddressID).Return(nil, repository.ErrAddressNotFound)
	})

	order, err := fx.service.Create(ctx, ownerID, "walter", input)

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotFound))
}

// Ordering against someone else's shipping address is denied.
func TestOrderService_Create_AddressWrongOwner(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	address := newTestShippingAddress(uuid.New())
	input := &usecase.CreateOrderInput{
		AddressID: address.ID,
		Items:     []usecase.CreateOrderItemInput{{ProductID: uuid.New(), Num: 1}},
	}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrAddressAccessDenied, "shipping address belongs to another account"), func(factory *mockRepo.MockRepositoryFactory) {
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)

		factory.EXPECT().AddressRepo().Return(mockAddressRepo)
		factory.EXPECT().ProductRepo().Return(mockProductRepo)
		factory.EXPECT().OrderRepo().Return(mockOrderRepo)

		mockAddressRepo.EXPECT().FindByID(ctx, address.ID).Return(address, nil)
	})

	order, err := fx.service.Create(ctx, uuid.New(), "walter", input)

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressAccessDenied))
}

func TestOrderService_Create_ProductNotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	address := newTestShippingAddress(ownerID)
	productID := uuid.New()
	input := &usecase.CreateOrderInput{
		AddressID: address.ID,
		Items:     []usecase.CreateOrderItemInput{{ProductID: productID, Num: 1}},
	}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrProductNotFound, "ordered product does not exist"), func(factory *mockRepo.MockRepositoryFactory) {
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)

		factory.EXPECT().AddressRepo().Return(mockAddressRepo)
		factory.EXPECT().ProductRepo().Return(mockProductRepo)
		factory.EXPECT().OrderRepo().Return(mockOrderRepo)

		mockAddressRepo.EXPECT().FindByID(ctx, address.ID).Return(address, nil)
		mockProductRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)
	})

	order, err := fx.service.Create(ctx, ownerID, "walter", input)

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestOrderService_Create_InsertConflict(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	address := newTestShippingAddress(ownerID)
	product := &entity.Product{ID: uuid.New(), Title: "保溫杯", Price: 9900}
	input := &usecase.CreateOrderInput{
		AddressID: address.ID,
		Items:     []usecase.CreateOrderItemInput{{ProductID: product.ID, Num: 1}},
	}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrOrderCreateFailed, "order insert affected 0 rows"), func(factory *mockRepo.MockRepositoryFactory) {
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)

		factory.EXPECT().AddressRepo().Return(mockAddressRepo)
		factory.EXPECT().ProductRepo().Return(mockProductRepo)
		factory.EXPECT().OrderRepo().Return(mockOrderRepo)

		mockAddressRepo.EXPECT().FindByID(ctx, address.ID).Return(address, nil)
		mockProductRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
		mockOrderRepo.EXPECT().
			InsertOrder(ctx, mock.AnythingOfType("*entity.Order")).
			Return(int64(0), nil)
	})

	order, err := fx.service.Create(ctx, ownerID, "walter", input)

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderCreateFailed))
}

func TestOrderService_ListByOwner_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	expected := []*entity.Order{
		{ID: uuid.New(), OwnerID: ownerID, TotalPrice: 9900},
		{ID: uuid.New(), OwnerID: ownerID, TotalPrice: 4500},
	}

	fx.orderRepo.EXPECT().FindByOwner(ctx, ownerID).Return(expected, nil)

	orders, err := fx.service.ListByOwner(ctx, ownerID)

	require.NoError(t, err)
	assert.Equal(t, expected, orders)
}
