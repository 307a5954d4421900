package impl

import (
	"context"
	"testing"
	"time"

	"store/internal/domain/entity"
	domainerrors "store/internal/domain/errors"
	"store/internal/domain/repository"
	mockRepo "store/internal/mocks/repository"
	mockSvc "store/internal/mocks/service"
	"store/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// addressServiceFixtures holds all test dependencies for address service tests.
type addressServiceFixtures struct {
	t           *testing.T
	service     usecase.AddressUsecase
	txManager   *mockRepo.MockTransactionManager
	addressRepo *mockRepo.MockAddressRepository
	regions     *mockSvc.MockRegionNameResolver
}

func createTestAddressService(t *testing.T) addressServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	addressRepo := mockRepo.NewMockAddressRepository(t)
	regions := mockSvc.NewMockRegionNameResolver(t)

	service := NewAddressService(AddressServiceParams{
		TxManager:   txManager,
		AddressRepo: addressRepo,
		Regions:     regions,
		Config:      newTestConfig(20),
		Logger:      newDiscardLogger(),
	})

	return addressServiceFixtures{
		t:           t,
		service:     service,
		txManager:   txManager,
		addressRepo: addressRepo,
		regions:     regions,
	}
}

// onExecute stubs the transaction manager so the callback runs against a
// factory prepared by setup, with result as the transaction outcome.
func (fx addressServiceFixtures) onExecute(ctx context.Context, result error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(factory)
			_ = fn(factory)
		}).
		Return(result)
}

func newAddAddressInput() *usecase.AddAddressInput {
	return &usecase.AddAddressInput{
		Name:         "王小明",
		Phone:        "13512345678",
		ProvinceCode: "440000",
		CityCode:     "440300",
		AreaCode:     "440305",
		Detail:       "科技園路1號",
		Zip:          "518000",
		Tag:          "家",
	}
}

func (fx addressServiceFixtures) expectRegionNames(ctx context.Context, input *usecase.AddAddressInput) {
	fx.regions.EXPECT().ResolveName(ctx, input.ProvinceCode).Return("廣東省", nil)
	fx.regions.EXPECT().ResolveName(ctx, input.CityCode).Return("深圳市", nil)
	fx.regions.EXPECT().ResolveName(ctx, input.AreaCode).Return("南山區", nil)
}

// The owner's very first address becomes the default.
func TestAddressService_Add_FirstAddressBecomesDefault(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := newAddAddressInput()

	var inserted *entity.ShippingAddress

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().AddressRepo().Return(mockAddressRepo)

		mockAddressRepo.EXPECT().CountByOwner(ctx, ownerID).Return(int64(0), nil)
		fx.expectRegionNames(ctx, input)

		mockAddressRepo.EXPECT().
			Insert(ctx, mock.AnythingOfType("*entity.ShippingAddress")).
			Run(func(ctx context.Context, address *entity.ShippingAddress) {
				inserted = address
			}).
			Return(int64(1), nil)
	})

	created, err := fx.service.Add(ctx, ownerID, "walter", input)

	require.NoError(t, err)
	require.NotNil(t, created)
	require.NotNil(t, inserted)
	assert.True(t, inserted.IsDefault)
	assert.Equal(t, ownerID, inserted.OwnerID)
	assert.Equal(t, input.Name, inserted.Name)
	assert.Equal(t, "廣東省", inserted.ProvinceName)
	assert.Equal(t, "深圳市", inserted.CityName)
	assert.Equal(t, "南山區", inserted.AreaName)
	assert.Equal(t, "walter", inserted.CreatedBy)
	assert.Equal(t, "walter", inserted.ModifiedBy)
}

func TestAddressService_Add_LaterAddressIsNotDefault(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := newAddAddressInput()

	var inserted *entity.ShippingAddress

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().AddressRepo().Return(mockAddressRepo)

		mockAddressRepo.EXPECT().CountByOwner(ctx, ownerID).Return(int64(3), nil)
		fx.expectRegionNames(ctx, input)

		mockAddressRepo.EXPECT().
			Insert(ctx, mock.AnythingOfType("*entity.ShippingAddress")).
			Run(func(ctx context.Context, address *entity.ShippingAddress) {
				inserted = address
			}).
			Return(int64(1), nil)
	})

	created, err := fx.service.Add(ctx, ownerID, "walter", input)

	require.NoError(t, err)
	require.NotNil(t, created)
	require.NotNil(t, inserted)
	assert.False(t, inserted.IsDefault)
}

func TestAddressService_Add_LimitExceeded(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := newAddAddressInput()

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrAddressLimitExceeded, "owner has 20 of 20 addresses"), func(factory *mockRepo.MockRepositoryFactory) {
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().AddressRepo().Return(mockAddressRepo)

		mockAddressRepo.EXPECT().CountByOwner(ctx, ownerID).Return(int64(20), nil)
	})

	created, err := fx.service.Add(ctx, ownerID, "walter", input)

	assert.Error(t, err)
	assert.Nil(t, created)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressLimitExceeded))
}

func TestAddressService_List_Success(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	expected := []*entity.ShippingAddress{
		{ID: uuid.New(), OwnerID: ownerID, IsDefault: true},
		{ID: uuid.New(), OwnerID: ownerID},
	}

	fx.addressRepo.EXPECT().FindByOwner(ctx, ownerID).Return(expected, nil)

	addresses, err := fx.service.List(ctx, ownerID)

	require.NoError(t, err)
	assert.Equal(t, expected, addresses)
}

// GetDetail strips the region codes and audit fields before the address
// leaves the service layer.
func TestAddressService_GetDetail_BlanksInternalFields(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	addressID := uuid.New()

	stored := &entity.ShippingAddress{
		ID:           addressID,
		OwnerID:      ownerID,
		Name:         "王小明",
		Phone:        "13512345678",
		ProvinceCode: "440000",
		ProvinceName: "廣東省",
		CityCode:     "440300",
		CityName:     "深圳市",
		AreaCode:     "440305",
		AreaName:     "南山區",
		Detail:       "科技園路1號",
		IsDefault:    true,
		Audit: entity.Audit{
			CreatedBy:  "walter",
			CreatedAt:  time.Now(),
			ModifiedBy: "walter",
			ModifiedAt: time.Now(),
		},
	}

	fx.addressRepo.EXPECT().FindByID(ctx, addressID).Return(stored, nil)

	address, err := fx.service.GetDetail(ctx, addressID, ownerID)

	require.NoError(t, err)
	require.NotNil(t, address)
	assert.Empty(t, address.ProvinceCode)
	assert.Empty(t, address.CityCode)
	assert.Empty(t, address.AreaCode)
	assert.Equal(t, entity.Audit{}, address.Audit)
	assert.Equal(t, "廣東省", address.ProvinceName)
	assert.Equal(t, "王小明", address.Name)
	assert.True(t, address.IsDefault)
}

func TestAddressService_GetDetail_NotFound(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	addressID := uuid.New()

	fx.addressRepo.EXPECT().FindByID(ctx, addressID).Return(nil, repository.ErrAddressNotFound)

	address, err := fx.service.GetDetail(ctx, addressID, ownerID)

	assert.Error(t, err)
	assert.Nil(t, address)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotFound))
}

// An address owned by someone else reports access denied, not absence; the
// existence check runs before the ownership check.
func TestAddressService_GetDetail_WrongOwner(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	addressID := uuid.New()

	stored := &entity.ShippingAddress{
		ID:      addressID,
		OwnerID: uuid.New(),
	}

	fx.addressRepo.EXPECT().FindByID(ctx, addressID).Return(stored, nil)

	address, err := fx.service.GetDetail(ctx, addressID, uuid.New())

	assert.Error(t, err)
	assert.Nil(t, address)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressAccessDenied))
}

// SetDefault clears the flag on every address the owner has before raising
// it on the target.
func TestAddressService_SetDefault_ClearsThenSets(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	addressID := uuid.New()

	stored := &entity.ShippingAddress{
		ID:      addressID,
		OwnerID: ownerID,
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().AddressRepo().Return(mockAddressRepo)

		mockAddressRepo.EXPECT().FindByID(ctx, addressID).Return(stored, nil)
		mockAddressRepo.EXPECT().ClearDefaultsByOwner(ctx, ownerID).Return(int64(3), nil)
		mockAddressRepo.EXPECT().
			SetDefaultByID(ctx, addressID, "walter", mock.AnythingOfType("time.Time")).
			Return(int64(1), nil)
	})

	err := fx.service.SetDefault(ctx, addressID, ownerID, "walter")

	require.NoError(t, err)
}

// Zero cleared rows right after the existence check passed means the write
// path is broken, so the operation fails instead of continuing.
func TestAddressService_SetDefault_ClearConflict(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	addressID := uuid.New()

	stored := &entity.ShippingAddress{
		ID:      addressID,
		OwnerID: ownerID,
	}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrPersistenceConflict, "clearing defaults affected 0 rows"), func(factory *mockRepo.MockRepositoryFactory) {
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().AddressRepo().Return(mockAddressRepo)

		mockAddressRepo.EXPECT().FindByID(ctx, addressID).Return(stored, nil)
		mockAddressRepo.EXPECT().ClearDefaultsByOwner(ctx, ownerID).Return(int64(0), nil)
	})

	err := fx.service.SetDefault(ctx, addressID, ownerID, "walter")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPersistenceConflict))
}

func TestAddressService_SetDefault_WrongOwner(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	addressID := uuid.New()

	stored := &entity.ShippingAddress{
		ID:      addressID,
		OwnerID: uuid.New(),
	}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrAddressAccessDenied, "address belongs to another account"), func(factory *mockRepo.MockRepositoryFactory) {
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().AddressRepo().Return(mockAddressRepo)

		mockAddressRepo.EXPECT().FindByID(ctx, addressID).Return(stored, nil)
	})

	err := fx.service.SetDefault(ctx, addressID, uuid.New(), "walter")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressAccessDenied))
}

// Deleting the default address promotes the most recently modified of the
// remaining ones.
func TestAddressService_Delete_DefaultPromotesMostRecentlyModified(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	addressID := uuid.New()
	replacementID := uuid.New()

	stored := &entity.ShippingAddress{
		ID:        addressID,
		OwnerID:   ownerID,
		IsDefault: true,
	}
	replacement := &entity.ShippingAddress{
		ID:      replacementID,
		OwnerID: ownerID,
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().AddressRepo().Return(mockAddressRepo)

		mockAddressRepo.EXPECT().FindByID(ctx, addressID).Return(stored, nil)
		mockAddressRepo.EXPECT().DeleteByID(ctx, addressID).Return(int64(1), nil)
		mockAddressRepo.EXPECT().CountByOwner(ctx, ownerID).Return(int64(2), nil)
		mockAddressRepo.EXPECT().FindMostRecentlyModified(ctx, ownerID).Return(replacement, nil)
		mockAddressRepo.EXPECT().
			SetDefaultByID(ctx, replacementID, "walter", mock.AnythingOfType("time.Time")).
			Return(int64(1), nil)
	})

	err := fx.service.Delete(ctx, addressID, ownerID, "walter")

	require.NoError(t, err)
}

// Deleting a non-default address never touches the default flag.
func TestAddressService_Delete_NonDefaultSkipsPromotion(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	addressID := uuid.New()

	stored := &entity.ShippingAddress{
		ID:      addressID,
		OwnerID: ownerID,
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().AddressRepo().Return(mockAddressRepo)

		mockAddressRepo.EXPECT().FindByID(ctx, addressID).Return(stored, nil)
		mockAddressRepo.EXPECT().DeleteByID(ctx, addressID).Return(int64(1), nil)
		mockAddressRepo.EXPECT().CountByOwner(ctx, ownerID).Return(int64(2), nil)
	})

	err := fx.service.Delete(ctx, addressID, ownerID, "walter")

	require.NoError(t, err)
}

// Deleting the owner's last address leaves nothing to promote.
func TestAddressService_Delete_LastAddressSkipsPromotion(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	addressID := uuid.New()

	stored := &entity.ShippingAddress{
		ID:        addressID,
		OwnerID:   ownerID,
		IsDefault: true,
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().AddressRepo().Return(mockAddressRepo)

		mockAddressRepo.EXPECT().FindByID(ctx, addressID).Return(stored, nil)
		mockAddressRepo.EXPECT().DeleteByID(ctx, addressID).Return(int64(1), nil)
		mockAddressRepo.EXPECT().CountByOwner(ctx, ownerID).Return(int64(0), nil)
	})

	err := fx.service.Delete(ctx, addressID, ownerID, "walter")

	require.NoError(t, err)
}

func TestAddressService_Delete_NotFound(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	addressID := uuid.New()

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrAddressNotFound, "address does not exist"), func(factory *mockRepo.MockRepositoryFactory) {
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().AddressRepo().Return(mockAddressRepo)

		mockAddressRepo.EXPECT().FindByID(ctx, addressID).Return(nil, repository.ErrAddressNotFound)
	})

	err := fx.service.Delete(ctx, addressID, ownerID, "walter")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotFound))
}

func TestAddressService_Delete_DeleteConflict(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	addressID := uuid.New()

	stored := &entity.ShippingAddress{
		ID:      addressID,
		OwnerID: ownerID,
	}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrPersistenceConflict, "address delete affected 0 rows"), func(factory *mockRepo.MockRepositoryFactory) {
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().AddressRepo().Return(mockAddressRepo)

		mockAddressRepo.EXPECT().FindByID(ctx, addressID).Return(stored, nil)
		mockAddressRepo.EXPECT().DeleteByID(ctx, addressID).Return(int64(0), nil)
	})

	err := fx.service.Delete(ctx, addressID, ownerID, "walter")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPersistenceConflict))
}
