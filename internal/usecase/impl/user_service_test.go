package impl

import (
	"context"
	"testing"

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

const testSalt = "5C5AB38E-E64B-48E3-B118-0B1F115D2BBF"

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	t            *testing.T
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockCredentialHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockCredentialHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		t:            t,
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

// onExecute stubs the transaction manager so the callback runs against a
// factory prepared by setup, with result as the transaction outcome.
func (fx userServiceFixtures) onExecute(ctx context.Context, result error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(factory)
			_ = fn(factory)
		}).
		Return(result)
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "walter",
		Password: "123456",
		Phone:    "13512345678",
		Email:    "walter@example.com",
		Gender:   1,
	}

	var inserted *entity.Account

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockUserRepo.EXPECT().
			FindByUsername(ctx, input.Username).
			Return(nil, repository.ErrUserNotFound)

		fx.hasher.EXPECT().NewSalt().Return(testSalt)
		fx.hasher.EXPECT().Hash(input.Password, testSalt).Return("D85AB207D84617AB0596E293E063D77D")

		mockUserRepo.EXPECT().
			Insert(ctx, mock.AnythingOfType("*entity.Account")).
			Run(func(ctx context.Context, account *entity.Account) {
				inserted = account
			}).
			Return(int64(1), nil)
	})

	err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, inserted)
	assert.Equal(t, input.Username, inserted.Username)
	assert.Equal(t, "D85AB207D84617AB0596E293E063D77D", inserted.Password)
	assert.Equal(t, testSalt, inserted.Salt)
	assert.Equal(t, input.Phone, inserted.Phone)
	assert.Equal(t, input.Email, inserted.Email)
	assert.Equal(t, input.Gender, inserted.Gender)
	assert.Equal(t, input.Username, inserted.CreatedBy)
	assert.Equal(t, input.Username, inserted.ModifiedBy)
	assert.False(t, inserted.CreatedAt.IsZero())
	assert.Equal(t, inserted.CreatedAt, inserted.ModifiedAt)
}

func TestUserService_Register_UsernameTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "walter",
		Password: "123456",
	}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrUsernameTaken, "username already registered"), func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockUserRepo.EXPECT().
			FindByUsername(ctx, input.Username).
			Return(&entity.Account{ID: uuid.New(), Username: input.Username}, nil)
	})

	err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
}

// A retired username stays taken: the availability check sees soft-deleted
// rows too.
func TestUserService_Register_UsernameTakenBySoftDeletedAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "retired",
		Password: "123456",
	}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrUsernameTaken, "username already registered"), func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockUserRepo.EXPECT().
			FindByUsername(ctx, input.Username).
			Return(&entity.Account{ID: uuid.New(), Username: input.Username, IsDeleted: true}, nil)
	})

	err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
}

func TestUserService_Register_InsertConflict(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "walter",
		Password: "123456",
	}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrPersistenceConflict, "account insert affected 0 rows"), func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockUserRepo.EXPECT().
			FindByUsername(ctx, input.Username).
			Return(nil, repository.ErrUserNotFound)

		fx.hasher.EXPECT().NewSalt().Return(testSalt)
		fx.hasher.EXPECT().Hash(input.Password, testSalt).Return("D85AB207D84617AB0596E293E063D77D")

		mockUserRepo.EXPECT().
			Insert(ctx, mock.AnythingOfType("*entity.Account")).
			Return(int64(0), nil)
	})

	err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPersistenceConflict))
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Username: "walter",
		Password: "123456",
	}

	account := &entity.Account{
		ID:       uuid.New(),
		Username: input.Username,
		Password: "D85AB207D84617AB0596E293E063D77D",
		Salt:     testSalt,
		Avatar:   "/upload/abc.png",
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, input.Username).Return(account, nil)
	fx.hasher.EXPECT().Hash(input.Password, account.Salt).Return(account.Password)
	fx.tokenService.EXPECT().GenerateToken(account.ID, account.Username).Return("signed-token", nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, account.ID, output.ID)
	assert.Equal(t, account.Username, output.Username)
	assert.Equal(t, account.Avatar, output.Avatar)
	assert.Equal(t, "signed-token", output.AccessToken)
}

func TestUserService_Login_UnknownUsername(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Username: "nobody",
		Password: "123456",
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, input.Username).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Username: "walter",
		Password: "wrong-password",
	}

	account := &entity.Account{
		ID:       uuid.New(),
		Username: input.Username,
		Password: "D85AB207D84617AB0596E293E063D77D",
		Salt:     testSalt,
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, input.Username).Return(account, nil)
	fx.hasher.EXPECT().Hash(input.Password, account.Salt).Return("0123456789ABCDEF0123456789ABCDEF")

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordMismatch))
}

// The password check runs before the soft-delete check, so a wrong password
// against a deleted account still reports a mismatch, not a missing account.
func TestUserService_Login_WrongPasswordOnDeletedAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Username: "walter",
		Password: "wrong-password",
	}

	account := &entity.Account{
		ID:        uuid.New(),
		Username:  input.Username,
		Password:  "D85AB207D84617AB0596E293E063D77D",
		Salt:      testSalt,
		IsDeleted: true,
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, input.Username).Return(account, nil)
	fx.hasher.EXPECT().Hash(input.Password, account.Salt).Return("0123456789ABCDEF0123456789ABCDEF")

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordMismatch))
}

func TestUserService_Login_DeletedAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Username: "walter",
		Password: "123456",
	}

	account := &entity.Account{
		ID:        uuid.New(),
		Username:  input.Username,
		Password:  "D85AB207D84617AB0596E293E063D77D",
		Salt:      testSalt,
		IsDeleted: true,
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, input.Username).Return(account, nil)
	fx.hasher.EXPECT().Hash(input.Password, account.Salt).Return(account.Password)

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_ChangePassword_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	accountID := uuid.New()
	input := &usecase.ChangePasswordInput{
		OldPassword: "123456",
		NewPassword: "654321",
	}

	account := &entity.Account{
		ID:       accountID,
		Username: "walter",
		Password: "D85AB207D84617AB0596E293E063D77D",
		Salt:     testSalt,
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockUserRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)

		// The existing salt is reused for the new hash; no rotation.
		fx.hasher.EXPECT().Hash(input.OldPassword, testSalt).Return(account.Password)
		fx.hasher.EXPECT().Hash(input.NewPassword, testSalt).Return("9F403DCBD43C7CE1B01C88AD0226A31C")

		mockUserRepo.EXPECT().
			UpdatePassword(ctx, accountID, "9F403DCBD43C7CE1B01C88AD0226A31C", "walter", mock.AnythingOfType("time.Time")).
			Return(int64(1), nil)
	})

	err := fx.service.ChangePassword(ctx, accountID, "walter", input)

	require.NoError(t, err)
}

func TestUserService_ChangePassword_OldPasswordMismatch(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	accountID := uuid.New()
	input := &usecase.ChangePasswordInput{
		OldPassword: "wrong-password",
		NewPassword: "654321",
	}

	account := &entity.Account{
		ID:       accountID,
		Username: "walter",
		Password: "D85AB207D84617AB0596E293E063D77D",
		Salt:     testSalt,
	}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrPasswordMismatch, "old password does not match"), func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockUserRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
		fx.hasher.EXPECT().Hash(input.OldPassword, testSalt).Return("0123456789ABCDEF0123456789ABCDEF")
	})

	err := fx.service.ChangePassword(ctx, accountID, "walter", input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordMismatch))
}

func TestUserService_ChangePassword_UpdateConflict(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	accountID := uuid.New()
	input := &usecase.ChangePasswordInput{
		OldPassword: "123456",
		NewPassword: "654321",
	}

	account := &entity.Account{
		ID:       accountID,
		Username: "walter",
		Password: "D85AB207D84617AB0596E293E063D77D",
		Salt:     testSalt,
	}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrPersistenceConflict, "password update affected 0 rows"), func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockUserRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
		fx.hasher.EXPECT().Hash(input.OldPassword, testSalt).Return(account.Password)
		fx.hasher.EXPECT().Hash(input.NewPassword, testSalt).Return("9F403DCBD43C7CE1B01C88AD0226A31C")

		mockUserRepo.EXPECT().
			UpdatePassword(ctx, accountID, "9F403DCBD43C7CE1B01C88AD0226A31C", "walter", mock.AnythingOfType("time.Time")).
			Return(int64(0), nil)
	})

	err := fx.service.ChangePassword(ctx, accountID, "walter", input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPersistenceConflict))
}

func TestUserService_GetProfile_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	accountID := uuid.New()

	account := &entity.Account{
		ID:       accountID,
		Username: "walter",
		Password: "D85AB207D84617AB0596E293E063D77D",
		Salt:     testSalt,
		Phone:    "13512345678",
		Email:    "walter@example.com",
		Gender:   1,
	}

	fx.userRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)

	profile, err := fx.service.GetProfile(ctx, accountID)

	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, account.Username, profile.Username)
	assert.Equal(t, account.Phone, profile.Phone)
	assert.Equal(t, account.Email, profile.Email)
	assert.Equal(t, account.Gender, profile.Gender)
}

func TestUserService_GetProfile_DeletedAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	accountID := uuid.New()

	account := &entity.Account{
		ID:        accountID,
		Username:  "walter",
		IsDeleted: true,
	}

	fx.userRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)

	profile, err := fx.service.GetProfile(ctx, accountID)

	assert.Error(t, err)
	assert.Nil(t, profile)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_ChangeProfile_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	accountID := uuid.New()
	input := &usecase.UpdateProfileInput{
		Phone:  "13987654321",
		Email:  "new@example.com",
		Gender: 0,
	}

	account := &entity.Account{
		ID:       accountID,
		Username: "walter",
		Phone:    "13512345678",
		Email:    "walter@example.com",
		Gender:   1,
	}

	var updated *entity.Account

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockUserRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
		mockUserRepo.EXPECT().
			UpdateProfile(ctx, mock.AnythingOfType("*entity.Account")).
			Run(func(ctx context.Context, account *entity.Account) {
				updated = account
			}).
			Return(int64(1), nil)
	})

	err := fx.service.ChangeProfile(ctx, accountID, "walter", input)

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, input.Phone, updated.Phone)
	assert.Equal(t, input.Email, updated.Email)
	assert.Equal(t, input.Gender, updated.Gender)
	assert.Equal(t, "walter", updated.ModifiedBy)
	assert.False(t, updated.ModifiedAt.IsZero())
}

func TestUserService_ChangeAvatar_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	accountID := uuid.New()

	account := &entity.Account{
		ID:       accountID,
		Username: "walter",
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockUserRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
		mockUserRepo.EXPECT().
			UpdateAvatar(ctx, accountID, "/upload/avatar.png", "walter", mock.AnythingOfType("time.Time")).
			Return(int64(1), nil)
	})

	err := fx.service.ChangeAvatar(ctx, accountID, "walter", "/upload/avatar.png")

	require.NoError(t, err)
}

func TestUserService_ChangeAvatar_AccountMissing(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	accountID := uuid.New()

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrUserNotFound, "account does not exist"), func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockUserRepo.EXPECT().FindByID(ctx, accountID).Return(nil, repository.ErrUserNotFound)
	})

	err := fx.service.ChangeAvatar(ctx, accountID, "walter", "/upload/avatar.png")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
