// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "store/internal/delivery/context"
	"store/internal/domain/entity"
	domainerrors "store/internal/domain/errors"
	"store/internal/domain/repository"
	"store/internal/domain/service"
	"store/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.CredentialHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.CredentialHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account with a fresh salt and the iterated
// credential hash. The username check covers soft-deleted rows too: a
// retired username stays taken.
//
// The check is read-then-write with no unique constraint backing it, so two
// concurrent registrations of the same username can both pass. Known race,
// kept as-is.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) error {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindByUsername(ctx, input.Username)
		if err == nil {
			return errors.Wrap(domainerrors.ErrUsernameTaken, "username already registered")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check username availability")
		}

		salt := srv.hasher.NewSalt()
		account := &entity.Account{
			Username: input.Username,
			Password: srv.hasher.Hash(input.Password, salt),
			Salt:     salt,
			Phone:    input.Phone,
			Email:    input.Email,
			Gender:   input.Gender,
		}
		account.StampCreate(input.Username, time.Now())

		rows, err := userRepo.Insert(ctx, account)
		if err != nil {
			return errors.Wrap(err, "failed to insert account")
		}
		if rows != 1 {
			return errors.Wrapf(domainerrors.ErrPersistenceConflict, "account insert affected %d rows", rows)
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("username", input.Username), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.String("username", input.Username))

	return nil
}

// Login verifies the credentials and returns the public account view plus an
// access token. Unknown usernames and soft-deleted accounts surface as the
// same not-found condition; the soft-delete flag is checked after password
// verification, preserving the observable ordering of the stored-data
// contract.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("username", input.Username))

	account, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load account for login")
	}

	if srv.hasher.Hash(input.Password, account.Salt) != account.Password {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", domainerrors.ErrPasswordMismatch))

		return nil, errors.Wrap(domainerrors.ErrPasswordMismatch, "login failed")
	}

	if account.IsDeleted {
		return nil, errors.Wrap(domainerrors.ErrUserNotFound, "login failed")
	}

	token, err := srv.tokenService.GenerateToken(account.ID, account.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Debug("Login completed", slog.Any("accountID", account.ID))

	return &usecase.LoginOutput{
		ID:          account.ID,
		Username:    account.Username,
		Avatar:      account.Avatar,
		AccessToken: token,
	}, nil
}

// ChangePassword rehashes with the account's existing salt; the salt is
// never rotated on password change.
func (srv *userService) ChangePassword(ctx context.Context, id uuid.UUID, actor string, input *usecase.ChangePasswordInput) error {
	srv.log(ctx).Info("Changing password", slog.Any("accountID", id))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		account, err := srv.findLiveAccount(ctx, userRepo, id)
		if err != nil {
			return err
		}

		if srv.hasher.Hash(input.OldPassword, account.Salt) != account.Password {
			return errors.Wrap(domainerrors.ErrPasswordMismatch, "old password does not match")
		}

		newHash := srv.hasher.Hash(input.NewPassword, account.Salt)

		rows, err := userRepo.UpdatePassword(ctx, id, newHash, actor, time.Now())
		if err != nil {
			return errors.Wrap(err, "failed to update password")
		}
		if rows != 1 {
			return errors.Wrapf(domainerrors.ErrPersistenceConflict, "password update affected %d rows", rows)
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Password change failed", slog.Any("accountID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute password change transaction")
	}

	return nil
}

// GetProfile returns the public profile fields only.
func (srv *userService) GetProfile(ctx context.Context, id uuid.UUID) (*usecase.ProfileOutput, error) {
	account, err := srv.findLiveAccount(ctx, srv.userRepo, id)
	if err != nil {
		return nil, err
	}

	return &usecase.ProfileOutput{
		Username: account.Username,
		Phone:    account.Phone,
		Email:    account.Email,
		Gender:   account.Gender,
	}, nil
}

// ChangeProfile updates phone/email/gender and stamps the modifier pair.
func (srv *userService) ChangeProfile(ctx context.Context, id uuid.UUID, actor string, input *usecase.UpdateProfileInput) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		account, err := srv.findLiveAccount(ctx, userRepo, id)
		if err != nil {
			return err
		}

		account.Phone = input.Phone
		account.Email = input.Email
		account.Gender = input.Gender
		account.StampModify(actor, time.Now())

		rows, err := userRepo.UpdateProfile(ctx, account)
		if err != nil {
			return errors.Wrap(err, "failed to update profile")
		}
		if rows != 1 {
			return errors.Wrapf(domainerrors.ErrPersistenceConflict, "profile update affected %d rows", rows)
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Profile change failed", slog.Any("accountID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute profile change transaction")
	}

	return nil
}

// ChangeAvatar associates a stored avatar path with the account.
func (srv *userService) ChangeAvatar(ctx context.Context, id uuid.UUID, actor string, avatar string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if _, err := srv.findLiveAccount(ctx, userRepo, id); err != nil {
			return err
		}

		rows, err := userRepo.UpdateAvatar(ctx, id, avatar, actor, time.Now())
		if err != nil {
			return errors.Wrap(err, "failed to update avatar")
		}
		if rows != 1 {
			return errors.Wrapf(domainerrors.ErrPersistenceConflict, "avatar update affected %d rows", rows)
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Avatar change failed", slog.Any("accountID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute avatar change transaction")
	}

	return nil
}

// findLiveAccount loads an account and treats soft-deleted rows as absent.
func (srv *userService) findLiveAccount(ctx context.Context, userRepo repository.UserRepository, id uuid.UUID) (*entity.Account, error) {
	account, err := userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "account does not exist")
		}

		return nil, errors.Wrap(err, "failed to find account")
	}
	if account.IsDeleted {
		return nil, errors.Wrap(domainerrors.ErrUserNotFound, "account does not exist")
	}

	return account, nil
}
