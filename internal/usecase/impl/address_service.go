package impl

import (
	"context"
	"log/slog"
	"time"

	"store/config"
	"store/internal/domain/entity"
	domainerrors "store/internal/domain/errors"
	"store/internal/domain/repository"
	"store/internal/domain/service"
	"store/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultAddressMaxCount = 20

// addressService implements the AddressUsecase interface. Every multi-step
// operation runs inside one transaction so the single-default invariant
// holds under concurrent calls for the same owner.
type addressService struct {
	txManager   repository.TransactionManager
	addressRepo repository.AddressRepository
	regions     service.RegionNameResolver
	maxCount    int64
	logger      *slog.Logger
}

// AddressServiceParams holds dependencies for addressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AddressRepo repository.AddressRepository
	Regions     service.RegionNameResolver
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	maxCount := int64(defaultAddressMaxCount)
	if params.Config != nil && params.Config.User != nil && params.Config.User.Address.MaxCount > 0 {
		maxCount = int64(params.Config.User.Address.MaxCount)
	}

	return &addressService{
		txManager:   params.TxManager,
		addressRepo: params.AddressRepo,
		regions:     params.Regions,
		maxCount:    maxCount,
		logger:      params.Logger,
	}
}

// Add creates a new shipping address for the owner. The owner's very first
// address becomes the default; every later one starts non-default.
func (srv *addressService) Add(ctx context.Context, ownerID uuid.UUID, actor string, input *usecase.AddAddressInput) (*entity.ShippingAddress, error) {
	var created *entity.ShippingAddress

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		count, err := addressRepo.CountByOwner(ctx, ownerID)
		if err != nil {
			return errors.Wrap(err, "failed to count addresses")
		}
		if count >= srv.maxCount {
			return errors.Wrapf(domainerrors.ErrAddressLimitExceeded, "owner has %d of %d addresses", count, srv.maxCount)
		}

		address := &entity.ShippingAddress{
			OwnerID:      ownerID,
			Name:         input.Name,
			Phone:        input.Phone,
			ProvinceCode: input.ProvinceCode,
			CityCode:     input.CityCode,
			AreaCode:     input.AreaCode,
			Detail:       input.Detail,
			Zip:          input.Zip,
			Tag:          input.Tag,
			IsDefault:    count == 0,
		}
		if err := srv.resolveRegionNames(ctx, address); err != nil {
			return err
		}
		address.StampCreate(actor, time.Now())

		rows, err := addressRepo.Insert(ctx, address)
		if err != nil {
			return errors.Wrap(err, "failed to insert address")
		}
		if rows != 1 {
			return errors.Wrapf(domainerrors.ErrPersistenceConflict, "address insert affected %d rows", rows)
		}

		created = address

		return nil
	})

	if err != nil {
		srv.logger.Warn("Add address failed", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute add address transaction")
	}

	return created, nil
}

// List returns all addresses the owner has, default first.
func (srv *addressService) List(ctx context.Context, ownerID uuid.UUID) ([]*entity.ShippingAddress, error) {
	addresses, err := srv.addressRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return addresses, nil
}

// GetDetail returns one address with the region codes and audit fields
// blanked; only recipient and display fields leave this layer.
func (srv *addressService) GetDetail(ctx context.Context, id, ownerID uuid.UUID) (*entity.ShippingAddress, error) {
	address, err := srv.findOwned(ctx, srv.addressRepo, id, ownerID)
	if err != nil {
		return nil, err
	}

	address.ProvinceCode = ""
	address.CityCode = ""
	address.AreaCode = ""
	address.Audit = entity.Audit{}

	return address, nil
}

// SetDefault makes the given address the owner's default by clearing the
// flag on every address the owner has and then raising it on the target.
// Clearing unconditionally avoids depending on which row previously carried
// the flag.
func (srv *addressService) SetDefault(ctx context.Context, id, ownerID uuid.UUID, actor string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		if _, err := srv.findOwned(ctx, addressRepo, id, ownerID); err != nil {
			return err
		}

		rows, err := addressRepo.ClearDefaultsByOwner(ctx, ownerID)
		if err != nil {
			return errors.Wrap(err, "failed to clear default flags")
		}
		// The existence check just passed, so the owner has at least one
		// address; zero cleared rows is an invariant violation.
		if rows < 1 {
			return errors.Wrapf(domainerrors.ErrPersistenceConflict, "clearing defaults affected %d rows", rows)
		}

		rows, err = addressRepo.SetDefaultByID(ctx, id, actor, time.Now())
		if err != nil {
			return errors.Wrap(err, "failed to set default flag")
		}
		if rows != 1 {
			return errors.Wrapf(domainerrors.ErrPersistenceConflict, "setting default affected %d rows", rows)
		}

		return nil
	})

	if err != nil {
		srv.logger.Warn("Set default address failed", slog.Any("addressID", id), slog.Any("ownerID", ownerID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute set default transaction")
	}

	return nil
}

// Delete removes an address. When the deleted row was the default and the
// owner still has addresses, the most recently modified remaining address is
// promoted so exactly one default survives.
func (srv *addressService) Delete(ctx context.Context, id, ownerID uuid.UUID, actor string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		address, err := srv.findOwned(ctx, addressRepo, id, ownerID)
		if err != nil {
			return err
		}

		rows, err := addressRepo.DeleteByID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to delete address")
		}
		if rows != 1 {
			return errors.Wrapf(domainerrors.ErrPersistenceConflict, "address delete affected %d rows", rows)
		}

		count, err := addressRepo.CountByOwner(ctx, ownerID)
		if err != nil {
			return errors.Wrap(err, "failed to count remaining addresses")
		}
		if count == 0 || !address.IsDefault {
			return nil
		}

		lastModified, err := addressRepo.FindMostRecentlyModified(ctx, ownerID)
		if err != nil {
			return errors.Wrap(err, "failed to pick replacement default")
		}

		rows, err = addressRepo.SetDefaultByID(ctx, lastModified.ID, actor, time.Now())
		if err != nil {
			return errors.Wrap(err, "failed to promote replacement default")
		}
		if rows != 1 {
			return errors.Wrapf(domainerrors.ErrPersistenceConflict, "default promotion affected %d rows", rows)
		}

		return nil
	})

	if err != nil {
		srv.logger.Warn("Delete address failed", slog.Any("addressID", id), slog.Any("ownerID", ownerID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute delete address transaction")
	}

	return nil
}

// resolveRegionNames denormalizes the display names for the three region
// codes. Empty resolutions are not an error at this layer.
func (srv *addressService) resolveRegionNames(ctx context.Context, address *entity.ShippingAddress) error {
	var err error
	if address.ProvinceName, err = srv.regions.ResolveName(ctx, address.ProvinceCode); err != nil {
		return errors.Wrap(err, "failed to resolve province name")
	}
	if address.CityName, err = srv.regions.ResolveName(ctx, address.CityCode); err != nil {
		return errors.Wrap(err, "failed to resolve city name")
	}
	if address.AreaName, err = srv.regions.ResolveName(ctx, address.AreaCode); err != nil {
		return errors.Wrap(err, "failed to resolve area name")
	}

	return nil
}

// findOwned loads an address and verifies ownership. The existence check
// always runs before the ownership check.
func (srv *addressService) findOwned(ctx context.Context, addressRepo repository.AddressRepository, id, ownerID uuid.UUID) (*entity.ShippingAddress, error) {
	address, err := addressRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAddressNotFound, "address does not exist")
		}

		return nil, errors.Wrap(err, "failed to find address")
	}
	if address.OwnerID != ownerID {
		return nil, errors.Wrap(domainerrors.ErrAddressAccessDenied, "address belongs to another account")
	}

	return address, nil
}
