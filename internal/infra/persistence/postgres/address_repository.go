package postgres

import (
	"context"
	"time"

	"store/internal/domain/entity"
	"store/internal/domain/repository"
	"store/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// addressRepository implements the repository.AddressRepository interface using GORM.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// Insert persists a new address row and reports how many rows were written.
func (repo *addressRepository) Insert(ctx context.Context, address *entity.ShippingAddress) (int64, error) {
	addressM := fromAddressDomain(address)

	result := repo.db.WithContext(ctx).Create(addressM)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to insert address")
	}

	address.ID = addressM.ID

	return result.RowsAffected, nil
}

// CountByOwner returns how many addresses the owner currently has.
func (repo *addressRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count addresses")
	}

	return count, nil
}

// FindByOwner retrieves all of the owner's addresses, default first, then
// oldest to newest, so repeated reads of unchanged data keep a stable order.
func (repo *addressRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.ShippingAddress, error) {
	var addressMs []*model.AddressModel
	err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("is_default DESC, created_at ASC").
		Find(&addressMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	addresses := make([]*entity.ShippingAddress, 0, len(addressMs))
	for _, addressM := range addressMs {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses, nil
}

// FindByID retrieves one address by its id.
func (repo *addressRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ShippingAddress, error) {
	var addressM model.AddressModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&addressM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by id")
	}

	return toAddressDomain(&addressM), nil
}

// ClearDefaultsByOwner drops the default flag on every address the owner has.
func (repo *addressRepository) ClearDefaultsByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("owner_id = ?", ownerID).
		Update("is_default", false)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to clear default addresses")
	}

	return result.RowsAffected, nil
}

// SetDefaultByID raises the default flag on one address and stamps the
// modifier pair.
func (repo *addressRepository) SetDefaultByID(ctx context.Context, id uuid.UUID, modifiedBy string, modifiedAt time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_default":  true,
			"modified_by": modifiedBy,
			"modified_at": modifiedAt,
		})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to set default address")
	}

	return result.RowsAffected, nil
}

// DeleteByID removes an address row outright. Addresses are hard-deleted;
// orders keep their own snapshot of the recipient fields.
func (repo *addressRepository) DeleteByID(ctx context.Context, id uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AddressModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete address")
	}

	return result.RowsAffected, nil
}

// FindMostRecentlyModified returns the owner's address with the newest
// modified timestamp.
func (repo *addressRepository) FindMostRecentlyModified(ctx context.Context, ownerID uuid.UUID) (*entity.ShippingAddress, error) {
	var addressM model.AddressModel
	err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("modified_at DESC").
		First(&addressM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find most recently modified address")
	}

	return toAddressDomain(&addressM), nil
}

// toAddressDomain converts a GORM AddressModel to a domain ShippingAddress entity.
func toAddressDomain(data *model.AddressModel) *entity.ShippingAddress {
	if data == nil {
		return nil
	}

	return &entity.ShippingAddress{
		ID:           data.ID,
		OwnerID:      data.OwnerID,
		Name:         data.Name,
		Phone:        data.Phone,
		ProvinceCode: data.ProvinceCode,
		ProvinceName: data.ProvinceName,
		CityCode:     data.CityCode,
		CityName:     data.CityName,
		AreaCode:     data.AreaCode,
		AreaName:     data.AreaName,
		Detail:       data.Detail,
		Zip:          data.Zip,
		Tag:          data.Tag,
		IsDefault:    data.IsDefault,
		Audit:        toAuditDomain(data.AuditColumns),
	}
}

// fromAddressDomain converts a domain ShippingAddress entity to a GORM AddressModel.
func fromAddressDomain(data *entity.ShippingAddress) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:           data.ID,
		OwnerID:      data.OwnerID,
		Name:         data.Name,
		Phone:        data.Phone,
		ProvinceCode: data.ProvinceCode,
		ProvinceName: data.ProvinceName,
		CityCode:     data.CityCode,
		CityName:     data.CityName,
		AreaCode:     data.AreaCode,
		AreaName:     data.AreaName,
		Detail:       data.Detail,
		Zip:          data.Zip,
		Tag:          data.Tag,
		IsDefault:    data.IsDefault,
		AuditColumns: fromAuditDomain(data.Audit),
	}
}
