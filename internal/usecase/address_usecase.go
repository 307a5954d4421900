package usecase

import (
	"context"

	"store/internal/domain/entity"

	"github.com/google/uuid"
)

// AddAddressInput represents the input for adding a new shipping address.
// Region codes are trusted to exist; their display names are resolved and
// denormalized at write time.
type AddAddressInput struct {
	Name         string `json:"name" validate:"required,max=20"`
	Phone        string `json:"phone" validate:"required"`
	ProvinceCode string `json:"provinceCode" validate:"required"`
	CityCode     string `json:"cityCode" validate:"required"`
	AreaCode     string `json:"areaCode" validate:"required"`
	Detail       string `json:"detail" validate:"required,max=128"`
	Zip          string `json:"zip"`
	Tag          string `json:"tag"`
}

// AddressUsecase owns add/list/detail/set-default/delete of shipping
// addresses and enforces the single-default invariant: for an owner with at
// least one address, exactly one row carries the default flag.
type AddressUsecase interface {
	Add(ctx context.Context, ownerID uuid.UUID, actor string, input *AddAddressInput) (*entity.ShippingAddress, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]*entity.ShippingAddress, error)
	GetDetail(ctx context.Context, id, ownerID uuid.UUID) (*entity.ShippingAddress, error)
	SetDefault(ctx context.Context, id, ownerID uuid.UUID, actor string) error
	Delete(ctx context.Context, id, ownerID uuid.UUID, actor string) error
}
