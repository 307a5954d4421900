package impl

import (
	"context"

	"store/internal/domain/entity"
	"store/internal/domain/repository"
	"store/internal/usecase"

	"github.com/pkg/errors"
)

// districtService implements the DistrictUsecase interface on top of the
// static region table.
type districtService struct {
	districtRepo repository.DistrictRepository
}

// NewDistrictService is the constructor for districtService.
func NewDistrictService(districtRepo repository.DistrictRepository) usecase.DistrictUsecase {
	return &districtService{districtRepo: districtRepo}
}

// GetByParent returns the districts directly under the parent code with the
// row id and parent code blanked; they carry no information the front end
// needs.
func (srv *districtService) GetByParent(ctx context.Context, parent string) ([]*entity.District, error) {
	districts, err := srv.districtRepo.FindByParent(ctx, parent)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find districts by parent")
	}

	for _, district := range districts {
		district.ID = 0
		district.Parent = ""
	}

	return districts, nil
}

// GetNameByCode resolves one district code; unknown codes yield "".
func (srv *districtService) GetNameByCode(ctx context.Context, code string) (string, error) {
	name, err := srv.districtRepo.FindNameByCode(ctx, code)
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve district name")
	}

	return name, nil
}
