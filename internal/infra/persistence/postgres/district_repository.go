package postgres

import (
	"context"

	"store/internal/domain/entity"
	"store/internal/domain/repository"
	"store/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// districtRepository implements the repository.DistrictRepository interface using GORM.
type districtRepository struct {
	db *gorm.DB
}

// NewDistrictRepository is the constructor for districtRepository.
func NewDistrictRepository(db *gorm.DB) repository.DistrictRepository {
	return &districtRepository{db: db}
}

// FindByParent retrieves all districts directly under the parent code,
// ordered by code so the client renders a stable list.
func (repo *districtRepository) FindByParent(ctx context.Context, parent string) ([]*entity.District, error) {
	var districtMs []*model.DistrictModel
	err := repo.db.WithContext(ctx).
		Where("parent = ?", parent).
		Order("code ASC").
		Find(&districtMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list districts by parent")
	}

	districts := make([]*entity.District, 0, len(districtMs))
	for _, districtM := range districtMs {
		districts = append(districts, &entity.District{
			ID:     districtM.ID,
			Parent: districtM.Parent,
			Code:   districtM.Code,
			Name:   districtM.Name,
		})
	}

	return districts, nil
}

// FindNameByCode resolves a district code to its display name. An unknown
// code yields the empty string, not an error.
func (repo *districtRepository) FindNameByCode(ctx context.Context, code string) (string, error) {
	var districtM model.DistrictModel
	err := repo.db.WithContext(ctx).
		Where("code = ?", code).
		First(&districtM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}

		return "", errors.Wrap(err, "failed to find district name by code")
	}

	return districtM.Name, nil
}
