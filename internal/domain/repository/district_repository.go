package repository

import (
	"context"

	"store/internal/domain/entity"
)

// DistrictRepository reads the static province/city/area tree.
type DistrictRepository interface {
	// FindByParent retrieves all districts directly under the parent code.
	FindByParent(ctx context.Context, parent string) ([]*entity.District, error)

	// FindNameByCode resolves a district code to its display name. An
	// unknown code yields "" with no error.
	FindNameByCode(ctx context.Context, code string) (string, error)
}
