package usecase

import (
	"context"

	"store/internal/domain/entity"
)

// DistrictUsecase exposes the static region tree. GetByParent blanks the
// row id and parent code in the response to avoid shipping useless data to
// the front end.
type DistrictUsecase interface {
	GetByParent(ctx context.Context, parent string) ([]*entity.District, error)
	GetNameByCode(ctx context.Context, code string) (string, error)
}
