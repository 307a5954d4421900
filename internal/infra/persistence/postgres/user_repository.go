package postgres

import (
	"context"
	"time"

	"store/internal/domain/entity"
	domainerrors "store/internal/domain/errors"
	"store/internal/domain/repository"
	"store/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Insert persists a new account row and reports how many rows were written.
func (repo *userRepository) Insert(ctx context.Context, account *entity.Account) (int64, error) {
	userM := fromAccountDomain(account)

	result := repo.db.WithContext(ctx).Create(userM)
	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return 0, domainerrors.NewDatabaseExecuteError(result.Error, "missing required account column")
		}

		return 0, errors.Wrap(result.Error, "failed to insert user")
	}

	// The database generates the primary key.
	account.ID = userM.ID

	return result.RowsAffected, nil
}

// FindByUsername retrieves an account by exact username. Soft-deleted rows
// are returned too; callers decide how a dead row is treated.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return toAccountDomain(&userM), nil
}

// FindByID retrieves an account by its id, including soft-deleted rows.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toAccountDomain(&userM), nil
}

// UpdatePassword replaces the stored hash and stamps the modifier pair.
func (repo *userRepository) UpdatePassword(ctx context.Context, id uuid.UUID, hash, modifiedBy string, modifiedAt time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"password":    hash,
			"modified_by": modifiedBy,
			"modified_at": modifiedAt,
		})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to update password")
	}

	return result.RowsAffected, nil
}

// UpdateProfile updates the mutable profile columns and the modifier pair.
func (repo *userRepository) UpdateProfile(ctx context.Context, account *entity.Account) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", account.ID).
		Updates(map[string]any{
			"phone":       account.Phone,
			"email":       account.Email,
			"gender":      account.Gender,
			"modified_by": account.ModifiedBy,
			"modified_at": account.ModifiedAt,
		})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to update profile")
	}

	return result.RowsAffected, nil
}

// UpdateAvatar updates the avatar path and the modifier pair.
func (repo *userRepository) UpdateAvatar(ctx context.Context, id uuid.UUID, avatar, modifiedBy string, modifiedAt time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"avatar":      avatar,
			"modified_by": modifiedBy,
			"modified_at": modifiedAt,
		})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to update avatar")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toAccountDomain converts a GORM UserModel to a domain Account entity.
func toAccountDomain(data *model.UserModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:        data.ID,
		Username:  data.Username,
		Password:  data.Password,
		Salt:      data.Salt,
		Phone:     data.Phone,
		Email:     data.Email,
		Gender:    data.Gender,
		Avatar:    data.Avatar,
		IsDeleted: data.IsDeleted,
		Audit:     toAuditDomain(data.AuditColumns),
	}
}

// fromAccountDomain converts a domain Account entity to a GORM UserModel for persistence.
func fromAccountDomain(data *entity.Account) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Username:     data.Username,
		Password:     data.Password,
		Salt:         data.Salt,
		Phone:        data.Phone,
		Email:        data.Email,
		Gender:       data.Gender,
		Avatar:       data.Avatar,
		IsDeleted:    data.IsDeleted,
		AuditColumns: fromAuditDomain(data.Audit),
	}
}

func toAuditDomain(data model.AuditColumns) entity.Audit {
	return entity.Audit{
		CreatedBy:  data.CreatedBy,
		CreatedAt:  data.CreatedAt,
		ModifiedBy: data.ModifiedBy,
		ModifiedAt: data.ModifiedAt,
	}
}

func fromAuditDomain(data entity.Audit) model.AuditColumns {
	return model.AuditColumns{
		CreatedBy:  data.CreatedBy,
		CreatedAt:  data.CreatedAt,
		ModifiedBy: data.ModifiedBy,
		ModifiedAt: data.ModifiedAt,
	}
}
