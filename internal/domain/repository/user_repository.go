// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"store/internal/domain/entity"
	"store/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when an account is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for account persistence.
// Write operations return the affected row count so the usecase layer can
// verify that exactly one row changed; a different count signals a corrupted
// write path rather than a business condition.
type UserRepository interface {
	// Insert persists a new account and returns the affected row count.
	Insert(ctx context.Context, account *entity.Account) (int64, error)

	// FindByUsername retrieves an account by exact, case-sensitive username,
	// including soft-deleted rows. Returns ErrUserNotFound when absent.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)

	// FindByID retrieves an account by its id, including soft-deleted rows.
	// Returns ErrUserNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// UpdatePassword replaces the stored hash and stamps the modifier pair.
	UpdatePassword(ctx context.Context, id uuid.UUID, hash, modifiedBy string, modifiedAt time.Time) (int64, error)

	// UpdateProfile updates phone/email/gender and the modifier pair.
	UpdateProfile(ctx context.Context, account *entity.Account) (int64, error)

	// UpdateAvatar updates the avatar path and the modifier pair.
	UpdateAvatar(ctx context.Context, id uuid.UUID, avatar, modifiedBy string, modifiedAt time.Time) (int64, error)
}
