package repository

import (
	"context"
	"time"

	"store/internal/domain/entity"
	"store/internal/errors"

	"github.com/google/uuid"
)

// ErrAddressNotFound is returned when a shipping address is not found.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines the persistence operations behind the shipping
// address usecase. The clear-then-set pair (ClearDefaultsByOwner followed by
// SetDefaultByID) is how the single-default invariant is maintained; callers
// must run the pair inside one transaction.
type AddressRepository interface {
	// Insert persists a new address and returns the affected row count.
	Insert(ctx context.Context, address *entity.ShippingAddress) (int64, error)

	// CountByOwner returns the number of addresses the owner currently has.
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)

	// FindByOwner retrieves all addresses for the owner. The order is stable
	// across repeated reads of unchanged data (default first, then oldest).
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.ShippingAddress, error)

	// FindByID retrieves an address by its id. Returns ErrAddressNotFound
	// when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ShippingAddress, error)

	// ClearDefaultsByOwner drops the default flag on every address the owner
	// has, regardless of which one currently carries it.
	ClearDefaultsByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)

	// SetDefaultByID raises the default flag on one address and stamps the
	// modifier pair.
	SetDefaultByID(ctx context.Context, id uuid.UUID, modifiedBy string, modifiedAt time.Time) (int64, error)

	// DeleteByID removes an address row outright.
	DeleteByID(ctx context.Context, id uuid.UUID) (int64, error)

	// FindMostRecentlyModified returns the owner's address with the newest
	// modified timestamp, used to pick the new default after a delete.
	// Returns ErrAddressNotFound when the owner has no addresses left.
	FindMostRecentlyModified(ctx context.Context, ownerID uuid.UUID) (*entity.ShippingAddress, error)
}
