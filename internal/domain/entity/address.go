package entity

import (
	"github.com/google/uuid"
)

// ShippingAddress is a named delivery destination owned by exactly one
// Account. For an owner with at least one address, exactly one row carries
// IsDefault=true; that invariant is enforced by the address usecase, not by
// the database.
type ShippingAddress struct {
	ID      uuid.UUID
	OwnerID uuid.UUID // The owning account. Immutable.

	Name  string // Recipient name.
	Phone string // Recipient phone.

	// Region codes as supplied by the caller plus the display names resolved
	// from the district table at write time.
	ProvinceCode string
	ProvinceName string
	CityCode     string
	CityName     string
	AreaCode     string
	AreaName     string

	Detail string // Free-text street address.
	Zip    string
	Tag    string // A user-defined label, e.g. "家", "公司".

	IsDefault bool

	Audit
}
