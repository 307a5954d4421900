// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the core identity entity of the store. It carries both the
// public profile fields and the credential material (salted iterated hash).
// The credential fields never leave the service layer.
type Account struct {
	ID       uuid.UUID // The unique identifier for the account.
	Username string    // Login name. Unique among live rows, immutable after creation.
	Password string    // The stored credential hash, never the raw password.
	Salt     string    // Random salt generated once at registration. Never rotated.
	Phone    string
	Email    string
	Gender   int    // 0 female, 1 male, matching the legacy data set.
	Avatar   string // Web path of the uploaded avatar image.

	// IsDeleted marks the row as soft-deleted. A soft-deleted username still
	// counts as taken during registration.
	IsDeleted bool

	Audit
}

// Audit carries the four bookkeeping fields every persisted row stamps on
// create and update.
type Audit struct {
	CreatedBy  string
	CreatedAt  time.Time
	ModifiedBy string
	ModifiedAt time.Time
}

// StampCreate fills all four audit fields for a fresh row.
func (a *Audit) StampCreate(actor string, now time.Time) {
	a.CreatedBy = actor
	a.CreatedAt = now
	a.ModifiedBy = actor
	a.ModifiedAt = now
}

// StampModify updates the modifier pair only.
func (a *Audit) StampModify(actor string, now time.Time) {
	a.ModifiedBy = actor
	a.ModifiedAt = now
}
