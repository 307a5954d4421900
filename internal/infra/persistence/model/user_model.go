package model

import (
	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
//
// Username deliberately carries no unique constraint: the legacy schema never
// had one, and registration relies on a read-then-insert check instead.
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Username string    `gorm:"type:varchar(50);not null"`
	Password string    `gorm:"type:char(32);not null"`
	Salt     string    `gorm:"type:char(36);not null"`
	Phone    string    `gorm:"type:varchar(20)"`
	Email    string    `gorm:"type:varchar(50)"`
	Gender   int       `gorm:"type:smallint;not null;default:0"`
	Avatar   string    `gorm:"type:varchar(255)"`

	IsDeleted bool `gorm:"not null;default:false"`

	AuditColumns `gorm:"embedded"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
