// Package model contains the GORM persistence structs mirroring the store
// schema. They stay inside the infra layer; repositories map them to and
// from the pure domain entities.
package model

import "time"

// AuditColumns carries the four bookkeeping columns every table in the legacy
// schema has. The service layer stamps them; GORM's automatic timestamp
// handling is intentionally not used so stored rows keep the values the
// business code decided on.
type AuditColumns struct {
	CreatedBy  string    `gorm:"type:varchar(50)"`
	CreatedAt  time.Time `gorm:"autoCreateTime:false"`
	ModifiedBy string    `gorm:"type:varchar(50)"`
	ModifiedAt time.Time `gorm:"autoUpdateTime:false"`
}
