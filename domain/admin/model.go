package admin

import (
	"database/sql"
	"time"
)

// Roles are stored but not enforced beyond storage.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// AdminUser represents an administrator account. The password hash is
// nullable: accounts created through the Google flow carry a random
// unusable password.
type AdminUser struct {
	ID           int64          `db:"id" json:"id"`
	Email        string         `db:"email" json:"email"`
	PasswordHash sql.NullString `db:"password_hash" json:"-"`
	Name         string         `db:"name" json:"name"`
	Role         string         `db:"role" json:"role"`
	IsActive     bool           `db:"is_active" json:"isActive"`
	CreatedAt    time.Time      `db:"created_at" json:"createdAt"`
	LastSignedIn sql.NullTime   `db:"last_signed_in" json:"lastSignedIn"`
}
