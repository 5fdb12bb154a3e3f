package admin

import (
	"database/sql"
	"errors"
	"time"

	"solutions-admin/config"
	"solutions-admin/utils"
)

// ErrEmailTaken is returned when the unique email constraint rejects a create.
var ErrEmailTaken = errors.New("email already registered")

// GetByEmail looks up an account by email, compared case-insensitively.
// Returns (nil, nil) when no account matches.
func GetByEmail(email string) (*AdminUser, error) {
	var u AdminUser
	err := config.DB.Get(&u, `
		SELECT id, email, password_hash, name, role, is_active, created_at, last_signed_in
		FROM admin_users
		WHERE LOWER(email) = LOWER($1)
	`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// GetByID looks up an account by id. Returns (nil, nil) when not found.
func GetByID(id int64) (*AdminUser, error) {
	var u AdminUser
	err := config.DB.Get(&u, `
		SELECT id, email, password_hash, name, role, is_active, created_at, last_signed_in
		FROM admin_users
		WHERE id = $1
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// Create inserts a new administrator account. The unique index on email turns
// a concurrent duplicate into ErrEmailTaken for the losing writer.
func Create(name, email, passwordHash, role string) (*AdminUser, error) {
	now := time.Now().UTC()

	hash := sql.NullString{String: passwordHash, Valid: passwordHash != ""}

	var id int64
	err := config.DB.QueryRow(`
		INSERT INTO admin_users (email, password_hash, name, role, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, email, hash, name, role, true, now).Scan(&id)
	if err != nil {
		if utils.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return &AdminUser{
		ID:           id,
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
	}, nil
}

// Count returns the number of administrator accounts; zero means first-run
// setup has not happened yet.
func Count() (int, error) {
	var n int
	if err := config.DB.Get(&n, `SELECT COUNT(*) FROM admin_users`); err != nil {
		return 0, err
	}
	return n, nil
}

// TouchLogin records the last sign-in time. Callers treat failures as
// best-effort but must log them.
func TouchLogin(id int64) error {
	_, err := config.DB.Exec(`UPDATE admin_users SET last_signed_in = $1 WHERE id = $2`,
		time.Now().UTC(), id)
	return err
}
