package setting

import (
	"database/sql"
	"errors"
	"time"

	"solutions-admin/config"
)

// ErrNotFound is returned when no setting exists under the key.
var ErrNotFound = errors.New("setting not found")

// Get returns the value stored under key.
func Get(key string) (*Setting, error) {
	var s Setting
	err := config.DB.Get(&s, `
		SELECT id, setting_key, setting_value, updated_at
		FROM settings WHERE setting_key = $1
	`, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// All returns every setting.
func All() ([]Setting, error) {
	settings := []Setting{}
	err := config.DB.Select(&settings, `
		SELECT id, setting_key, setting_value, updated_at FROM settings ORDER BY setting_key
	`)
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// Set upserts the value under key. No versioning; last write wins.
func Set(key, value string) (*Setting, error) {
	_, err := config.DB.Exec(`
		INSERT INTO settings (setting_key, setting_value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (setting_key) DO UPDATE SET setting_value = $2, updated_at = $3
	`, key, value, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	return Get(key)
}
