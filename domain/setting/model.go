package setting

import "time"

// Setting is a flat key to string value pair, upserted by key.
type Setting struct {
	ID        int64     `db:"id" json:"id"`
	Key       string    `db:"setting_key" json:"key"`
	Value     *string   `db:"setting_value" json:"value"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// SetRequest upserts one setting value.
type SetRequest struct {
	Value string `json:"value"`
}
