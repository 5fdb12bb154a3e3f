package media

import "time"

// MediaFile records one uploaded file. The blob itself lives with the
// storage collaborator; only the served URL is kept here.
type MediaFile struct {
	ID        int64     `db:"id" json:"id"`
	Filename  string    `db:"filename" json:"filename"`
	URL       string    `db:"url" json:"url"`
	MimeType  *string   `db:"mime_type" json:"mimeType,omitempty"`
	Size      *int64    `db:"size" json:"size,omitempty"`
	Alt       *string   `db:"alt" json:"alt,omitempty"`
	PageID    *int64    `db:"page_id" json:"pageId,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
