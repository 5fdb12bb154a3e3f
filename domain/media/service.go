package media

import (
	"database/sql"
	"errors"
	"time"

	"solutions-admin/config"
)

// ErrNotFound is returned when the referenced media id does not exist.
var ErrNotFound = errors.New("media file not found")

// Insert records an uploaded file.
func Insert(filename, url string, mimeType *string, size *int64, pageID *int64) (*MediaFile, error) {
	now := time.Now().UTC()

	var id int64
	err := config.DB.QueryRow(`
		INSERT INTO media_files (filename, url, mime_type, size, page_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, filename, url, mimeType, size, pageID, now).Scan(&id)
	if err != nil {
		return nil, err
	}

	return &MediaFile{
		ID: id, Filename: filename, URL: url,
		MimeType: mimeType, Size: size, PageID: pageID, CreatedAt: now,
	}, nil
}

// List returns all media files, newest first.
func List() ([]MediaFile, error) {
	files := []MediaFile{}
	err := config.DB.Select(&files, `
		SELECT id, filename, url, mime_type, size, alt, page_id, created_at
		FROM media_files
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	return files, nil
}

// GetByID fetches a media record. Returns (nil, nil) when not found.
func GetByID(id int64) (*MediaFile, error) {
	var m MediaFile
	err := config.DB.Get(&m, `
		SELECT id, filename, url, mime_type, size, alt, page_id, created_at
		FROM media_files WHERE id = $1
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// Delete removes a media record.
func Delete(id int64) error {
	res, err := config.DB.Exec(`DELETE FROM media_files WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
