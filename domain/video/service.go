package video

import (
	"database/sql"
	"errors"
	"time"

	"solutions-admin/config"
)

// ErrNotFound is returned when the referenced video id does not exist.
var ErrNotFound = errors.New("video not found")

const videoColumns = `id, title, description, source, url, embed_code, thumbnail, duration,
	position, cta_text, cta_url, support_text, is_active, created_at, updated_at`

// GetByID fetches a video by id. Returns (nil, nil) when not found.
func GetByID(id int64) (*Video, error) {
	var v Video
	err := config.DB.Get(&v, `SELECT `+videoColumns+` FROM videos WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

// List returns all videos, newest first.
func List() ([]Video, error) {
	videos := []Video{}
	err := config.DB.Select(&videos, `SELECT `+videoColumns+` FROM videos ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return videos, nil
}

// Save creates or updates a video. Videos have no status machine, only the
// active flag.
func Save(req *SaveRequest) (*Video, error) {
	position := req.Position
	if position == "" {
		position = PositionAfterHero
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now().UTC()

	if req.ID == nil {
		var id int64
		err := config.DB.QueryRow(`
			INSERT INTO videos (title, description, source, url, embed_code, thumbnail, duration,
				position, cta_text, cta_url, support_text, is_active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			RETURNING id
		`, req.Title, req.Description, req.Source, req.URL, req.EmbedCode, req.Thumbnail, req.Duration,
			position, req.CtaText, req.CtaURL, req.SupportText, isActive, now, now).Scan(&id)
		if err != nil {
			return nil, err
		}
		return GetByID(id)
	}

	res, err := config.DB.Exec(`
		UPDATE videos
		SET title = $1, description = $2, source = $3, url = $4, embed_code = $5,
			thumbnail = $6, duration = $7, position = $8, cta_text = $9, cta_url = $10,
			support_text = $11, is_active = $12, updated_at = $13
		WHERE id = $14
	`, req.Title, req.Description, req.Source, req.URL, req.EmbedCode,
		req.Thumbnail, req.Duration, position, req.CtaText, req.CtaURL,
		req.SupportText, isActive, now, *req.ID)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}
	return GetByID(*req.ID)
}

// Delete removes a video and clears the reference on every page pointing at
// it. Both steps run in one transaction: a page keeping a reference to a
// vanished video, or a half-done cascade, must be impossible.
func Delete(id int64) error {
	tx, err := config.DB.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE pages SET video_id = NULL WHERE video_id = $1`, id); err != nil {
		return err
	}

	res, err := tx.Exec(`DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}
