package page

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"solutions-admin/config"
	"solutions-admin/utils"
)

var (
	// ErrNotFound is returned when the referenced page id does not exist.
	ErrNotFound = errors.New("page not found")
	// ErrSlugTaken is returned when the unique slug index rejects a write.
	ErrSlugTaken = errors.New("slug already in use")
)

const pageColumns = `id, slug, title, subtitle, description, cover_image, solution_key, status,
	meta_title, meta_description, meta_keywords, og_image, canonical_url,
	video_id, blocks, published_at, created_at, updated_at`

// GetByID fetches a page by id. Returns (nil, nil) when not found.
func GetByID(id int64) (*Page, error) {
	var p Page
	err := config.DB.Get(&p, `SELECT `+pageColumns+` FROM pages WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// GetBySlug fetches a page by its slug. Returns (nil, nil) when not found.
func GetBySlug(slug string) (*Page, error) {
	var p Page
	err := config.DB.Get(&p, `SELECT `+pageColumns+` FROM pages WHERE slug = $1`, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// List returns pages ordered most-recently-updated first, narrowed by the
// given filters. Search matches title or slug, case-insensitively.
func List(f Filters) ([]Page, error) {
	query := `SELECT ` + pageColumns + ` FROM pages`
	var conds []string
	var args []interface{}

	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+strings.ToLower(f.Search)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(LOWER(title) LIKE $%d OR LOWER(slug) LIKE $%d)", n, n))
	}
	if f.HasVideo != nil {
		if *f.HasVideo {
			conds = append(conds, "video_id IS NOT NULL")
		} else {
			conds = append(conds, "video_id IS NULL")
		}
	}

	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY updated_at DESC"

	pages := []Page{}
	if err := config.DB.Select(&pages, query, args...); err != nil {
		return nil, err
	}
	return pages, nil
}

// Save creates or updates a page. Block order keys are recomputed
// server-side before the list is accepted. On create with status=published
// the first-publish time is stamped immediately; updates never touch it.
// Concurrent saves race under last-write-wins; the slug index turns a
// duplicate-slug race into ErrSlugTaken for the loser.
func Save(req *SaveRequest) (*Page, error) {
	blocks, err := NormalizeBlocks(req.Blocks)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = StatusDraft
	}

	now := time.Now().UTC()

	if req.ID == nil {
		var publishedAt *time.Time
		if status == StatusPublished {
			publishedAt = &now
		}

		var id int64
		err := config.DB.QueryRow(`
			INSERT INTO pages (slug, title, subtitle, description, cover_image, solution_key, status,
				meta_title, meta_description, meta_keywords, og_image, canonical_url,
				video_id, blocks, published_at, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
			RETURNING id
		`, req.Slug, req.Title, req.Subtitle, req.Description, req.CoverImage, req.SolutionKey, status,
			req.MetaTitle, req.MetaDescription, req.MetaKeywords, req.OgImage, req.CanonicalURL,
			req.VideoID, blocks, publishedAt, now, now).Scan(&id)
		if err != nil {
			if utils.IsUniqueViolation(err) {
				return nil, ErrSlugTaken
			}
			return nil, err
		}
		return GetByID(id)
	}

	existing, err := GetByID(*req.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	_, err = config.DB.Exec(`
		UPDATE pages
		SET slug = $1, title = $2, subtitle = $3, description = $4, cover_image = $5,
			solution_key = $6, status = $7, meta_title = $8, meta_description = $9,
			meta_keywords = $10, og_image = $11, canonical_url = $12, video_id = $13,
			blocks = $14, updated_at = $15
		WHERE id = $16
	`, req.Slug, req.Title, req.Subtitle, req.Description, req.CoverImage,
		req.SolutionKey, status, req.MetaTitle, req.MetaDescription,
		req.MetaKeywords, req.OgImage, req.CanonicalURL, req.VideoID,
		blocks, now, *req.ID)
	if err != nil {
		if utils.IsUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	return GetByID(*req.ID)
}

// Publish moves a page into published. The first publish time is recorded
// once; republishing keeps the original value.
func Publish(id int64) (*Page, error) {
	return transition(id, `
		UPDATE pages
		SET status = 'published', published_at = COALESCE(published_at, $1), updated_at = $1
		WHERE id = $2
	`)
}

// Unpublish moves a page back to draft. Idempotent on already-draft pages;
// published_at is left as set by the first publish.
func Unpublish(id int64) (*Page, error) {
	return transition(id, `
		UPDATE pages SET status = 'draft', updated_at = $1 WHERE id = $2
	`)
}

// Archive moves a page into archived, from any state. Idempotent.
func Archive(id int64) (*Page, error) {
	return transition(id, `
		UPDATE pages SET status = 'archived', updated_at = $1 WHERE id = $2
	`)
}

func transition(id int64, query string) (*Page, error) {
	res, err := config.DB.Exec(query, time.Now().UTC(), id)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}
	return GetByID(id)
}

// Duplicate clones a page as a fresh draft: new slug derived from the
// source, no publish time, new timestamps.
func Duplicate(id int64) (*Page, error) {
	src, err := GetByID(id)
	if err != nil {
		return nil, err
	}
	if src == nil {
		return nil, ErrNotFound
	}

	req := &SaveRequest{
		Slug:            fmt.Sprintf("%s-copia-%d", src.Slug, time.Now().UnixMilli()),
		Title:           src.Title + " (cópia)",
		Subtitle:        src.Subtitle,
		Description:     src.Description,
		CoverImage:      src.CoverImage,
		SolutionKey:     src.SolutionKey,
		Status:          StatusDraft,
		MetaTitle:       src.MetaTitle,
		MetaDescription: src.MetaDescription,
		MetaKeywords:    src.MetaKeywords,
		OgImage:         src.OgImage,
		CanonicalURL:    src.CanonicalURL,
		VideoID:         src.VideoID,
		Blocks:          src.Blocks,
	}
	return Save(req)
}

// Delete hard-deletes a page. CTAs and media referencing it are left in
// place; orphaned rows are an accepted consequence.
func Delete(id int64) error {
	res, err := config.DB.Exec(`DELETE FROM pages WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// LinkVideo sets or clears the page's video reference without a full save.
func LinkVideo(pageID int64, videoID *int64) (*Page, error) {
	res, err := config.DB.Exec(`UPDATE pages SET video_id = $1, updated_at = $2 WHERE id = $3`,
		videoID, time.Now().UTC(), pageID)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}
	return GetByID(pageID)
}
