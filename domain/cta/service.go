package cta

import (
	"errors"

	"solutions-admin/config"
)

// ErrNotFound is returned when the referenced CTA id does not exist.
var ErrNotFound = errors.New("cta not found")

// ListByPage returns a page's CTAs ordered by position, with id as the
// stable tie-break for duplicate positions.
func ListByPage(pageID int64) ([]Cta, error) {
	ctas := []Cta{}
	err := config.DB.Select(&ctas, `
		SELECT id, page_id, label, url, style, position, is_active
		FROM ctas
		WHERE page_id = $1
		ORDER BY position ASC, id ASC
	`, pageID)
	if err != nil {
		return nil, err
	}
	return ctas, nil
}

// Save creates or updates a CTA in place. Positions are never renumbered.
func Save(req *SaveRequest) (*Cta, error) {
	style := req.Style
	if style == "" {
		style = StylePrimary
	}
	position := 0
	if req.Position != nil {
		position = *req.Position
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	if req.ID == nil {
		var id int64
		err := config.DB.QueryRow(`
			INSERT INTO ctas (page_id, label, url, style, position, is_active)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`, req.PageID, req.Label, req.URL, style, position, isActive).Scan(&id)
		if err != nil {
			return nil, err
		}
		return &Cta{ID: id, PageID: req.PageID, Label: req.Label, URL: req.URL,
			Style: style, Position: position, IsActive: isActive}, nil
	}

	res, err := config.DB.Exec(`
		UPDATE ctas
		SET page_id = $1, label = $2, url = $3, style = $4, position = $5, is_active = $6
		WHERE id = $7
	`, req.PageID, req.Label, req.URL, style, position, isActive, *req.ID)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}
	return &Cta{ID: *req.ID, PageID: req.PageID, Label: req.Label, URL: req.URL,
		Style: style, Position: position, IsActive: isActive}, nil
}

// Delete removes a CTA.
func Delete(id int64) error {
	res, err := config.DB.Exec(`DELETE FROM ctas WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
