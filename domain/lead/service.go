package lead

import (
	"errors"
	"time"

	"solutions-admin/config"
)

// ErrNotFound is returned when the referenced lead id does not exist.
var ErrNotFound = errors.New("lead not found")

// Insert appends a new lead with status "new".
func Insert(req *SubmitRequest) (*Lead, error) {
	now := time.Now().UTC()

	var id int64
	err := config.DB.QueryRow(`
		INSERT INTO leads (page_id, page_slug, name, email, phone, message, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, req.PageID, req.PageSlug, req.Name, req.Email, req.Phone, req.Message, StatusNew, now).Scan(&id)
	if err != nil {
		return nil, err
	}

	return &Lead{
		ID:        id,
		PageID:    req.PageID,
		PageSlug:  req.PageSlug,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		Status:    StatusNew,
		CreatedAt: now,
	}, nil
}

// List returns all leads, newest first.
func List() ([]Lead, error) {
	leads := []Lead{}
	err := config.DB.Select(&leads, `
		SELECT id, page_id, page_slug, name, email, phone, message, status, created_at
		FROM leads
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	return leads, nil
}

// UpdateStatus moves a lead to the given status unconditionally.
func UpdateStatus(id int64, status LeadStatus) (*Lead, error) {
	res, err := config.DB.Exec(`UPDATE leads SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}

	var l Lead
	err = config.DB.Get(&l, `
		SELECT id, page_id, page_slug, name, email, phone, message, status, created_at
		FROM leads WHERE id = $1
	`, id)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
