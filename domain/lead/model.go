package lead

import "time"

// LeadStatus is a simple triage tag, not a workflow: any status is reachable
// from any other.
type LeadStatus string

const (
	StatusNew       LeadStatus = "new"
	StatusContacted LeadStatus = "contacted"
	StatusConverted LeadStatus = "converted"
	StatusArchived  LeadStatus = "archived"
)

func (s LeadStatus) Valid() bool {
	switch s {
	case StatusNew, StatusContacted, StatusConverted, StatusArchived:
		return true
	}
	return false
}

// Lead is an inbound contact submission, append-only except for the status.
type Lead struct {
	ID        int64      `db:"id" json:"id"`
	PageID    *int64     `db:"page_id" json:"pageId,omitempty"`
	PageSlug  *string    `db:"page_slug" json:"pageSlug,omitempty"`
	Name      string     `db:"name" json:"name"`
	Email     *string    `db:"email" json:"email,omitempty"`
	Phone     *string    `db:"phone" json:"phone,omitempty"`
	Message   *string    `db:"message" json:"message,omitempty"`
	Status    LeadStatus `db:"status" json:"status"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
}

// SubmitRequest is the public intake payload; only the name is required.
type SubmitRequest struct {
	PageID   *int64  `json:"pageId"`
	PageSlug *string `json:"pageSlug"`
	Name     string  `json:"name" validate:"required"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Message  *string `json:"message"`
}

// UpdateStatusRequest moves a lead to any of the four statuses.
type UpdateStatusRequest struct {
	Status LeadStatus `json:"status" validate:"required"`
}
