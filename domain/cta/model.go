package cta

// CtaStyle is the closed set of button visual variants.
type CtaStyle string

const (
	StylePrimary   CtaStyle = "primary"
	StyleSecondary CtaStyle = "secondary"
	StyleOutline   CtaStyle = "outline"
	StyleGhost     CtaStyle = "ghost"
)

func (s CtaStyle) Valid() bool {
	switch s {
	case StylePrimary, StyleSecondary, StyleOutline, StyleGhost:
		return true
	}
	return false
}

// Cta is a call-to-action button owned by exactly one page. Position is a
// plain ordering hint: duplicates are allowed and ties break on id at read
// time.
type Cta struct {
	ID       int64    `db:"id" json:"id"`
	PageID   int64    `db:"page_id" json:"pageId"`
	Label    string   `db:"label" json:"label"`
	URL      string   `db:"url" json:"url"`
	Style    CtaStyle `db:"style" json:"style"`
	Position int      `db:"position" json:"position"`
	IsActive bool     `db:"is_active" json:"isActive"`
}

// SaveRequest is the create-or-update payload. A nil ID creates.
type SaveRequest struct {
	ID       *int64   `json:"id"`
	PageID   int64    `json:"pageId" validate:"required"`
	Label    string   `json:"label" validate:"required"`
	URL      string   `json:"url" validate:"required"`
	Style    CtaStyle `json:"style"`
	Position *int     `json:"position"`
	IsActive *bool    `json:"isActive"`
}
