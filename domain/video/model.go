package video

import "time"

// VideoSource is the closed set of places a video can come from.
type VideoSource string

const (
	SourceYoutube  VideoSource = "youtube"
	SourceVimeo    VideoSource = "vimeo"
	SourceExternal VideoSource = "external"
	SourceEmbed    VideoSource = "embed"
)

func (s VideoSource) Valid() bool {
	switch s {
	case SourceYoutube, SourceVimeo, SourceExternal, SourceEmbed:
		return true
	}
	return false
}

// VideoPosition describes where on a page the video renders.
type VideoPosition string

const (
	PositionHero       VideoPosition = "hero"
	PositionAfterHero  VideoPosition = "after_hero"
	PositionMiddle     VideoPosition = "middle"
	PositionBeforeCTA  VideoPosition = "before_cta"
	PositionBeforeForm VideoPosition = "before_form"
	PositionCustom     VideoPosition = "custom"
)

func (p VideoPosition) Valid() bool {
	switch p {
	case PositionHero, PositionAfterHero, PositionMiddle,
		PositionBeforeCTA, PositionBeforeForm, PositionCustom:
		return true
	}
	return false
}

// Video may be referenced by many pages, though each page stores at most one
// video id.
type Video struct {
	ID          int64         `db:"id" json:"id"`
	Title       string        `db:"title" json:"title"`
	Description *string       `db:"description" json:"description,omitempty"`
	Source      VideoSource   `db:"source" json:"source"`
	URL         string        `db:"url" json:"url"`
	EmbedCode   *string       `db:"embed_code" json:"embedCode,omitempty"`
	Thumbnail   *string       `db:"thumbnail" json:"thumbnail,omitempty"`
	Duration    *string       `db:"duration" json:"duration,omitempty"`
	Position    VideoPosition `db:"position" json:"position"`
	CtaText     *string       `db:"cta_text" json:"ctaText,omitempty"`
	CtaURL      *string       `db:"cta_url" json:"ctaUrl,omitempty"`
	SupportText *string       `db:"support_text" json:"supportText,omitempty"`
	IsActive    bool          `db:"is_active" json:"isActive"`
	CreatedAt   time.Time     `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time     `db:"updated_at" json:"updatedAt"`
}

// SaveRequest is the create-or-update payload. A nil ID creates.
type SaveRequest struct {
	ID          *int64        `json:"id"`
	Title       string        `json:"title" validate:"required,min=2"`
	Description *string       `json:"description"`
	Source      VideoSource   `json:"source" validate:"required"`
	URL         string        `json:"url" validate:"required,min=5"`
	EmbedCode   *string       `json:"embedCode"`
	Thumbnail   *string       `json:"thumbnail"`
	Duration    *string       `json:"duration"`
	Position    VideoPosition `json:"position"`
	CtaText     *string       `json:"ctaText"`
	CtaURL      *string       `json:"ctaUrl"`
	SupportText *string       `json:"supportText"`
	IsActive    *bool         `json:"isActive"`
}
