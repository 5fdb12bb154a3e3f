package page

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"
)

// PageStatus is the publishing state machine's state.
type PageStatus string

const (
	StatusDraft     PageStatus = "draft"
	StatusPublished PageStatus = "published"
	StatusArchived  PageStatus = "archived"
)

func (s PageStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// BlockType is the closed set of content block variants a page can render.
type BlockType string

const (
	BlockHero      BlockType = "hero"
	BlockVideo     BlockType = "video"
	BlockText      BlockType = "text"
	BlockBenefits  BlockType = "benefits"
	BlockFAQ       BlockType = "faq"
	BlockAuthority BlockType = "authority"
	BlockForm      BlockType = "form"
	BlockCTA       BlockType = "cta"
	BlockCustom    BlockType = "custom"
)

func (t BlockType) Valid() bool {
	switch t {
	case BlockHero, BlockVideo, BlockText, BlockBenefits, BlockFAQ,
		BlockAuthority, BlockForm, BlockCTA, BlockCustom:
		return true
	}
	return false
}

// Block is one ordered, typed, toggle-able content unit. The block list is
// the authoritative render order for the public page.
type Block struct {
	ID     string                 `json:"id"`
	Type   BlockType              `json:"type"`
	Active bool                   `json:"active"`
	Order  int                    `json:"order"`
	Data   map[string]interface{} `json:"data,omitempty"`
}

// Blocks is stored as a JSON document embedded in the page row; blocks are
// never identified across pages.
type Blocks []Block

func (b Blocks) Value() (driver.Value, error) {
	if b == nil {
		b = Blocks{}
	}
	return json.Marshal(b)
}

func (b *Blocks) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*b = Blocks{}
		return nil
	case []byte:
		return json.Unmarshal(v, b)
	case string:
		return json.Unmarshal([]byte(v), b)
	}
	return fmt.Errorf("cannot scan %T into Blocks", src)
}

// ErrInvalidBlock rejects block lists carrying an unknown type tag.
var ErrInvalidBlock = errors.New("invalid block")

// NormalizeBlocks validates block types and recomputes the order keys
// server-side: a stable sort by the submitted order, then dense reassignment
// from zero. Client-submitted gaps or duplicate keys can therefore never
// corrupt the render order.
func NormalizeBlocks(blocks Blocks) (Blocks, error) {
	if blocks == nil {
		return Blocks{}, nil
	}

	out := make(Blocks, len(blocks))
	copy(out, blocks)

	for i, blk := range out {
		if !blk.Type.Valid() {
			return nil, fmt.Errorf("%w: unknown type %q at index %d", ErrInvalidBlock, blk.Type, i)
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	for i := range out {
		out[i].Order = i
	}
	return out, nil
}

// Page is the aggregate root for a solution landing page.
type Page struct {
	ID              int64      `db:"id" json:"id"`
	Slug            string     `db:"slug" json:"slug"`
	Title           string     `db:"title" json:"title"`
	Subtitle        *string    `db:"subtitle" json:"subtitle,omitempty"`
	Description     *string    `db:"description" json:"description,omitempty"`
	CoverImage      *string    `db:"cover_image" json:"coverImage,omitempty"`
	SolutionKey     *string    `db:"solution_key" json:"solutionKey,omitempty"`
	Status          PageStatus `db:"status" json:"status"`
	MetaTitle       *string    `db:"meta_title" json:"metaTitle,omitempty"`
	MetaDescription *string    `db:"meta_description" json:"metaDescription,omitempty"`
	MetaKeywords    *string    `db:"meta_keywords" json:"metaKeywords,omitempty"`
	OgImage         *string    `db:"og_image" json:"ogImage,omitempty"`
	CanonicalURL    *string    `db:"canonical_url" json:"canonicalUrl,omitempty"`
	VideoID         *int64     `db:"video_id" json:"videoId"`
	Blocks          Blocks     `db:"blocks" json:"blocks"`
	PublishedAt     *time.Time `db:"published_at" json:"publishedAt"`
	CreatedAt       time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updatedAt"`
}

// SaveRequest is the create-or-update payload. A nil ID creates.
type SaveRequest struct {
	ID              *int64     `json:"id"`
	Slug            string     `json:"slug" validate:"required,min=2"`
	Title           string     `json:"title" validate:"required,min=2"`
	Subtitle        *string    `json:"subtitle"`
	Description     *string    `json:"description"`
	CoverImage      *string    `json:"coverImage"`
	SolutionKey     *string    `json:"solutionKey"`
	Status          PageStatus `json:"status"`
	MetaTitle       *string    `json:"metaTitle"`
	MetaDescription *string    `json:"metaDescription"`
	MetaKeywords    *string    `json:"metaKeywords"`
	OgImage         *string    `json:"ogImage"`
	CanonicalURL    *string    `json:"canonicalUrl"`
	VideoID         *int64     `json:"videoId"`
	Blocks          Blocks     `json:"blocks"`
}

// LinkVideoRequest sets or clears the page's linked video.
type LinkVideoRequest struct {
	VideoID *int64 `json:"videoId"`
}

// Filters narrows List results. HasVideo is tri-state: nil means no filter.
type Filters struct {
	Status   string
	Search   string
	HasVideo *bool
}
