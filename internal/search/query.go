package search

import (
	"strings"

	"catalog-service/internal/model"
)

// Condition is one WHERE term together with its bound parameters. Terms are
// joined with AND by the store, which keeps the SQL text and the parameter
// list in lockstep instead of tracking placeholder indexes by hand.
type Condition struct {
	SQL  string
	Args []interface{}
}

// SearchParams carries the validated inputs of one catalog search. Limit and
// Offset are assumed to be sanitized by the caller (limit >= 1).
type SearchParams struct {
	Text         string
	Limit        int
	Offset       int
	CategoryID   *uint
	ActiveOnly   bool
	ApprovedOnly bool
	Tenants      TenantSet
}

// NormalizedText returns the trimmed, lower-cased search text.
func (p SearchParams) NormalizedText() string {
	return strings.ToLower(strings.TrimSpace(p.Text))
}

func likePattern(text string) string {
	return "%" + text + "%"
}

// BuildConditions assembles the ordered predicate list for the given params.
// The second return is false when the search cannot match anything and no
// query should be run at all (empty normalized text never falls back to
// "match everything").
//
// Matching is deliberate substring containment on name or description, not
// tokenized full-text search; consumers rely on exact-substring behavior
// such as partial SKU matches.
func BuildConditions(p SearchParams) ([]Condition, bool) {
	text := p.NormalizedText()
	if text == "" {
		return nil, false
	}

	pattern := likePattern(text)
	conds := []Condition{{
		SQL:  "(LOWER(products.name) LIKE ? OR LOWER(products.description) LIKE ?)",
		Args: []interface{}{pattern, pattern},
	}}

	switch {
	case p.Tenants.All():
		// unrestricted scope, no tenant term
	case p.Tenants.Empty():
		// An empty scope must exclude every row. Omitting the term
		// would silently widen the search to all tenants.
		conds = append(conds, Condition{SQL: "1 = 0"})
	default:
		conds = append(conds, Condition{
			SQL:  "products.tenant_id IN ?",
			Args: []interface{}{p.Tenants.IDs()},
		})
	}

	if p.ActiveOnly {
		conds = append(conds, Condition{
			SQL:  "products.is_active = ?",
			Args: []interface{}{true},
		})
	}
	if p.ApprovedOnly {
		// Universal listings need both the flag and an approved review.
		conds = append(conds, Condition{
			SQL:  "products.is_universal = ? AND products.review_status = ?",
			Args: []interface{}{true, model.ReviewStatusApproved},
		})
	}
	if p.CategoryID != nil {
		conds = append(conds, Condition{
			SQL:  "products.category_id = ?",
			Args: []interface{}{*p.CategoryID},
		})
	}

	return conds, true
}

// RankingOrder returns the ORDER BY expression for the normalized text: a
// name hit outranks a description-only hit, ties break alphabetically by
// name. The ordering is stable for identical inputs.
func RankingOrder(normText string) Condition {
	pattern := likePattern(normText)
	return Condition{
		SQL:  "(LOWER(products.name) LIKE ?) DESC, (LOWER(products.description) LIKE ?) DESC, products.name ASC",
		Args: []interface{}{pattern, pattern},
	}
}

// ProductHit is one search result row: the product columns plus the raw
// image descriptor fields of its first-ordered image association. PhotoURL
// is filled in after retrieval by the photo resolver; nil means the product
// has no photo.
type ProductHit struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	Stock       int     `json:"stock"`
	CategoryID  *uint   `json:"category_id"`
	TenantID    uint    `json:"tenant_id"`
	TenantSlug  string  `json:"tenant_slug"`

	ImageURL       string `json:"-" gorm:"column:image_url"`
	ImageContentID string `json:"-" gorm:"column:image_content_id"`
	ImageMIME      string `json:"-" gorm:"column:image_mime"`
	BotFileID      string `json:"-" gorm:"column:bot_file_id"`

	PhotoURL *string `json:"photo_url" gorm:"-"`
}

// ImageFields returns the hit's raw image columns as a resolver descriptor.
func (h ProductHit) ImageFields() ImageDescriptor {
	return ImageDescriptor{
		ProductID: h.ID,
		URL:       h.ImageURL,
		ContentID: h.ImageContentID,
		MIMEType:  h.ImageMIME,
		BotFileID: h.BotFileID,
	}
}
