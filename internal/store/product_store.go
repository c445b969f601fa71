package store

import (
	"context"
	"fmt"
	"time"

	"catalog-service/internal/search"
	"catalog-service/prometheus"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// firstImageJoin attaches the first-ordered image association of each
// product, best effort: products without images still match.
const firstImageJoin = `LEFT JOIN product_images ON product_images.id = (
	SELECT pi.id FROM product_images pi
	WHERE pi.product_id = products.id AND pi.deleted_at IS NULL
	ORDER BY pi.position ASC, pi.id ASC LIMIT 1)`

// ProductStore runs the compiled catalog search against the database.
type ProductStore struct {
	db     *gorm.DB
	photos *search.PhotoResolver
}

// NewProductStore creates a product store on the given connection. Every row
// returned by Search has its photo URL resolved through photos.
func NewProductStore(db *gorm.DB, photos *search.PhotoResolver) *ProductStore {
	return &ProductStore{db: db, photos: photos}
}

// Search returns one ranked page of matching products plus the total number
// of matches across all pages. The total comes from an independent count
// query over the same predicate set, so it is unaffected by limit/offset.
// Database errors propagate unmodified; there is no retry or fallback here.
func (s *ProductStore) Search(ctx context.Context, p search.SearchParams) ([]search.ProductHit, int64, error) {
	conds, ok := search.BuildConditions(p)
	if !ok {
		// empty search text matches nothing, skip the database entirely
		return []search.ProductHit{}, 0, nil
	}

	defer prometheus.TrackDBOperation("product_search")(time.Now())

	base := func() *gorm.DB {
		q := s.db.WithContext(ctx).Table("products").
			Joins("JOIN tenants ON tenants.id = products.tenant_id").
			Where("products.deleted_at IS NULL").
			Where("tenants.deleted_at IS NULL")
		for _, c := range conds {
			q = q.Where(c.SQL, c.Args...)
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	order := search.RankingOrder(p.NormalizedText())
	var hits []search.ProductHit
	err := base().
		Select(`products.id, products.name, products.description, products.price,
			products.currency, products.stock, products.category_id, products.tenant_id,
			tenants.slug AS tenant_slug,
			product_images.url AS image_url, product_images.bot_file_id,
			images.content_id AS image_content_id, images.mime_type AS image_mime`).
		Joins(firstImageJoin).
		Joins("LEFT JOIN images ON images.id = product_images.image_id").
		Clauses(clause.OrderBy{Expression: clause.Expr{SQL: order.SQL, Vars: order.Args}}).
		Limit(p.Limit).
		Offset(p.Offset).
		Scan(&hits).Error
	if err != nil {
		return nil, 0, fmt.Errorf("search products: %w", err)
	}

	for i := range hits {
		if u := s.photos.Resolve(hits[i].ImageFields()); u != "" {
			hits[i].PhotoURL = &u
		}
	}
	return hits, total, nil
}
