package store

import (
	"context"
	"fmt"
	"time"

	"catalog-service/internal/model"
	"catalog-service/prometheus"

	"gorm.io/gorm"
)

// CategoryStore reads the flat category list and the grouped per-category
// product counts consumed by the aggregator.
type CategoryStore struct {
	db *gorm.DB
}

// NewCategoryStore creates a category store on the given connection.
func NewCategoryStore(db *gorm.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

// ListCategories returns all categories as a flat list.
func (s *CategoryStore) ListCategories(ctx context.Context) ([]model.Category, error) {
	defer prometheus.TrackDBOperation("category_list")(time.Now())

	var categories []model.Category
	if err := s.db.WithContext(ctx).Order("level ASC, id ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// DirectProductCounts returns the number of active products filed directly
// under each category, from a single grouped count query. Categories with no
// active products have no entry.
func (s *CategoryStore) DirectProductCounts(ctx context.Context) (map[uint]int64, error) {
	defer prometheus.TrackDBOperation("category_counts")(time.Now())

	var rows []struct {
		CategoryID uint
		Count      int64
	}
	err := s.db.WithContext(ctx).Model(&model.Product{}).
		Select("category_id, COUNT(*) AS count").
		Where("is_active = ? AND category_id IS NOT NULL", true).
		Group("category_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count products per category: %w", err)
	}

	counts := make(map[uint]int64, len(rows))
	for _, r := range rows {
		counts[r.CategoryID] = r.Count
	}
	return counts, nil
}
