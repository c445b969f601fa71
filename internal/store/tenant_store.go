package store

import (
	"context"
	"errors"
	"fmt"

	"catalog-service/internal/model"

	"gorm.io/gorm"
)

// TenantStore implements the scope resolver's slug lookup.
type TenantStore struct {
	db *gorm.DB
}

// NewTenantStore creates a tenant store on the given connection.
func NewTenantStore(db *gorm.DB) *TenantStore {
	return &TenantStore{db: db}
}

// TenantIDBySlug resolves a shop slug to its tenant id. An unknown slug is
// not an error; the second return is false.
func (s *TenantStore) TenantIDBySlug(ctx context.Context, slug string) (uint, bool, error) {
	var tenant model.Tenant
	err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&tenant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("lookup tenant by slug %q: %w", slug, err)
	}
	return tenant.ID, true, nil
}
