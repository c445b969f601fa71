package store

import (
	"context"
	"fmt"

	"catalog-service/internal/model"

	"gorm.io/gorm"
)

// MembershipStore implements the scope resolver's membership lookup.
type MembershipStore struct {
	db *gorm.DB
}

// NewMembershipStore creates a membership store on the given connection.
func NewMembershipStore(db *gorm.DB) *MembershipStore {
	return &MembershipStore{db: db}
}

// TenantIDsForUser returns the tenant ids the user is a member of, any role.
func (s *MembershipStore) TenantIDsForUser(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	err := s.db.WithContext(ctx).Model(&model.Membership{}).
		Where("user_id = ?", userID).
		Pluck("tenant_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("lookup memberships for user %d: %w", userID, err)
	}
	return ids, nil
}
