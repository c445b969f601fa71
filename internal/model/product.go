package model

import (
	"time"

	"gorm.io/gorm"
)

// Review status values for products submitted to the universal catalog.
const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
)

// Product represents the product master data
type Product struct {
	ID          uint    `json:"id" gorm:"primarykey"`
	Name        string  `json:"name" gorm:"type:varchar(255);not null"`
	Description string  `json:"description" gorm:"type:text"`
	Price       float64 `json:"price" gorm:"not null"`
	Currency    string  `json:"currency" gorm:"type:varchar(10);default:'USD'"`
	Stock       int     `json:"stock" gorm:"default:0"`
	CategoryID  *uint   `json:"category_id" gorm:"index"`
	TenantID    uint    `json:"tenant_id" gorm:"index;not null;comment:'Tenant this product belongs to'"`
	IsActive    bool    `json:"is_active" gorm:"default:true"`
	// IsUniversal marks the product as submitted to the cross-tenant catalog;
	// it only shows up there once ReviewStatus is approved.
	IsUniversal  bool           `json:"is_universal" gorm:"default:false"`
	ReviewStatus string         `json:"review_status" gorm:"type:varchar(20);default:'pending'"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}
