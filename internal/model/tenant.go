package model

import (
	"time"

	"gorm.io/gorm"
)

// Tenant represents an isolated shop/storefront, the unit of search isolation
type Tenant struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"type:varchar(100);not null"`
	// Slug is the URL-safe identifier used by the single-shop scope lookup.
	Slug string `json:"slug" gorm:"type:varchar(100);uniqueIndex;not null"`
	// UniversalPublish allows the shop's approved products into the universal catalog.
	UniversalPublish bool           `json:"universal_publish" gorm:"default:false"`
	Active           bool           `json:"active" gorm:"default:true"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `json:"-" gorm:"index"`
}
