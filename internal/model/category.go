package model

import (
	"time"

	"gorm.io/gorm"
)

// Category represents a node in the product category forest.
// ParentID is nil for root categories; Level caches the tree depth.
type Category struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	Name      string         `json:"name" gorm:"type:varchar(100);not null"`
	ParentID  *uint          `json:"parent_id" gorm:"index"`
	Level     int            `json:"level" gorm:"default:0"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}
