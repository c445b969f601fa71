package model

import (
	"time"

	"gorm.io/gorm"
)

// Image represents a stored image with the metadata needed to compose a CDN URL
type Image struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	ContentID string         `json:"content_id" gorm:"type:varchar(255);not null"`
	MIMEType  string         `json:"mime_type" gorm:"type:varchar(100)"`
	TenantID  *uint          `json:"tenant_id" gorm:"index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// ProductImage associates a product with one of its images.
// Exactly one of ImageID, URL or BotFileID is normally set: ImageID for
// CDN-backed uploads, URL for legacy manually-entered links, BotFileID for
// files delivered through the chat bot.
type ProductImage struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	ProductID uint           `json:"product_id" gorm:"index;not null"`
	ImageID   *uint          `json:"image_id" gorm:"index"`
	URL       string         `json:"url" gorm:"type:text"`
	BotFileID string         `json:"bot_file_id" gorm:"type:varchar(255)"`
	Position  int            `json:"position" gorm:"default:0"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
