package store

import (
	"context"
	"errors"
	"fmt"

	"catalog-service/internal/model"

	"gorm.io/gorm"
)

// ImageStore reads product image associations for the bot-file proxy.
type ImageStore struct {
	db *gorm.DB
}

// NewImageStore creates an image store on the given connection.
func NewImageStore(db *gorm.DB) *ImageStore {
	return &ImageStore{db: db}
}

// BotFileIDForProduct returns the bot file handle of the product's
// first-ordered bot-delivered image, if it has one.
func (s *ImageStore) BotFileIDForProduct(ctx context.Context, productID uint) (string, bool, error) {
	var assoc model.ProductImage
	err := s.db.WithContext(ctx).
		Where("product_id = ? AND bot_file_id <> ''", productID).
		Order("position ASC, id ASC").
		First(&assoc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("lookup bot image for product %d: %w", productID, err)
	}
	return assoc.BotFileID, true, nil
}
