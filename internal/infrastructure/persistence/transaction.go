package persistence

import (
	"context"

	"gorm.io/gorm"
)

// WithTransaction executes fn within a transaction bound to ctx.
func WithTransaction(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.WithContext(ctx).Transaction(fn)
}

// replaceLinks deletes every join row of owner and inserts links in their place.
func replaceLinks[L any](tx *gorm.DB, ownerColumn, ownerID string, links []L) error {
	if err := tx.Where(ownerColumn+" = ?", ownerID).Delete(new(L)).Error; err != nil {
		return err
	}
	if len(links) == 0 {
		return nil
	}
	return tx.Create(&links).Error
}
