package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront/internal/models"
)

// GORMWishlistRepository is a GORM implementation of WishlistRepository.
type GORMWishlistRepository struct {
	db *gorm.DB
}

// NewGORMWishlistRepository creates a new instance of GORMWishlistRepository.
func NewGORMWishlistRepository(db *gorm.DB) *GORMWishlistRepository {
	return &GORMWishlistRepository{
		db: db,
	}
}

// GetByClient retrieves every wishlist item for the given client, oldest first.
func (r *GORMWishlistRepository) GetByClient(clientID string) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	if err := r.db.Order("created_at ASC").Find(&items, "client_id = ?", clientID).Error; err != nil {
		return nil, fmt.Errorf("failed to get wishlist for client %s: %w", clientID, err)
	}
	return items, nil
}

// Add stores a wishlist entry. Adding a product that is already on the
// client's wishlist is a no-op.
func (r *GORMWishlistRepository) Add(item *models.WishlistItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.CreatedAt = time.Now()

	if err := r.db.Create(item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return fmt.Errorf("failed to add wishlist item: %w", err)
	}
	return nil
}

// Remove deletes the entry linking the client to the product.
func (r *GORMWishlistRepository) Remove(clientID, productID string) error {
	res := r.db.Delete(&models.WishlistItem{}, "client_id = ? AND product_id = ?", clientID, productID)
	if res.Error != nil {
		return fmt.Errorf("failed to remove wishlist item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrWishlistItemNotFound
	}
	return nil
}
