package repositories

import (
	"storefront/internal/models"
)

// WishlistRepository defines the interface for wishlist persistence.
// Wishlists are keyed by a caller-supplied client identifier; the storage
// boundary is explicit so the state is never ambient.
type WishlistRepository interface {
	GetByClient(clientID string) ([]models.WishlistItem, error)
	Add(item *models.WishlistItem) error
	Remove(clientID, productID string) error
}
