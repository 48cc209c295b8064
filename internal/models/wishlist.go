package models

import "time"

// WishlistItem links a client-supplied wishlist owner key to a product.
// A client can hold each product at most once.
type WishlistItem struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ClientID  string    `json:"clientId" gorm:"uniqueIndex:idx_wishlist_client_product;type:varchar(100)"`
	ProductID string    `json:"productId" gorm:"uniqueIndex:idx_wishlist_client_product;type:varchar(36)"`
	CreatedAt time.Time `json:"createdAt"`
}
