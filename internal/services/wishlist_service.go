package services

import (
	"errors"
	"fmt"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// WishlistService handles business logic for per-client wishlists.
type WishlistService struct {
	wishlistRepo repositories.WishlistRepository
	productRepo  repositories.ProductRepository
}

// NewWishlistService creates a new WishlistService.
func NewWishlistService(wishlistRepo repositories.WishlistRepository, productRepo repositories.ProductRepository) *WishlistService {
	return &WishlistService{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

// GetWishlist resolves a client's wishlist entries against the catalog.
// Entries whose product no longer resolves are silently skipped.
func (s *WishlistService) GetWishlist(clientID string) ([]models.Product, error) {
	items, err := s.wishlistRepo.GetByClient(clientID)
	if err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(items))
	for _, item := range items {
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			if errors.Is(err, repositories.ErrProductNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to resolve wishlist product %s: %w", item.ProductID, err)
		}
		products = append(products, *product)
	}
	return products, nil
}

// AddToWishlist puts a product on the client's wishlist. The product must
// exist in the catalog; re-adding is a no-op.
func (s *WishlistService) AddToWishlist(clientID, productID string) error {
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return err
	}
	return s.wishlistRepo.Add(&models.WishlistItem{
		ClientID:  clientID,
		ProductID: productID,
	})
}

// RemoveFromWishlist takes a product off the client's wishlist.
func (s *WishlistService) RemoveFromWishlist(clientID, productID string) error {
	return s.wishlistRepo.Remove(clientID, productID)
}
