package repositories

import (
	"errors"

	"storefront/internal/models"
)

// Sentinel errors shared by all repository implementations. Handlers match
// on these with errors.Is to pick status codes.
var (
	ErrProductNotFound      = errors.New("product not found")
	ErrSlugTaken            = errors.New("product with this slug already exists")
	ErrWishlistItemNotFound = errors.New("wishlist item not found")
)

// ProductFilter narrows GetAll results. The zero value applies no filtering.
type ProductFilter struct {
	Search   string // case-insensitive substring match on name or description
	Category string // exact category match
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll(filter ProductFilter) ([]models.Product, error)
	GetBySlug(slug string) (*models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	UpdateFields(id string, fields map[string]any) (*models.Product, error)
}
