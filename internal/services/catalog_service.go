package services

import (
	"errors"
	"fmt"
	"log"
	"sort"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/validation"
	"storefront/pkg/rabbitmq"
)

// Products with 1..lowStockThreshold units left count as low stock on the
// dashboard.
const lowStockThreshold = 5

// EventPublisher publishes product lifecycle events. Satisfied by
// *rabbitmq.Client.
type EventPublisher interface {
	PublishProductEvent(routingKey string, payload map[string]interface{}) error
}

// CatalogService handles business logic for the product catalog.
type CatalogService struct {
	repo   repositories.ProductRepository
	events EventPublisher
}

// NewCatalogService creates a new CatalogService. events may be nil, in
// which case no events are published.
func NewCatalogService(repo repositories.ProductRepository, events EventPublisher) *CatalogService {
	return &CatalogService{
		repo:   repo,
		events: events,
	}
}

// ListProducts retrieves all products, optionally filtered by search term
// and category, newest first.
func (s *CatalogService) ListProducts(filter repositories.ProductFilter) ([]models.Product, error) {
	return s.repo.GetAll(filter)
}

// GetProductBySlug retrieves a single product by its slug.
func (s *CatalogService) GetProductBySlug(slug string) (*models.Product, error) {
	return s.repo.GetBySlug(slug)
}

// CreateProduct creates a new product from a validated payload. The slug is
// checked for collisions up front, but the store's unique index remains the
// authority: a duplicate slug discovered at insert time reports the same
// ErrSlugTaken as the pre-check.
func (s *CatalogService) CreateProduct(input validation.CreateProductInput) (*models.Product, error) {
	if _, err := s.repo.GetBySlug(input.Slug); err == nil {
		return nil, repositories.ErrSlugTaken
	} else if !errors.Is(err, repositories.ErrProductNotFound) {
		return nil, fmt.Errorf("failed to check slug availability: %w", err)
	}

	product := &models.Product{
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
		Price:       *input.Price,
		Category:    input.Category,
		Inventory:   *input.Inventory,
	}

	if err := s.repo.Create(product); err != nil {
		return nil, err
	}

	s.publish(rabbitmq.ProductCreatedKey, product)
	return product, nil
}

// UpdateProduct merges the supplied fields into an existing product and
// refreshes its lastUpdated timestamp. Omitted fields keep their values.
func (s *CatalogService) UpdateProduct(id string, input validation.UpdateProductInput) (*models.Product, error) {
	fields := make(map[string]any)
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Category != nil {
		fields["category"] = *input.Category
	}
	if input.Price != nil {
		fields["price"] = *input.Price
	}
	if input.Inventory != nil {
		fields["inventory"] = *input.Inventory
	}

	product, err := s.repo.UpdateFields(id, fields)
	if err != nil {
		return nil, err
	}

	s.publish(rabbitmq.ProductUpdatedKey, product)
	return product, nil
}

// publish sends a product event best effort. Event delivery never fails the
// request; failures are only logged.
func (s *CatalogService) publish(routingKey string, product *models.Product) {
	if s.events == nil {
		return
	}
	payload := map[string]interface{}{
		"productId": product.ID,
		"slug":      product.Slug,
		"category":  product.Category,
		"price":     product.Price,
		"inventory": product.Inventory,
	}
	if err := s.events.PublishProductEvent(routingKey, payload); err != nil {
		log.Printf("Warning: failed to publish %s event for product %s: %v", routingKey, product.ID, err)
	}
}

// CategoryStats aggregates the products of a single category.
type CategoryStats struct {
	Count     int     `json:"count"`
	Value     float64 `json:"value"`
	Inventory int     `json:"inventory"`
}

// DashboardStats is the admin dashboard aggregation over the whole catalog.
type DashboardStats struct {
	TotalProducts   int                      `json:"totalProducts"`
	TotalValue      float64                  `json:"totalValue"`
	TotalInventory  int                      `json:"totalInventory"`
	LowStockCount   int                      `json:"lowStockCount"`
	OutOfStockCount int                      `json:"outOfStockCount"`
	LowStock        []models.Product         `json:"lowStock"`
	OutOfStock      []models.Product         `json:"outOfStock"`
	Categories      map[string]CategoryStats `json:"categories"`
}

// Dashboard computes inventory statistics across the whole catalog: totals,
// low-stock and out-of-stock products, and a per-category breakdown.
func (s *CatalogService) Dashboard() (*DashboardStats, error) {
	products, err := s.repo.GetAll(repositories.ProductFilter{})
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalProducts: len(products),
		LowStock:      []models.Product{},
		OutOfStock:    []models.Product{},
		Categories:    make(map[string]CategoryStats),
	}

	for _, p := range products {
		stats.TotalValue += p.Price * float64(p.Inventory)
		stats.TotalInventory += p.Inventory

		switch {
		case p.Inventory == 0:
			stats.OutOfStock = append(stats.OutOfStock, p)
		case p.Inventory <= lowStockThreshold:
			stats.LowStock = append(stats.LowStock, p)
		}

		cs := stats.Categories[p.Category]
		cs.Count++
		cs.Value += p.Price * float64(p.Inventory)
		cs.Inventory += p.Inventory
		stats.Categories[p.Category] = cs
	}

	// Most urgent first.
	sort.Slice(stats.LowStock, func(i, j int) bool {
		return stats.LowStock[i].Inventory < stats.LowStock[j].Inventory
	})

	stats.LowStockCount = len(stats.LowStock)
	stats.OutOfStockCount = len(stats.OutOfStock)
	return stats, nil
}

// Recommendations picks one product per category plus the highest stock-value
// products, without duplicates.
func (s *CatalogService) Recommendations() ([]models.Product, error) {
	products, err := s.repo.GetAll(repositories.ProductFilter{})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var recommended []models.Product

	perCategory := make(map[string]bool)
	for _, p := range products {
		if !perCategory[p.Category] {
			perCategory[p.Category] = true
			seen[p.ID] = true
			recommended = append(recommended, p)
		}
	}

	// Top stock-value products round out the list.
	byValue := make([]models.Product, len(products))
	copy(byValue, products)
	sort.Slice(byValue, func(i, j int) bool {
		return byValue[i].Price*float64(byValue[i].Inventory) > byValue[j].Price*float64(byValue[j].Inventory)
	})
	added := 0
	for _, p := range byValue {
		if added == 3 {
			break
		}
		if !seen[p.ID] {
			seen[p.ID] = true
			recommended = append(recommended, p)
			added++
		}
	}

	return recommended, nil
}
