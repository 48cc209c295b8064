package handlers

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"storefront/internal/repositories"
	"storefront/internal/services"
	"storefront/internal/validation"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service  *services.CatalogService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.CatalogService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validation.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app. Reads are
// public; create and update sit behind the requireAuth middleware. Static
// segments are registered before the `/:slug` catch-all.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, requireAuth fiber.Handler) {
	products := router.Group("/products")
	products.Get("/", h.HandleListProducts)
	products.Get("/recommendations", h.HandleRecommendations)
	products.Post("/create", requireAuth, h.HandleCreateProduct)
	products.Put("/update/:id", requireAuth, h.HandleUpdateProduct)
	products.Get("/:slug", h.HandleGetProductBySlug)
}

// HandleListProducts retrieves all products, newest first. The optional
// `search` and `category` query parameters narrow the result.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	filter := repositories.ProductFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
	}

	products, err := h.service.ListProducts(filter)
	if err != nil {
		log.Printf("Error fetching products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch products",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(products),
		"data":    products,
	})
}

// HandleGetProductBySlug retrieves a single product by its slug.
func (h *ProductHandler) HandleGetProductBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Slug is required",
		})
	}

	product, err := h.service.GetProductBySlug(slug)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "Product not found",
			})
		}
		log.Printf("Error fetching product %s: %v", slug, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch product",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    product,
	})
}

// HandleCreateProduct creates a new product. All six fields are required;
// price may be zero at this boundary (the admin UI is stricter), but never
// negative.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var input validation.CreateProductInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	input.Normalize()
	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Validation failed",
			"errors":  validation.Messages(err),
		})
	}

	product, err := h.service.CreateProduct(input)
	if err != nil {
		if errors.Is(err, repositories.ErrSlugTaken) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"success": false,
				"error":   "Product with this slug already exists",
			})
		}
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to create product",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Product created successfully",
		"data":    product,
	})
}

// HandleUpdateProduct applies a partial update to an existing product. A
// malformed id is a validation failure, not a lookup miss.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid product ID",
		})
	}

	var input validation.UpdateProductInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	input.Normalize()
	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Validation failed",
			"errors":  validation.Messages(err),
		})
	}

	product, err := h.service.UpdateProduct(id, input)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "Product not found",
			})
		}
		log.Printf("Error updating product %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to update product",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Product updated successfully",
		"data":    product,
	})
}

// HandleRecommendations returns a cross-category product selection.
func (h *ProductHandler) HandleRecommendations(c *fiber.Ctx) error {
	products, err := h.service.Recommendations()
	if err != nil {
		log.Printf("Error building recommendations: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch products",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(products),
		"data":    products,
	})
}
