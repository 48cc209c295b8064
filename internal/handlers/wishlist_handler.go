package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"storefront/internal/repositories"
	"storefront/internal/services"
)

// WishlistHandler handles HTTP requests for per-client wishlists.
type WishlistHandler struct {
	service *services.WishlistService
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(service *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{
		service: service,
	}
}

// RegisterRoutes registers the wishlist routes with the Fiber app.
func (h *WishlistHandler) RegisterRoutes(router fiber.Router) {
	wishlist := router.Group("/wishlist")
	wishlist.Get("/:clientID", h.HandleGetWishlist)
	wishlist.Post("/:clientID", h.HandleAddToWishlist)
	wishlist.Delete("/:clientID/:productID", h.HandleRemoveFromWishlist)
}

// HandleGetWishlist returns the client's wishlisted products.
func (h *WishlistHandler) HandleGetWishlist(c *fiber.Ctx) error {
	products, err := h.service.GetWishlist(c.Params("clientID"))
	if err != nil {
		log.Printf("Error fetching wishlist: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch wishlist",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(products),
		"data":    products,
	})
}

// AddToWishlistRequest is the body for adding a product to a wishlist.
type AddToWishlistRequest struct {
	ProductID string `json:"productId"`
}

// HandleAddToWishlist puts a catalog product on the client's wishlist.
func (h *WishlistHandler) HandleAddToWishlist(c *fiber.Ctx) error {
	var req AddToWishlistRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if _, err := uuid.Parse(req.ProductID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid product ID",
		})
	}

	if err := h.service.AddToWishlist(c.Params("clientID"), req.ProductID); err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "Product not found",
			})
		}
		log.Printf("Error adding product %s to wishlist: %v", req.ProductID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to update wishlist",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Product added to wishlist",
	})
}

// HandleRemoveFromWishlist takes a product off the client's wishlist.
func (h *WishlistHandler) HandleRemoveFromWishlist(c *fiber.Ctx) error {
	productID := c.Params("productID")
	if _, err := uuid.Parse(productID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid product ID",
		})
	}

	if err := h.service.RemoveFromWishlist(c.Params("clientID"), productID); err != nil {
		if errors.Is(err, repositories.ErrWishlistItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "Product not in wishlist",
			})
		}
		log.Printf("Error removing product %s from wishlist: %v", productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to update wishlist",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Product removed from wishlist",
	})
}
