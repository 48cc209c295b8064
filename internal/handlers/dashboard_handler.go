package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"storefront/internal/services"
)

// DashboardHandler serves the admin inventory dashboard aggregation.
type DashboardHandler struct {
	service *services.CatalogService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(service *services.CatalogService) *DashboardHandler {
	return &DashboardHandler{
		service: service,
	}
}

// RegisterRoutes registers the dashboard route with the Fiber app.
func (h *DashboardHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/dashboard", h.HandleDashboard)
}

// HandleDashboard returns catalog-wide inventory statistics.
func (h *DashboardHandler) HandleDashboard(c *fiber.Ctx) error {
	stats, err := h.service.Dashboard()
	if err != nil {
		log.Printf("Error computing dashboard stats: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch products from database",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}
