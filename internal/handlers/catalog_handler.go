package handlers

import (
	"gatequote/internal/models"
	"gatequote/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler handles HTTP requests for the equipment catalog.
type CatalogHandler struct {
	service *services.ConfiguratorService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service *services.ConfiguratorService) *CatalogHandler {
	return &CatalogHandler{
		service: service,
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/catalog", h.HandleGetCatalog)
}

// HandleGetCatalog returns the full catalog: products grouped in category
// order, plus the warranty tiers and payment plans.
func (h *CatalogHandler) HandleGetCatalog(c *fiber.Ctx) error {
	catalog := h.service.Catalog()

	categories := make([]fiber.Map, 0, len(catalog.Categories))
	for _, category := range catalog.Categories {
		products := catalog.ProductsInCategory(category.ID)
		if products == nil {
			products = []*models.Product{}
		}
		categories = append(categories, fiber.Map{
			"id":          category.ID,
			"name":        category.Name,
			"description": category.Description,
			"required":    category.Required,
			"products":    products,
		})
	}

	return c.JSON(fiber.Map{
		"categories":       categories,
		"warranty_options": catalog.Warranties,
		"payment_options":  catalog.Payments,
	})
}
