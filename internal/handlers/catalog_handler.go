package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"socialgrowth/internal/catalog"
	"socialgrowth/internal/services"
)

// CatalogHandler serves the public service catalog.
type CatalogHandler struct {
	service *services.CatalogService
	logger  *zap.SugaredLogger
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service *services.CatalogService, logger *zap.SugaredLogger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	catalogRoutes := router.Group("/services")
	catalogRoutes.Get("/", h.HandleList)
	catalogRoutes.Get("/selectors", h.HandleSelectors)
	catalogRoutes.Get("/:id", h.HandleGet)
}

// HandleList returns the services matching the platform, type and search query parameters.
func (h *CatalogHandler) HandleList(c *fiber.Ctx) error {
	list, err := h.service.List(catalog.Criteria{
		Platform: c.Query("platform", catalog.All),
		Type:     c.Query("type", catalog.All),
		Search:   c.Query("search"),
	})
	if err != nil {
		return respondError(c, h.logger, err, "Could not retrieve services")
	}
	return c.JSON(list)
}

// HandleSelectors returns the platforms and types the catalog can be filtered by.
func (h *CatalogHandler) HandleSelectors(c *fiber.Ctx) error {
	sel, err := h.service.Selectors()
	if err != nil {
		return respondError(c, h.logger, err, "Could not retrieve selectors")
	}
	return c.JSON(sel)
}

// HandleGet returns a single service.
func (h *CatalogHandler) HandleGet(c *fiber.Ctx) error {
	svc, err := h.service.Get(c.Params("id"))
	if err != nil {
		return respondError(c, h.logger, err, "Could not retrieve service")
	}
	return c.JSON(svc)
}
