package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"socialgrowth/internal/models"
	"socialgrowth/internal/services"
)

// AdminHandler serves the back-office views.
type AdminHandler struct {
	service  *services.OrderService
	validate *validator.Validate
	logger   *zap.SugaredLogger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(service *services.OrderService, logger *zap.SugaredLogger) *AdminHandler {
	return &AdminHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

// RegisterRoutes registers the admin routes. router must be admin-only.
func (h *AdminHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/orders", h.HandleGetOrders)
	router.Get("/stats", h.HandleStats)
	router.Patch("/orders/:id/status", h.HandleUpdateOrderStatus)
}

// HandleGetOrders returns every order in the store, newest first.
func (h *AdminHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.ListAll(c.UserContext())
	if err != nil {
		return respondError(c, h.logger, err, "Could not retrieve orders")
	}
	return c.JSON(orders)
}

// HandleStats returns store-wide totals.
func (h *AdminHandler) HandleStats(c *fiber.Ctx) error {
	stats, err := h.service.AdminStats(c.UserContext())
	if err != nil {
		return respondError(c, h.logger, err, "Could not compute stats")
	}
	return c.JSON(stats)
}

// UpdateStatusRequest represents the request body for a manual status change.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// HandleUpdateOrderStatus sets the status of an order.
func (h *AdminHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	var req UpdateStatusRequest
	if ok, err := parseRequest(c, h.validate, &req); !ok {
		return err
	}

	order, err := h.service.UpdateStatus(c.UserContext(), c.Params("id"), models.OrderStatus(req.Status))
	if err != nil {
		return respondError(c, h.logger, err, "Could not update order status")
	}
	return c.JSON(order)
}
