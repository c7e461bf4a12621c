package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"socialgrowth/internal/middleware"
	"socialgrowth/internal/services"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
	logger   *zap.SugaredLogger
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService, logger *zap.SugaredLogger) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

// RegisterRoutes registers the order and dashboard routes. router must be authenticated.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Post("/quote", h.HandleQuote)
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Post("/", h.HandleCreateOrder)

	router.Get("/dashboard", h.HandleDashboard)
}

// QuoteRequest represents the request body for a charge preview.
type QuoteRequest struct {
	ServiceID string `json:"service_id" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// HandleQuote prices a quantity of a service without placing an order.
func (h *OrderHandler) HandleQuote(c *fiber.Ctx) error {
	var req QuoteRequest
	if ok, err := parseRequest(c, h.validate, &req); !ok {
		return err
	}

	quote, err := h.service.Quote(req.ServiceID, req.Quantity)
	if err != nil {
		return respondError(c, h.logger, err, "Could not price order")
	}
	return c.JSON(quote)
}

// CreateOrderRequest represents the request body for a new order.
type CreateOrderRequest struct {
	ServiceID string `json:"service_id" validate:"required"`
	Link      string `json:"link" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// HandleCreateOrder places an order for the authenticated user.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if ok, err := parseRequest(c, h.validate, &req); !ok {
		return err
	}

	order, user, err := h.service.PlaceOrder(c.UserContext(), middleware.UserID(c), services.PlaceOrderRequest{
		ServiceID: req.ServiceID,
		Link:      req.Link,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return respondError(c, h.logger, err, "Could not create order")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Order placed successfully",
		"order":   order,
		"user":    user,
	})
}

// HandleGetOrders returns the order history of the authenticated user, newest first.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.ListForUser(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return respondError(c, h.logger, err, "Could not retrieve orders")
	}
	return c.JSON(orders)
}

// HandleGetOrderByID retrieves a single order of the authenticated user.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	order, err := h.service.GetForUser(c.UserContext(), middleware.UserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, h.logger, err, "Could not retrieve order")
	}
	return c.JSON(order)
}

// HandleDashboard returns the account stats and recent orders.
func (h *OrderHandler) HandleDashboard(c *fiber.Ctx) error {
	dashboard, err := h.service.Dashboard(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return respondError(c, h.logger, err, "Could not build dashboard")
	}
	return c.JSON(dashboard)
}
